package types

import "time"

// Session binds one generated instance to the id handed back to the
// client. Sessions are created once and read-only afterwards; they live
// only as long as the process.
type Session struct {
	ID        string
	Model     DistanceModel
	HomeCity  string
	CreatedAt time.Time
}
