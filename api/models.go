package api

// Wire shapes for the engine's endpoints. Field names are part of the
// contract with the frontend, so they stay camelCase.

type InstanceResponse struct {
	SessionID      string   `json:"sessionId"`
	Cities         []string `json:"cities"`
	HomeCity       string   `json:"homeCity"`
	DistanceMatrix [][]int  `json:"distanceMatrix"`
}

type EvaluateRequest struct {
	SessionID string   `json:"sessionId"`
	Route     []string `json:"route"`
}

type AlgorithmReport struct {
	Route      []string `json:"route"`
	Distance   int      `json:"distance"`
	DurationMs float64  `json:"durationMs"`
}

type EvaluateResponse struct {
	Correct         bool                       `json:"correct"`
	Message         string                     `json:"message"`
	YourRoute       []string                   `json:"yourRoute"`
	YourDistance    int                        `json:"yourDistance"`
	OptimalRoute    []string                   `json:"optimalRoute"`
	OptimalDistance int                        `json:"optimalDistance"`
	Algorithms      map[string]AlgorithmReport `json:"algorithms"`
}

type HealthResponse struct {
	UptimeSeconds float64 `json:"uptime_seconds"`
	Sessions      int     `json:"sessions"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
