package store_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hirushan-N/tsp-frontend/store"
	"github.com/Hirushan-N/tsp-frontend/types"
)

func testModel() types.DistanceModel {
	return types.DistanceModel{
		Cities: []string{"A", "B"},
		Matrix: [][]int{{0, 60}, {60, 0}},
	}
}

func TestCreateAndGet(t *testing.T) {
	s := store.New()

	sess := s.Create(testModel(), "B")
	require.NotEmpty(t, sess.ID)

	got, err := s.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	// Sessions are write-once: a second Get sees identical data.
	again, err := s.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestGet_UnknownID(t *testing.T) {
	s := store.New()

	_, err := s.Get("never-created")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestCreate_UniqueIDs(t *testing.T) {
	s := store.New()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		sess := s.Create(testModel(), "A")
		require.False(t, seen[sess.ID], "duplicate session id %s", sess.ID)
		seen[sess.ID] = true
	}
	assert.Equal(t, 100, s.Len())
}

func TestConcurrentCreateAndGet(t *testing.T) {
	s := store.New()

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess := s.Create(testModel(), "A")
			got, err := s.Get(sess.ID)
			if err != nil {
				errs <- err
				return
			}
			if got.ID != sess.ID {
				errs <- fmt.Errorf("got session %s, want %s", got.ID, sess.ID)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
	assert.Equal(t, 50, s.Len())
}
