package httpapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/hollis-m/lobby-client/internal/session"
)

// StateCache consumes the session subscription and keeps the latest
// snapshot for handlers to serve. It is the only piece of this
// process that reads session state off the dispatch goroutine, and it
// only ever sees immutable copies.
type StateCache struct {
	mu   sync.RWMutex
	snap session.Snapshot
}

func NewStateCache(snapshots <-chan session.Snapshot) *StateCache {
	c := &StateCache{}
	go func() {
		for snap := range snapshots {
			c.mu.Lock()
			c.snap = snap
			c.mu.Unlock()
		}
	}()
	return c
}

func (c *StateCache) Latest() session.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

func State(cache *StateCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(cache.Latest())
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
