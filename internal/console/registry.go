package console

import (
	"sync"

	"fleet_console/internal/api"
	"fleet_console/internal/session"
)

// Registry hands out one Shell per authenticated session, each bound to an
// API client that signs requests with that session's token.
type Registry struct {
	mu      sync.Mutex
	baseURL string
	shells  map[string]*Shell
}

func NewRegistry(baseURL string) *Registry {
	return &Registry{
		baseURL: baseURL,
		shells:  make(map[string]*Shell),
	}
}

// Shell returns the session's dashboard, creating it on first use.
func (r *Registry) Shell(sess *session.Session) *Shell {
	r.mu.Lock()
	defer r.mu.Unlock()
	sh, ok := r.shells[sess.ID]
	if !ok {
		sh = NewShell(api.NewClient(r.baseURL, sess))
		r.shells[sess.ID] = sh
	}
	return sh
}

// Drop discards the session's dashboard state, typically at logout.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.shells, sessionID)
}
