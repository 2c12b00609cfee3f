package wall

import "sync"

// Registry manages all live wall sessions and the reaction counters.
//
// Everything here is process-local and ephemeral: a restart clears every
// session and every counter. The mutex only protects the maps themselves;
// reaction increments are plain adds, so concurrent reactions from several
// workers of a multi-process deployment can still lose counts. That is an
// accepted property of a decorative feature.
type Registry struct {
	sessions  map[string]*Session
	reactions map[uint]map[string]int
	mu        sync.RWMutex
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions:  make(map[string]*Session),
		reactions: make(map[uint]map[string]int),
	}
}

// Get returns the session for the given session id, creating one that views
// the user's own wall when none exists. A session id that resurfaces under a
// different user id is reset rather than reused.
func (r *Registry) Get(sessionID string, userID uint) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[sessionID]
	if !ok || sess.UserID != userID {
		sess = &Session{UserID: userID, ActiveWallUserID: userID}
		r.sessions[sessionID] = sess
	}
	return sess
}

// Drop removes a session.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

// React bumps the counter for (wall owner, label) and returns the new count.
// Counters are additive and unattributed.
func (r *Registry) React(ownerID uint, label string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	counters, ok := r.reactions[ownerID]
	if !ok {
		counters = make(map[string]int)
		r.reactions[ownerID] = counters
	}
	counters[label]++
	return counters[label]
}

// Reactions returns a copy of the counters for a wall owner.
func (r *Registry) Reactions(ownerID uint) map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int, len(r.reactions[ownerID]))
	for label, count := range r.reactions[ownerID] {
		out[label] = count
	}
	return out
}
