package repositories

import (
	"sync"
	"time"

	"fastfood-ui/models"

	"github.com/google/uuid"
)

// SessionRepository holds live sessions in memory, keyed by the cookie value.
// Nothing is persisted: when the process ends, every session ends with it,
// matching the session-scoped lifetime of the credential.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	ttl      time.Duration
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*models.Session),
		ttl:      ttl,
	}
}

// Create opens a session for a freshly issued token and returns it.
func (r *SessionRepository) Create(token string, admin bool) *models.Session {
	session := &models.Session{
		ID:        uuid.NewString(),
		Token:     token,
		Admin:     admin,
		ExpiresAt: time.Now().Add(r.ttl),
	}

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()
	return session
}

// Get returns the session for the given cookie value. Expired sessions are
// dropped on sight.
func (r *SessionRepository) Get(id string) (*models.Session, bool) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if session.Expired() {
		r.Delete(id)
		return nil, false
	}
	return session, true
}

// Delete ends a session.
func (r *SessionRepository) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len reports the number of stored sessions, expired ones included.
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep removes expired sessions and returns how many were dropped.
func (r *SessionRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, session := range r.sessions {
		if session.Expired() {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper sweeps on the given interval until the returned stop function
// is called. Calling stop more than once is harmless.
func (r *SessionRepository) StartSweeper(interval time.Duration) (stop func()) {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.Sweep()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
