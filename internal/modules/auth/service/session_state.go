package service

import (
	"sync"

	"praxis/internal/modules/auth/domain"
)

// SessionState holds the process-wide auth state. It is constructed once in
// the bootstrap and injected; there is no ambient singleton. A mutex guards
// it because TUI commands resolve on their own goroutines.
type SessionState struct {
	mu            sync.RWMutex
	authenticated bool
	user          *domain.User
	loading       bool
}

func NewSessionState() *SessionState {
	return &SessionState{loading: true}
}

func (s *SessionState) Snapshot() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var user *domain.User
	if s.user != nil {
		u := *s.user
		user = &u
	}
	return domain.State{
		Authenticated: s.authenticated,
		User:          user,
		Loading:       s.loading,
	}
}

func (s *SessionState) SetAuthenticated(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = true
	s.user = &user
	s.loading = false
}

// Clear resets to the unauthenticated resting state. Every failure path
// ends here; the client may never look logged in when it is not.
func (s *SessionState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
	s.user = nil
	s.loading = false
}
