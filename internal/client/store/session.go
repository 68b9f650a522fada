package store

import "sync"

// Session records the logged-in user. The token is opaque to the
// client; it is neither refreshed nor validated locally, and the
// session lives only for the lifetime of the process.
type Session struct {
	mu       sync.Mutex
	username string
	token    string
}

// Set records a successful login.
func (s *Session) Set(username, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = username
	s.token = token
}

// Username returns the logged-in username, or "" when absent.
func (s *Session) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username
}

// Active reports whether a user is logged in.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username != ""
}
