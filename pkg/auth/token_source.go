package auth

import (
	"sync"
	"time"
)

// refreshMargin is how long before expiry a cached token is replaced
const refreshMargin = 30 * time.Second

// TokenSource hands out a cached bearer token for one client, re-signing it
// shortly before it expires.
type TokenSource struct {
	mu       sync.Mutex
	clientID string
	secret   string
	ttl      time.Duration
	now      func() time.Time

	token   string
	expires time.Time
}

// NewTokenSource creates a token source. A zero ttl means 15 minutes.
func NewTokenSource(clientID, secret string, ttl time.Duration) *TokenSource {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &TokenSource{
		clientID: clientID,
		secret:   secret,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Token returns a valid bearer token
func (s *TokenSource) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.token != "" && now.Add(refreshMargin).Before(s.expires) {
		return s.token, nil
	}

	token, err := IssueToken(s.clientID, s.secret, s.ttl, now)
	if err != nil {
		return "", err
	}
	s.token = token
	s.expires = now.Add(s.ttl)
	return token, nil
}
