package domain

import "time"

// Session ties a visitor cookie to its in-memory view state.
type Session struct {
	ID        string           `json:"id"`
	State     ApplicationState `json:"state"`
	CreatedAt time.Time        `json:"created_at"`
	LastSeen  time.Time        `json:"last_seen"`
	ExpiresAt time.Time        `json:"expires_at"`

	// ScrollPending is set by a successful navigation and cleared by the next rendered view.
	ScrollPending bool `json:"scroll_pending,omitempty"`
}

func (s *Session) IsExpired(reference time.Time) bool {
	if s == nil {
		return true
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return !s.ExpiresAt.After(reference)
}

// Touch records activity at now and pushes expiry ttl into the future.
func (s *Session) Touch(now time.Time, ttl time.Duration) {
	if s == nil {
		return
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.LastSeen = now
	s.ExpiresAt = now.Add(ttl)
}
