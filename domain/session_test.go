package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionTouchAndExpiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := &Session{ID: "abc"}

	s.Touch(now, time.Minute)
	assert.Equal(t, now, s.CreatedAt)
	assert.Equal(t, now, s.LastSeen)
	assert.False(t, s.IsExpired(now.Add(59*time.Second)))
	assert.True(t, s.IsExpired(now.Add(time.Minute)))

	later := now.Add(30 * time.Second)
	s.Touch(later, time.Minute)
	assert.Equal(t, now, s.CreatedAt, "created time is kept")
	assert.False(t, s.IsExpired(now.Add(time.Minute)))

	var nilSession *Session
	assert.True(t, nilSession.IsExpired(now))
}
