package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      string
	}{
		{"zero time", time.Time{}, "unknown"},
		{"seconds remaining", now.Add(45 * time.Second), "in 45s"},
		{"minutes remaining", now.Add(59 * time.Minute), "in 59m"},
		{"hours remaining", now.Add(2*time.Hour + 30*time.Minute), "in 2h 30m"},
		{"whole hours", now.Add(3 * time.Hour), "in 3h"},
		{"days remaining", now.Add(49 * time.Hour), "in 2d 1h"},
		{"expired", now.Add(-2 * time.Hour), "expired 2h ago"},
		{"just expired", now.Add(-30 * time.Second), "expired 30s ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatExpiry(tt.expiresAt, now))
		})
	}
}
