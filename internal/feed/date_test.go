package feed

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestResolveDate(t *testing.T) {
	ref := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(ref))
	defer SetClock(nil)

	tests := []struct {
		name     string
		phrase   string
		expected string
	}{
		{"hours same day", "5 hours ago", "2024-06-10"},
		{"hours crossing midnight", "20 hours ago", "2024-06-09"},
		{"single hour", "1 hour ago", "2024-06-10"},
		{"days", "3 days ago", "2024-06-07"},
		{"single day", "1 day ago", "2024-06-09"},
		{"weeks stay relative", "2 weeks ago", "2w ago"},
		{"single week", "1 week ago", "1w ago"},
		{"months stay relative", "3 months ago", "3mo ago"},
		{"no number", "just now", "N/A"},
		{"unknown unit", "5 minutes ago", "N/A"},
		{"empty phrase", "", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveDate(tt.phrase))
		})
	}
}
