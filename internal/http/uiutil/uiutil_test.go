package uiutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFriendlyRelativeTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		in   time.Time
		want string
	}{
		{now.Add(time.Hour), "just now"},
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-time.Minute - time.Second), "1 minute ago"},
		{now.Add(-5*time.Minute - time.Second), "5 minutes ago"},
		{now.Add(-3*time.Hour - time.Second), "3 hours ago"},
		{now.Add(-49 * time.Hour), "2 days ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FriendlyRelativeTime(tt.in))
	}
	old := now.Add(-30 * 24 * time.Hour)
	assert.Equal(t, FormatFriendlyDateTime(old), FriendlyRelativeTime(old))
}

func TestFormatFriendlyDateTime_Zero(t *testing.T) {
	assert.Empty(t, FormatFriendlyDateTime(time.Time{}))
}

func TestTruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "short", TruncateWithEllipsis("short", 10))
	assert.Equal(t, "abc…", TruncateWithEllipsis("abcdefgh", 4))
	assert.Equal(t, "…", TruncateWithEllipsis("abcdefgh", 1))
	assert.Equal(t, "Улаа…", TruncateWithEllipsis("Улаанбаатар", 5))
}

func TestStatusLabelAndTone(t *testing.T) {
	assert.Equal(t, "Picked up", StatusLabel("PICKED_UP"))
	assert.Equal(t, "Available", StatusLabel("AVAILABLE"))
	assert.Empty(t, StatusLabel(" "))

	assert.Equal(t, "success", StatusTone("available"))
	assert.Equal(t, "warning", StatusTone("WAITING"))
	assert.Equal(t, "danger", StatusTone("CANCELLED"))
	assert.Equal(t, "muted", StatusTone("MAINTENANCE"))
	assert.Equal(t, "neutral", StatusTone("whatever"))
}
