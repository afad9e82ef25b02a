// Package uiutil holds formatting helpers shared by handlers and templates.
package uiutil

import (
	"strconv"
	"strings"
	"time"
)

const FriendlyDateTimeLayout = "Jan 2, 2006 3:04 PM"

// FriendlyRelativeTime describes how long ago t occurred. Future times read as "just now".
func FriendlyRelativeTime(t time.Time) string {
	diff := time.Since(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hour")
	case diff < 7*24*time.Hour:
		return plural(int(diff.Hours()/24), "day")
	default:
		return FormatFriendlyDateTime(t)
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return strconv.Itoa(n) + " " + unit + "s ago"
}

// FormatFriendlyDateTime returns a local timestamp, or "" for the zero time.
func FormatFriendlyDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(FriendlyDateTimeLayout)
}

// TruncateWithEllipsis shortens text to limit runes, ending in an ellipsis when cut.
func TruncateWithEllipsis(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit <= 1 {
		return "…"
	}
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}

// StatusLabel turns a backend enum such as PICKED_UP into "Picked up".
func StatusLabel(status string) string {
	s := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(status), "_", " "))
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// StatusTone maps a container, locker or order status to a badge tone.
func StatusTone(status string) string {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "ACTIVE", "AVAILABLE", "DELIVERED", "PICKED_UP":
		return "success"
	case "OCCUPIED", "PENDING", "WAITING":
		return "warning"
	case "CANCELLED":
		return "danger"
	case "MAINTENANCE", "INACTIVE":
		return "muted"
	default:
		return "neutral"
	}
}
