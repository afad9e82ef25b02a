// Package core provides the template helpers used by every panel page.
package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bokuwaitgel/smart-locker-panel/internal/http/uiutil"
)

// Deps holds optional dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
}

// Funcs returns the helpers shared across templates.
func Funcs(deps Deps) template.FuncMap {
	funcs := template.FuncMap{
		"sectionTmpl":  deps.ContentTemplateFor,
		"friendlyTime": friendlyTime,
		"relativeTime": relativeTime,
		"timeTag":      timeTag,
		"add":          func(a, b int) int { return a + b },
		"formatNumber": FormatNumber,
		"statusLabel":  func(v any) string { return uiutil.StatusLabel(fmt.Sprint(v)) },
		"statusTone":   func(v any) string { return uiutil.StatusTone(fmt.Sprint(v)) },
		"truncateText": TruncateText,
		"eqString":     func(a, b any) bool { return fmt.Sprint(a) == fmt.Sprint(b) },
		"actionURL":    ActionURL,
	}

	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - output of our own html/template set; values were escaped during execution.
		return template.HTML(buf.String()), nil
	}
	funcs["toJSON"] = func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return funcs
}

func asTime(ts any) (time.Time, bool) {
	switch v := ts.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v != nil && !v.IsZero() {
			return *v, true
		}
	}
	return time.Time{}, false
}

func friendlyTime(ts any) string {
	t, ok := asTime(ts)
	if !ok {
		return ""
	}
	return uiutil.FormatFriendlyDateTime(t)
}

func relativeTime(ts any) string {
	t, ok := asTime(ts)
	if !ok {
		return ""
	}
	return uiutil.FriendlyRelativeTime(t)
}

func timeTag(ts any) template.HTML {
	t, ok := asTime(ts)
	if !ok {
		return ""
	}
	// #nosec G203 - built from escaped, formatted timestamps only
	return template.HTML(fmt.Sprintf(
		`<time datetime="%s" title="%s">%s</time>`,
		t.UTC().Format(time.RFC3339),
		template.HTMLEscapeString(t.Local().Format(time.RFC1123)),
		template.HTMLEscapeString(uiutil.FormatFriendlyDateTime(t)),
	))
}

// FormatNumber renders integers with thousands separators. Other values use fmt.
func FormatNumber(v any) string {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	default:
		return fmt.Sprint(v)
	}

	neg := n < 0
	var s string
	if neg {
		s = strconv.FormatUint(uint64(-n), 10)
	} else {
		s = strconv.FormatUint(uint64(n), 10)
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(s[:head])
	for i := head; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// TruncateText truncates s to maxLen runes, adding an ellipsis when cut.
func TruncateText(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	return uiutil.TruncateWithEllipsis(s, maxLen)
}

// ActionURL joins a server-built path with the current raw query so form
// posts return to the same filtered view. Queries that do not parse are dropped.
func ActionURL(path, rawQuery string) template.URL {
	if rawQuery == "" {
		return template.URL(path) // #nosec G203 - path is a route constant
	}
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return template.URL(path) // #nosec G203
	}
	// #nosec G203 - the query is re-encoded
	return template.URL(path + "?" + q.Encode())
}
