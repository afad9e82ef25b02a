package httpx

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/bokuwaitgel/smart-locker-panel/internal/errors"
)

// pathID parses the {id} path value as a positive integer.
func pathID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Validationf("invalid id %q", raw)
	}
	return id, nil
}

// formValue returns the trimmed form value for key.
func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// formBool interprets checkbox-style values.
func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(formValue(r, key)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}
