package data

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bokuwaitgel/smart-locker-panel/internal/gateway"
)

// envelope is the {"data": ...} wrapper some backend endpoints use.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// unwrap returns the payload inside a {"data": ...} envelope, or body unchanged.
func unwrap(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return trimmed
	}
	return env.Data
}

// decodeList accepts either a bare JSON array or a {"data": [...]} envelope.
func decodeList[T any](resp *gateway.Response) ([]T, error) {
	payload := unwrap(resp.Body)
	if len(payload) == 0 {
		return []T{}, nil
	}
	if payload[0] != '[' {
		return nil, fmt.Errorf("%w: expected a list", ErrUnexpectedShape)
	}
	out := make([]T, 0)
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return out, nil
}

// decodeObject accepts either a bare JSON object or a {"data": {...}} envelope.
func decodeObject[T any](resp *gateway.Response) (*T, error) {
	var out T
	payload := unwrap(resp.Body)
	if len(payload) == 0 {
		return &out, nil
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	return &out, nil
}
