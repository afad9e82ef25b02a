package model

import (
	"errors"
	"sort"
	"strings"
)

// LockerStatus is the occupancy state of a single compartment.
type LockerStatus string

const (
	LockerAvailable   LockerStatus = "AVAILABLE"
	LockerOccupied    LockerStatus = "OCCUPIED"
	LockerMaintenance LockerStatus = "MAINTENANCE"
	LockerPending     LockerStatus = "PENDING"
)

// LockerStatuses lists the statuses in display order.
var LockerStatuses = []LockerStatus{LockerAvailable, LockerOccupied, LockerMaintenance, LockerPending}

// Valid reports whether the locker status is supported.
func (s LockerStatus) Valid() bool {
	switch s {
	case LockerAvailable, LockerOccupied, LockerMaintenance, LockerPending:
		return true
	default:
		return false
	}
}

// ParseLockerStatus normalizes a status string and reports whether it is supported.
func ParseLockerStatus(v string) (LockerStatus, bool) {
	s := LockerStatus(strings.ToUpper(strings.TrimSpace(v)))
	return s, s.Valid()
}

// Locker is an individually addressable compartment within a container.
type Locker struct {
	ID           int64        `json:"id"`
	LockerNumber string       `json:"lockerNumber"`
	Status       LockerStatus `json:"status"`
	BoardID      string       `json:"boardId"`
	Description  string       `json:"description,omitempty"`
}

// OpenLockerRequest is the body of POST /lockers/open.
type OpenLockerRequest struct {
	LockerNumber string `json:"lockerNumber"`
	BoardID      string `json:"boardId"`
}

// Validate checks that both addressing fields are present.
func (r OpenLockerRequest) Validate() error {
	if strings.TrimSpace(r.LockerNumber) == "" {
		return errors.New("locker number is required")
	}
	if strings.TrimSpace(r.BoardID) == "" {
		return errors.New("board id is required")
	}
	return nil
}

// LockerStats is the answer of GET /lockers/stats.
type LockerStats struct {
	TotalLockers     int `json:"totalLockers"`
	AvailableLockers int `json:"availableLockers"`
	OccupiedLockers  int `json:"occupiedLockers"`
}

// LockerFilter narrows a locker list locally.
type LockerFilter struct {
	BoardID string
}

// FilterLockers returns the lockers matching f, preserving order.
func FilterLockers(lockers []Locker, f LockerFilter) []Locker {
	if f.BoardID == "" {
		return lockers
	}
	out := make([]Locker, 0, len(lockers))
	for _, l := range lockers {
		if l.BoardID == f.BoardID {
			out = append(out, l)
		}
	}
	return out
}

// CountLockersByStatus tallies lockers per status.
func CountLockersByStatus(lockers []Locker) map[LockerStatus]int {
	counts := make(map[LockerStatus]int, len(LockerStatuses))
	for _, l := range lockers {
		counts[l.Status]++
	}
	return counts
}

// BoardIDs returns the distinct, sorted board ids of lockers.
func BoardIDs(lockers []Locker) []string {
	seen := make(map[string]struct{}, len(lockers))
	out := make([]string, 0)
	for _, l := range lockers {
		if l.BoardID == "" {
			continue
		}
		if _, ok := seen[l.BoardID]; ok {
			continue
		}
		seen[l.BoardID] = struct{}{}
		out = append(out, l.BoardID)
	}
	sort.Strings(out)
	return out
}
