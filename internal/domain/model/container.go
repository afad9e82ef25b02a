package model

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	maxBoardIDLen     = 64
	maxLocationLen    = 255
	maxDescriptionLen = 1000
)

// ContainerStatus is the operating state of a locker bank.
type ContainerStatus string

const (
	ContainerActive      ContainerStatus = "ACTIVE"
	ContainerInactive    ContainerStatus = "INACTIVE"
	ContainerMaintenance ContainerStatus = "MAINTENANCE"
)

// ContainerStatuses lists the statuses in display order.
var ContainerStatuses = []ContainerStatus{ContainerActive, ContainerInactive, ContainerMaintenance}

// Valid reports whether the container status is supported.
func (s ContainerStatus) Valid() bool {
	switch s {
	case ContainerActive, ContainerInactive, ContainerMaintenance:
		return true
	default:
		return false
	}
}

// ParseContainerStatus normalizes a status string and reports whether it is supported.
func ParseContainerStatus(v string) (ContainerStatus, bool) {
	s := ContainerStatus(strings.ToUpper(strings.TrimSpace(v)))
	return s, s.Valid()
}

// Container is a physical locker bank identified by its board id.
type Container struct {
	ID          int64           `json:"id"`
	BoardID     string          `json:"boardId"`
	Location    string          `json:"location"`
	Status      ContainerStatus `json:"status"`
	Description string          `json:"description,omitempty"`
}

// CreateContainerRequest is the body of POST /containers.
type CreateContainerRequest struct {
	BoardID     string `json:"boardId"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// Normalize trims all fields.
func (r *CreateContainerRequest) Normalize() {
	r.BoardID = strings.TrimSpace(r.BoardID)
	r.Location = strings.TrimSpace(r.Location)
	r.Description = strings.TrimSpace(r.Description)
}

// Validate checks required fields and lengths.
func (r *CreateContainerRequest) Validate() error {
	if r.BoardID == "" {
		return errors.New("board id is required")
	}
	if utf8.RuneCountInString(r.BoardID) > maxBoardIDLen {
		return errors.New("board id is too long")
	}
	if r.Location == "" {
		return errors.New("location is required")
	}
	if utf8.RuneCountInString(r.Location) > maxLocationLen {
		return errors.New("location is too long")
	}
	if utf8.RuneCountInString(r.Description) > maxDescriptionLen {
		return errors.New("description is too long")
	}
	return nil
}

// ContainerStats is the answer of GET /containers/stats.
type ContainerStats struct {
	TotalContainers  int `json:"totalContainers"`
	ActiveContainers int `json:"activeContainers"`
}
