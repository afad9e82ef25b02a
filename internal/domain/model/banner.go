package model

import (
	"io"
	"strings"
	"time"
)

// BannerType is the media kind of a promotional banner.
type BannerType string

const (
	BannerImage BannerType = "image"
	BannerVideo BannerType = "video"
)

// Valid reports whether the banner type is supported.
func (t BannerType) Valid() bool {
	return t == BannerImage || t == BannerVideo
}

// ParseBannerType normalizes a type string and reports whether it is supported.
func ParseBannerType(v string) (BannerType, bool) {
	t := BannerType(strings.ToLower(strings.TrimSpace(v)))
	return t, t.Valid()
}

// Banner is a promotional image or video shown on locker screens.
type Banner struct {
	ID        int64      `json:"id"`
	Type      BannerType `json:"type"`
	URL       string     `json:"url"`
	Status    bool       `json:"status"`
	SortOrder int        `json:"sortOrder"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// DashboardStats aggregates the container and locker stats endpoints.
type DashboardStats struct {
	TotalContainers  int `json:"totalContainers"`
	ActiveContainers int `json:"activeContainers"`
	TotalLockers     int `json:"totalLockers"`
	AvailableLockers int `json:"availableLockers"`
	OccupiedLockers  int `json:"occupiedLockers"`
}

// BannerUpload is a new banner file posted as multipart form data.
type BannerUpload struct {
	Type        BannerType
	FileName    string
	ContentType string
	Content     io.Reader
}
