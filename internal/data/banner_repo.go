package data

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bokuwaitgel/smart-locker-panel/internal/core"
	"github.com/bokuwaitgel/smart-locker-panel/internal/domain/model"
	"github.com/bokuwaitgel/smart-locker-panel/internal/gateway"
)

var _ core.BannerRepository = (*BannerRepo)(nil)

// BannerRepo implements core.BannerRepository against /banner.
type BannerRepo struct {
	gw gateway.Doer
}

// NewBannerRepo creates a BannerRepo.
func NewBannerRepo(gw gateway.Doer) *BannerRepo {
	return &BannerRepo{gw: gw}
}

func bannerPath(id int64) string { return "/banner/" + strconv.FormatInt(id, 10) }

func (r *BannerRepo) List(ctx context.Context) ([]model.Banner, error) {
	resp, err := r.gw.Do(ctx, gateway.Request{Method: http.MethodGet, Path: "/banner"})
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	return decodeList[model.Banner](resp)
}

// Create uploads the banner as multipart form data with fields file and type.
func (r *BannerRepo) Create(ctx context.Context, upload model.BannerUpload) (*model.Banner, error) {
	if upload.Content == nil {
		return nil, ErrMissingUpload
	}
	if !upload.Type.Valid() {
		return nil, fmt.Errorf("%w: banner type %q", ErrInvalidStatus, upload.Type)
	}
	resp, err := r.gw.Do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/banner",
		Multipart: &gateway.Multipart{
			Fields: map[string]string{"type": string(upload.Type)},
			Files: []gateway.FilePart{{
				Field:       "file",
				FileName:    upload.FileName,
				ContentType: upload.ContentType,
				Content:     upload.Content,
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create banner: %w", err)
	}
	return decodeObject[model.Banner](resp)
}

func (r *BannerRepo) SetStatus(ctx context.Context, id int64, active bool) error {
	if id <= 0 {
		return ErrInvalidID
	}
	_, err := r.gw.Do(ctx, gateway.Request{
		Method: http.MethodPut,
		Path:   bannerPath(id),
		Route:  "/banner/{id}",
		JSON:   map[string]bool{"status": active},
	})
	if err != nil {
		return fmt.Errorf("set banner %d status: %w", id, err)
	}
	return nil
}

func (r *BannerRepo) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if _, err := r.gw.Do(ctx, gateway.Request{Method: http.MethodDelete, Path: bannerPath(id), Route: "/banner/{id}"}); err != nil {
		return fmt.Errorf("delete banner %d: %w", id, err)
	}
	return nil
}
