package service

import (
	"context"

	"github.com/bokuwaitgel/smart-locker-panel/internal/core"
	"github.com/bokuwaitgel/smart-locker-panel/internal/domain/model"
	apperrors "github.com/bokuwaitgel/smart-locker-panel/internal/errors"
)

const (
	saveBannerFallback = "Failed to save banner"
	missingFileMessage = "Please select a file"
)

// BannerServiceOptions groups dependencies for BannerService.
type BannerServiceOptions struct {
	Repo     core.BannerRepository
	Messages *MessageExtractor
}

// BannerService manages the promotional banners shown on locker screens.
type BannerService struct {
	repo     core.BannerRepository
	messages *MessageExtractor
}

// NewBannerService constructs a BannerService.
func NewBannerService(opts BannerServiceOptions) *BannerService {
	if opts.Repo == nil {
		panic("BannerRepository is required")
	}
	return &BannerService{repo: opts.Repo, messages: opts.Messages}
}

func (s *BannerService) List(ctx context.Context) ([]model.Banner, error) {
	return s.repo.List(ctx)
}

// Upload creates a banner from an uploaded file. Failures come back as
// *ActionError with the message to show.
func (s *BannerService) Upload(ctx context.Context, upload model.BannerUpload) (*model.Banner, error) {
	if upload.Content == nil || upload.FileName == "" {
		return nil, &ActionError{Message: missingFileMessage, Err: apperrors.ValidationField("file", missingFileMessage)}
	}
	if upload.Type == "" {
		upload.Type = model.BannerImage
	}
	if !upload.Type.Valid() {
		return nil, &ActionError{Message: saveBannerFallback, Err: apperrors.Validationf("unknown banner type %q", upload.Type)}
	}
	b, err := s.repo.Create(ctx, upload)
	if err != nil {
		return nil, s.messages.actionError(err, saveBannerFallback)
	}
	return b, nil
}

// Toggle flips the active flag of banner id given its current value.
func (s *BannerService) Toggle(ctx context.Context, id int64, current bool) error {
	return s.repo.SetStatus(ctx, id, !current)
}

func (s *BannerService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
