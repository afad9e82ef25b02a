package service

import (
	"context"
	"fmt"

	"github.com/bokuwaitgel/smart-locker-panel/internal/core"
	"github.com/bokuwaitgel/smart-locker-panel/internal/domain/model"
	apperrors "github.com/bokuwaitgel/smart-locker-panel/internal/errors"
)

// ContainerServiceOptions groups dependencies for ContainerService.
type ContainerServiceOptions struct {
	Repo core.ContainerRepository
}

// ContainerService manages the locker containers (cabinets) known to the backend.
type ContainerService struct {
	repo core.ContainerRepository
}

// NewContainerService constructs a ContainerService.
func NewContainerService(opts ContainerServiceOptions) *ContainerService {
	if opts.Repo == nil {
		panic("ContainerRepository is required")
	}
	return &ContainerService{repo: opts.Repo}
}

func (s *ContainerService) List(ctx context.Context) ([]model.Container, error) {
	return s.repo.List(ctx)
}

// Create validates req locally before asking the backend to create it.
func (s *ContainerService) Create(ctx context.Context, req model.CreateContainerRequest) (*model.Container, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	c, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create container: %w", err)
	}
	return c, nil
}

// SetStatus parses the raw status before updating container id.
func (s *ContainerService) SetStatus(ctx context.Context, id int64, raw string) error {
	status, ok := model.ParseContainerStatus(raw)
	if !ok {
		return apperrors.Validationf("unknown container status %q", raw)
	}
	return s.repo.SetStatus(ctx, id, status)
}
