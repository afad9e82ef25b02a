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

var _ core.ContainerRepository = (*ContainerRepo)(nil)

// ContainerRepo implements core.ContainerRepository against /containers.
type ContainerRepo struct {
	gw gateway.Doer
}

// NewContainerRepo creates a ContainerRepo.
func NewContainerRepo(gw gateway.Doer) *ContainerRepo {
	return &ContainerRepo{gw: gw}
}

func (r *ContainerRepo) List(ctx context.Context) ([]model.Container, error) {
	resp, err := r.gw.Do(ctx, gateway.Request{Method: http.MethodGet, Path: "/containers"})
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	return decodeList[model.Container](resp)
}

func (r *ContainerRepo) Create(ctx context.Context, req model.CreateContainerRequest) (*model.Container, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	resp, err := r.gw.Do(ctx, gateway.Request{Method: http.MethodPost, Path: "/containers", JSON: req})
	if err != nil {
		return nil, fmt.Errorf("create container: %w", err)
	}
	return decodeObject[model.Container](resp)
}

func (r *ContainerRepo) SetStatus(ctx context.Context, id int64, status model.ContainerStatus) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	_, err := r.gw.Do(ctx, gateway.Request{
		Method: http.MethodPut,
		Path:   "/containers/" + strconv.FormatInt(id, 10) + "/status",
		Route:  "/containers/{id}/status",
		JSON:   map[string]model.ContainerStatus{"status": status},
	})
	if err != nil {
		return fmt.Errorf("set container %d status: %w", id, err)
	}
	return nil
}

func (r *ContainerRepo) Stats(ctx context.Context) (*model.ContainerStats, error) {
	resp, err := r.gw.Do(ctx, gateway.Request{Method: http.MethodGet, Path: "/containers/stats"})
	if err != nil {
		return nil, fmt.Errorf("container stats: %w", err)
	}
	return decodeObject[model.ContainerStats](resp)
}
