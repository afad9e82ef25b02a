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

var _ core.LockerRepository = (*LockerRepo)(nil)

// LockerRepo implements core.LockerRepository against /lockers.
type LockerRepo struct {
	gw gateway.Doer
}

// NewLockerRepo creates a LockerRepo.
func NewLockerRepo(gw gateway.Doer) *LockerRepo {
	return &LockerRepo{gw: gw}
}

func (r *LockerRepo) List(ctx context.Context) ([]model.Locker, error) {
	resp, err := r.gw.Do(ctx, gateway.Request{Method: http.MethodGet, Path: "/lockers"})
	if err != nil {
		return nil, fmt.Errorf("list lockers: %w", err)
	}
	return decodeList[model.Locker](resp)
}

func (r *LockerRepo) SetStatus(ctx context.Context, id int64, status model.LockerStatus) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	_, err := r.gw.Do(ctx, gateway.Request{
		Method: http.MethodPut,
		Path:   "/lockers/" + strconv.FormatInt(id, 10) + "/status",
		Route:  "/lockers/{id}/status",
		JSON:   map[string]model.LockerStatus{"status": status},
	})
	if err != nil {
		return fmt.Errorf("set locker %d status: %w", id, err)
	}
	return nil
}

type openLockerResponse struct {
	Message string `json:"message"`
}

func (r *LockerRepo) Open(ctx context.Context, req model.OpenLockerRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	resp, err := r.gw.Do(ctx, gateway.Request{Method: http.MethodPost, Path: "/lockers/open", JSON: req})
	if err != nil {
		return "", fmt.Errorf("open locker %s on %s: %w", req.LockerNumber, req.BoardID, err)
	}
	// The message is optional; a non-JSON body still means the request was accepted.
	var out openLockerResponse
	if decodeErr := resp.Decode(&out); decodeErr != nil {
		return "", nil
	}
	return out.Message, nil
}

func (r *LockerRepo) Stats(ctx context.Context) (*model.LockerStats, error) {
	resp, err := r.gw.Do(ctx, gateway.Request{Method: http.MethodGet, Path: "/lockers/stats"})
	if err != nil {
		return nil, fmt.Errorf("locker stats: %w", err)
	}
	return decodeObject[model.LockerStats](resp)
}
