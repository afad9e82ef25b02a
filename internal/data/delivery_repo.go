package data

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bokuwaitgel/smart-locker-panel/internal/core"
	"github.com/bokuwaitgel/smart-locker-panel/internal/domain/model"
	"github.com/bokuwaitgel/smart-locker-panel/internal/gateway"
)

var _ core.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implements core.DeliveryRepository against /deliveries.
type DeliveryRepo struct {
	gw gateway.Doer
}

// NewDeliveryRepo creates a DeliveryRepo.
func NewDeliveryRepo(gw gateway.Doer) *DeliveryRepo {
	return &DeliveryRepo{gw: gw}
}

// List fetches deliveries, passing non-empty filters as query parameters.
func (r *DeliveryRepo) List(ctx context.Context, filter model.DeliveryFilter) ([]model.Delivery, error) {
	q := url.Values{}
	if filter.BoardID != "" {
		q.Set("boardId", filter.BoardID)
	}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	resp, err := r.gw.Do(ctx, gateway.Request{Method: http.MethodGet, Path: "/deliveries", Query: q})
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return decodeList[model.Delivery](resp)
}

func (r *DeliveryRepo) SetStatus(ctx context.Context, id int64, status model.DeliveryStatus) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	_, err := r.gw.Do(ctx, gateway.Request{
		Method: http.MethodPut,
		Path:   "/deliveries/" + strconv.FormatInt(id, 10) + "/status",
		Route:  "/deliveries/{id}/status",
		JSON:   map[string]model.DeliveryStatus{"status": status},
	})
	if err != nil {
		return fmt.Errorf("set delivery %d status: %w", id, err)
	}
	return nil
}
