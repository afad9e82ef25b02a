package service

import (
	"context"
	"slices"
	"strings"

	"github.com/bokuwaitgel/smart-locker-panel/internal/core"
	"github.com/bokuwaitgel/smart-locker-panel/internal/domain/model"
	apperrors "github.com/bokuwaitgel/smart-locker-panel/internal/errors"
)

// OrderServiceOptions groups dependencies for OrderService.
type OrderServiceOptions struct {
	Repo core.DeliveryRepository
}

// OrderService exposes deliveries ("orders" in the panel).
type OrderService struct {
	repo core.DeliveryRepository
}

// NewOrderService constructs an OrderService.
func NewOrderService(opts OrderServiceOptions) *OrderService {
	if opts.Repo == nil {
		panic("DeliveryRepository is required")
	}
	return &OrderService{repo: opts.Repo}
}

// OrderView is the orders page model.
type OrderView struct {
	Orders []model.Delivery
	// Statuses are the distinct statuses the backend returned, plus the
	// filtered one so the selection stays visible.
	Statuses []model.DeliveryStatus
	Counts   map[model.DeliveryStatus]int
	Filter   model.DeliveryFilter
}

// ParseOrderFilter builds a filter from raw query values. An unknown status is
// a validation error; blank values mean "all".
func ParseOrderFilter(boardID, status string) (model.DeliveryFilter, error) {
	f := model.DeliveryFilter{BoardID: strings.TrimSpace(boardID)}
	status = strings.TrimSpace(status)
	if status == "" || strings.EqualFold(status, "all") {
		return f, nil
	}
	st, ok := model.ParseDeliveryStatus(status)
	if !ok {
		return f, apperrors.ValidationField("status", "unknown order status "+status)
	}
	f.Status = st
	return f, nil
}

// View lists deliveries. The filter is sent to the backend and applied again
// locally since not every backend honours it.
func (s *OrderService) View(ctx context.Context, filter model.DeliveryFilter) (*OrderView, error) {
	ds, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	shown := model.FilterDeliveries(ds, filter)
	statuses := model.DistinctDeliveryStatuses(ds)
	if filter.Status != "" && !slices.Contains(statuses, filter.Status) {
		statuses = append(statuses, filter.Status)
	}
	return &OrderView{
		Orders:   shown,
		Statuses: statuses,
		Counts:   model.CountDeliveriesByStatus(shown),
		Filter:   filter,
	}, nil
}

// SetStatus parses the raw status before updating delivery id.
func (s *OrderService) SetStatus(ctx context.Context, id int64, raw string) error {
	status, ok := model.ParseDeliveryStatus(raw)
	if !ok {
		return apperrors.Validationf("unknown order status %q", raw)
	}
	return s.repo.SetStatus(ctx, id, status)
}
