package httpx

import (
	"context"
	"net/http"

	"github.com/bokuwaitgel/smart-locker-panel/internal/domain/model"
	"github.com/bokuwaitgel/smart-locker-panel/internal/service"
)

const ordersPath = "/dashboard/orders"

// Orders lists deliveries filtered by ?boardId= and ?status=.
func (h *UIHandlers) Orders(w http.ResponseWriter, r *http.Request) {
	h.renderOrders(w, r, nil)
}

func (h *UIHandlers) renderOrders(w http.ResponseWriter, r *http.Request, flash *Flash) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	h.Page(w, r, PageSpec{
		Meta:  PageMeta{Title: "Orders", PageTitle: "Orders", CurrentPage: PageOrders, Path: ordersPath},
		Flash: flash,
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Statuses"] = model.DeliveryStatuses
			filter, err := service.ParseOrderFilter(q.Get("boardId"), q.Get("status"))
			data["Filter"] = filter
			if err != nil {
				return err
			}
			view, err := scope.Panel.Orders.View(ctx, filter)
			if err != nil {
				return err
			}
			data["Orders"] = view.Orders
			data["Counts"] = view.Counts
			data["FilterStatuses"] = view.Statuses
			data["Filter"] = view.Filter
			return nil
		},
	})
}

// OrderSetStatus moves a delivery to another status.
// POST /dashboard/orders/{id}/status.
func (h *UIHandlers) OrderSetStatus(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err == nil {
		err = scope.Panel.Orders.SetStatus(r.Context(), id, formValue(r, "status"))
	}
	if err != nil {
		h.logger().WarnContext(r.Context(), "set order status failed", "id", id, "error", err)
		h.finishAction(w, r, errorFlash(errorMessage(err, "Failed to update order status.")), h.renderOrders, ordersPath)
		return
	}
	h.finishAction(w, r, successFlash("Order status updated."), h.renderOrders, ordersPath)
}
