package httpx

import (
	"context"
	"net/http"

	"github.com/bokuwaitgel/smart-locker-panel/internal/domain/model"
)

const lockersPath = "/dashboard/lockers"

// Lockers lists lockers, optionally narrowed to one board with ?boardId=.
func (h *UIHandlers) Lockers(w http.ResponseWriter, r *http.Request) {
	h.renderLockers(w, r, nil)
}

func (h *UIHandlers) renderLockers(w http.ResponseWriter, r *http.Request, flash *Flash) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}
	filter := model.LockerFilter{BoardID: r.URL.Query().Get("boardId")}
	h.Page(w, r, PageSpec{
		Meta:  PageMeta{Title: "Lockers", PageTitle: "Lockers", CurrentPage: PageLockers, Path: lockersPath},
		Flash: flash,
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Filter"] = filter
			view, err := scope.Panel.Lockers.View(ctx, filter)
			if err != nil {
				return err
			}
			data["Lockers"] = view.Lockers
			data["Boards"] = view.Boards
			data["Counts"] = view.Counts
			data["Total"] = view.Total
			data["Filter"] = view.Filter
			data["Statuses"] = model.LockerStatuses
			return nil
		},
	})
}

// LockerSetStatus changes a locker's state.
// POST /dashboard/lockers/{id}/status.
func (h *UIHandlers) LockerSetStatus(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err == nil {
		err = scope.Panel.Lockers.SetStatus(r.Context(), id, formValue(r, "status"))
	}
	if err != nil {
		h.logger().WarnContext(r.Context(), "set locker status failed", "id", id, "error", err)
		h.finishAction(w, r, errorFlash(errorMessage(err, "Failed to update locker status.")), h.renderLockers, lockersPath)
		return
	}
	h.finishAction(w, r, successFlash("Locker status updated."), h.renderLockers, lockersPath)
}

// LockerOpen asks the board to release a locker door.
// POST /dashboard/lockers/{id}/open. The form carries lockerNumber and boardId.
func (h *UIHandlers) LockerOpen(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}
	req := model.OpenLockerRequest{
		LockerNumber: formValue(r, "lockerNumber"),
		BoardID:      formValue(r, "boardId"),
	}
	msg, err := scope.Panel.Lockers.Open(r.Context(), req)
	if err != nil {
		h.logger().WarnContext(r.Context(), "open locker failed",
			"locker_number", req.LockerNumber,
			"board_id", req.BoardID,
			"error", err,
		)
		h.finishAction(w, r, errorFlash(errorMessage(err, "Failed to open locker. Please try again.")), h.renderLockers, lockersPath)
		return
	}
	h.logger().InfoContext(r.Context(), "locker open requested", "locker_number", req.LockerNumber, "board_id", req.BoardID)
	h.finishAction(w, r, successFlash(msg), h.renderLockers, lockersPath)
}
