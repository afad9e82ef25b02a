package httpx

import (
	"context"
	"net/http"

	"github.com/bokuwaitgel/smart-locker-panel/internal/domain/model"
	"github.com/bokuwaitgel/smart-locker-panel/internal/http/validation"
)

const containersPath = "/dashboard/containers"

var containersMeta = PageMeta{
	Title:       "Containers",
	PageTitle:   "Containers",
	CurrentPage: PageContainers,
	Path:        containersPath,
}

// Containers lists locker banks.
func (h *UIHandlers) Containers(w http.ResponseWriter, r *http.Request) {
	h.renderContainers(w, r, nil)
}

func (h *UIHandlers) renderContainers(w http.ResponseWriter, r *http.Request, flash *Flash) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}
	h.Page(w, r, PageSpec{
		Meta:  containersMeta,
		Flash: flash,
		Fetch: func(ctx context.Context, data map[string]any) error {
			return h.fetchContainers(ctx, scope, data)
		},
	})
}

func (h *UIHandlers) fetchContainers(ctx context.Context, scope *RequestScope, data map[string]any) error {
	cs, err := scope.Panel.Containers.List(ctx)
	if err != nil {
		return err
	}
	data["Containers"] = cs
	data["Statuses"] = model.ContainerStatuses
	return nil
}

// ContainerCreate registers a new locker bank.
// POST /dashboard/containers.
func (h *UIHandlers) ContainerCreate(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}
	req := model.CreateContainerRequest{
		BoardID:     formValue(r, "boardId"),
		Location:    formValue(r, "location"),
		Description: formValue(r, "description"),
	}

	fv := validation.New().
		Validate("boardId", req.BoardID, validation.Required("Board ID", 64)).
		Validate("location", req.Location, validation.Required("Location", 255)).
		Validate("description", req.Description, validation.Optional("Description", 1000))
	if !fv.Valid() {
		h.containerFormError(w, r, scope, req, nil, fv.Errors())
		return
	}

	c, err := scope.Panel.Containers.Create(r.Context(), req)
	if err != nil {
		h.logger().WarnContext(r.Context(), "create container failed", "board_id", req.BoardID, "error", err)
		h.containerFormError(w, r, scope, req, err, nil)
		return
	}
	h.finishAction(w, r, successFlash("Container "+c.BoardID+" created."), h.renderContainers, containersPath)
}

// containerFormError re-renders the page with the submitted values kept.
func (h *UIHandlers) containerFormError(w http.ResponseWriter, r *http.Request, scope *RequestScope, req model.CreateContainerRequest, err error, fieldErrors map[string]string) {
	data := map[string]any{"Form": req, "ShowCreate": true}
	if fetchErr := h.fetchContainers(r.Context(), scope, data); fetchErr != nil {
		h.logger().WarnContext(r.Context(), "reload containers failed", "error", fetchErr)
	}
	RenderError(ErrorOpts{
		W:           w,
		R:           r,
		Err:         err,
		FieldErrors: fieldErrors,
		Renderer:    h.renderDashboardPage,
		PageMeta:    containersMeta,
		Data:        data,
		StatusCode:  formErrorStatus(r, err),
		ShowToast:   IsHTMX(r),
	})
}

// ContainerSetStatus changes a container's operating state.
// POST /dashboard/containers/{id}/status.
func (h *UIHandlers) ContainerSetStatus(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err == nil {
		err = scope.Panel.Containers.SetStatus(r.Context(), id, formValue(r, "status"))
	}
	if err != nil {
		h.logger().WarnContext(r.Context(), "set container status failed", "id", id, "error", err)
		h.finishAction(w, r, errorFlash(errorMessage(err, "Failed to update container status.")), h.renderContainers, containersPath)
		return
	}
	h.finishAction(w, r, successFlash("Container status updated."), h.renderContainers, containersPath)
}

// formErrorStatus keeps 200 for htmx so the form is swapped in place.
func formErrorStatus(r *http.Request, err error) int {
	if IsHTMX(r) {
		return 0
	}
	if err == nil {
		return http.StatusUnprocessableEntity
	}
	if code := statusForError(err); code >= 500 {
		return code
	}
	return http.StatusUnprocessableEntity
}
