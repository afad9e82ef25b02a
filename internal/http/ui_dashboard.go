package httpx

import (
	"context"
	"net/http"
)

// Index sends the site root to the dashboard.
func (h *UIHandlers) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Dashboard shows container and locker totals.
func (h *UIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Dashboard", PageTitle: "Dashboard", CurrentPage: PageDashboard, Path: "/dashboard"},
		Fetch: func(ctx context.Context, data map[string]any) error {
			stats, err := scope.Panel.Dashboard.Stats(ctx)
			if err != nil {
				return err
			}
			data["Stats"] = stats
			return nil
		},
	})
}
