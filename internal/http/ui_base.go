package httpx

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bokuwaitgel/smart-locker-panel/internal/http/ui/viewmodel"
	"github.com/bokuwaitgel/smart-locker-panel/internal/service"
)

const (
	errMsgFixBelow  = "Please fix the errors below."
	errMsgGeneric   = "An unexpected error occurred. Please try again."
	flashCookieName = "flash"
	flashCookieAge  = 60
)

// UIHandlers serves browser-facing routes. Per-request services come from
// the RequestScope placed in the context by Scope.
type UIHandlers struct {
	T         *TemplateRenderer
	Auth      *service.AuthService
	LoginPath string
	IsDev     bool // detailed template errors
	Logger    *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *UIHandlers) loginPath() string {
	if h.LoginPath == "" {
		return "/login"
	}
	return h.LoginPath
}

// scope returns the request scope or answers 500 when the route was wired without Scope.
func (h *UIHandlers) scope(w http.ResponseWriter, r *http.Request) (*RequestScope, bool) {
	s, ok := ScopeFromContext(r.Context())
	if !ok {
		h.logger().ErrorContext(r.Context(), "request scope missing", "path", r.URL.Path)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return s, true
}

// Flash is a one-shot message shown after an action.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func successFlash(msg string) Flash { return Flash{Kind: flashSuccess, Message: msg} }
func errorFlash(msg string) Flash   { return Flash{Kind: flashError, Message: msg} }

// triggerToast sends the showToast event consumed by app.js.
func triggerToast(w http.ResponseWriter, message, toastType string) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Trigger("showToast", map[string]any{
		"message": message,
		"type":    strings.TrimSpace(toastType),
	})
}

func setFlashCookie(w http.ResponseWriter, r *http.Request, f Flash) {
	b, err := json.Marshal(f)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		MaxAge:   flashCookieAge,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// takeFlash reads and clears the flash cookie.
func takeFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(raw, &f); err != nil || f.Message == "" {
		return nil
	}
	return &f
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
	// Path is the canonical page URL path, used for navigation state and
	// for returning to the page after a form post.
	Path string
}

// buildLayout constructs shared layout metadata from the request session.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		CSRFToken:   GetCSRFToken(r),
	}

	if s := SessionFromContext(r.Context()); s != nil {
		snap := s.Snapshot()
		if snap.Authenticated && snap.User != nil {
			layout.IsAuthenticated = true
			layout.IsAdmin = snap.IsAdmin
			layout.User = &viewmodel.User{
				ID:    snap.User.ID,
				Email: snap.User.Email,
				Name:  snap.User.DisplayName(),
				Role:  string(snap.User.Role),
			}
		}
	}
	return layout
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	path := meta.Path
	if path == "" {
		path = r.URL.Path
	}
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"IsAuthenticated": layout.IsAuthenticated,
		"IsAdmin":         layout.IsAdmin,
		"Path":            path,
		"Query":           r.URL.RawQuery,
	}
	if layout.CSRFToken != "" {
		data["CSRFToken"] = layout.CSRFToken
	}
	if layout.User != nil {
		data["User"] = layout.User
	}
	return data
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, data map[string]any) error
	// Flash overrides the flash cookie, for htmx action responses.
	Flash *Flash
}

// Page builds base data, runs the fetch and renders. A failed fetch is
// logged and the page is shown with an error banner and no data.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := basePageData(r, spec.Meta)
	flash := spec.Flash
	if flash == nil {
		flash = takeFlash(w, r)
	}
	if flash != nil {
		data["Flash"] = flash
	}
	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			h.logger().WarnContext(r.Context(), "page data fetch failed",
				"page", spec.Meta.CurrentPage,
				"error", err,
			)
			markPageError(data, err)
		}
	}
	h.renderDashboardPage(w, r, data)
}

// finishAction reports the outcome of a form post. htmx callers get the
// refreshed page with a toast; plain posts are redirected back to the page
// with the message carried in a short-lived cookie.
func (h *UIHandlers) finishAction(w http.ResponseWriter, r *http.Request, f Flash, render func(http.ResponseWriter, *http.Request, *Flash), pagePath string) {
	pageURL := pagePath
	if r.URL.RawQuery != "" {
		pageURL += "?" + r.URL.RawQuery
	}
	if !IsHTMX(r) {
		setFlashCookie(w, r, f)
		http.Redirect(w, r, pageURL, http.StatusSeeOther)
		return
	}
	triggerToast(w, f.Message, f.Kind)
	SetHXPushURL(w, pageURL)
	render(w, r, &f)
}

// renderDashboardPage renders a dashboard page with proper htmx partial support.
func (h *UIHandlers) renderDashboardPage(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	layout := layoutFromMap(data)
	path, _ := data["Path"].(string)
	SetHXTrigger(w, "nav:activate", map[string]string{"path": path})

	// A <title> lets htmx update document.title on partial swaps.
	if _, err := w.Write([]byte(`<title>` + html.EscapeString(layout.Title) + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}
	header := `<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` + html.EscapeString(layout.PageTitle) + `</h1>`
	if _, err := w.Write([]byte(header)); err != nil {
		h.logger().Error("failed to write partial header title", "error", err)
		return
	}
	if err := h.T.RenderNamed(w, ContentTemplateFor(layout.CurrentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
	}
}

func markPageError(data map[string]any, err error) {
	data["Error"] = true
	if _, ok := data["ErrorMessage"]; ok {
		return
	}
	data["ErrorMessage"] = errorMessage(err, errMsgGeneric)
}

func layoutFromMap(data map[string]any) viewmodel.Layout {
	layout := viewmodel.Layout{}
	if v, ok := data["Title"].(string); ok {
		layout.Title = v
	}
	if v, ok := data["PageTitle"].(string); ok {
		layout.PageTitle = v
	}
	if v, ok := data["CurrentPage"].(string); ok {
		layout.CurrentPage = v
	}
	return layout
}

// renderStatusPage renders the standalone error page with status.
func (h *UIHandlers) renderStatusPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	data := basePageData(r, PageMeta{Title: http.StatusText(status), PageTitle: http.StatusText(status)})
	data["StatusCode"] = status
	data["ErrorMessage"] = message
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.T.RenderError(w, r, data); err != nil {
		h.logger().ErrorContext(r.Context(), "render error page failed", "error", err, "status", status)
	}
}

// NotFound renders the 404 page for browsers and a JSON error otherwise.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if !isBrowserRequest(r) {
		WriteJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "message": "not found"})
		return
	}
	h.renderStatusPage(w, r, http.StatusNotFound, "The page you are looking for does not exist.")
}

// logAndRenderTemplateError logs template errors and shows them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().ErrorContext(r.Context(), "template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if !h.IsDev {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	body := `<div class="dev-error"><h2>Template Rendering Error</h2>` +
		`<p><strong>Context:</strong> ` + html.EscapeString(context) + `</p>` +
		`<p><strong>Path:</strong> ` + html.EscapeString(r.URL.Path) + `</p>` +
		`<pre>` + html.EscapeString(err.Error()) + `</pre></div>`
	if _, writeErr := w.Write([]byte(body)); writeErr != nil {
		h.logger().Error("failed to write template error response", "error", writeErr)
	}
}
