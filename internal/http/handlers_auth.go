package httpx

import (
	"net/http"
	"net/url"

	"github.com/bokuwaitgel/smart-locker-panel/internal/http/validation"
	"github.com/bokuwaitgel/smart-locker-panel/internal/ports"
)

const (
	defaultAfterLogin = "/dashboard"
	maxEmailLen       = 254
)

// LoginPage renders the sign-in form. Signed-in users go straight to the dashboard.
// GET /login?redirect_uri=<optional_redirect>.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if s := SessionFromContext(r.Context()); s != nil && s.IsAuthenticated() {
		http.Redirect(w, r, postLoginTarget(r.URL.Query().Get("redirect_uri")), http.StatusSeeOther)
		return
	}
	data := NewTemplateData(r, PageMeta{Title: "Sign in", PageTitle: "Sign in", CurrentPage: PageLogin}).
		With("RedirectURI", r.URL.Query().Get("redirect_uri")).
		With("Email", "").
		Build()
	if f := takeFlash(w, r); f != nil {
		data["Flash"] = f
	}
	h.renderLogin(w, r, http.StatusOK, data)
}

// LoginSubmit exchanges the posted credentials for a backend token.
// POST /login.
func (h *UIHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}
	email := formValue(r, "email")
	password := r.FormValue("password")
	redirectURI := formValue(r, "redirect_uri")

	builder := NewTemplateData(r, PageMeta{Title: "Sign in", PageTitle: "Sign in", CurrentPage: PageLogin}).
		With("Email", email).
		With("RedirectURI", redirectURI)

	fv := validation.New().
		Validate("email", email, validation.Required("Email", maxEmailLen), validation.Email("Email")).
		Validate("password", password, validation.Required("Password", 1024))
	if !fv.Valid() {
		data := builder.WithFieldErrors(fv.Errors()).WithError(errMsgFixBelow).Build()
		h.renderLogin(w, r, loginStatus(r, http.StatusBadRequest), data)
		return
	}

	err := h.Auth.Login(r.Context(), scope.Session, ports.Credentials{Email: email, Password: password})
	if err != nil {
		h.logger().InfoContext(r.Context(), "login rejected", "error", err)
		data := builder.WithError(errorMessage(err, "Login failed. Please try again.")).Build()
		h.renderLogin(w, r, loginStatus(r, statusForError(err)), data)
		return
	}

	target := postLoginTarget(redirectURI)
	if IsHTMX(r) {
		SetHXRedirect(w, target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Logout drops the stored token and returns to the login page.
// POST /logout.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context(), SessionFromContext(r.Context())); err != nil {
		h.logger().WarnContext(r.Context(), "logout failed", "error", err)
	}
	setFlashCookie(w, r, successFlash("You have been signed out."))

	target := h.loginPath()
	if IsHTMX(r) {
		SetHXRedirect(w, target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Status reports the current session as JSON.
// GET /auth/status.
func (h *UIHandlers) Status(w http.ResponseWriter, r *http.Request) {
	s := SessionFromContext(r.Context())
	if s == nil {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	WriteJSON(w, http.StatusOK, s.Snapshot())
}

func (h *UIHandlers) renderLogin(w http.ResponseWriter, r *http.Request, status int, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.T.RenderLogin(w, r, data); err != nil {
		h.logger().ErrorContext(r.Context(), "render login failed", "error", err)
	}
}

// loginStatus keeps htmx swaps working by answering 200 to htmx posts.
func loginStatus(r *http.Request, status int) int {
	if IsHTMX(r) {
		return http.StatusOK
	}
	return status
}

// postLoginTarget returns a local path to continue to after sign-in.
func postLoginTarget(redirectURI string) string {
	if redirectURI == "" {
		return defaultAfterLogin
	}
	target := safeRedirectPath(redirectURI)
	if u, err := url.Parse(target); err != nil || u.Path == "/" || u.Path == "/login" {
		return defaultAfterLogin
	}
	return target
}
