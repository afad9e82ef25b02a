package httpx

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/bokuwaitgel/smart-locker-panel/internal/domain/model"
)

const (
	bannersPath        = "/dashboard/banner"
	multipartMemory    = 8 << 20
	uploadTooLargeText = "File is too large."
)

// Banners lists kiosk banners.
func (h *UIHandlers) Banners(w http.ResponseWriter, r *http.Request) {
	h.renderBanners(w, r, nil)
}

func (h *UIHandlers) renderBanners(w http.ResponseWriter, r *http.Request, flash *Flash) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}
	h.Page(w, r, PageSpec{
		Meta:  PageMeta{Title: "Banners", PageTitle: "Banners", CurrentPage: PageBanners, Path: bannersPath},
		Flash: flash,
		Fetch: func(ctx context.Context, data map[string]any) error {
			bs, err := scope.Panel.Banners.List(ctx)
			if err != nil {
				return err
			}
			data["Banners"] = bs
			return nil
		},
	})
}

// BannerUpload accepts a multipart image or video upload.
// POST /dashboard/banner.
func (h *UIHandlers) BannerUpload(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		msg := "Could not read the upload."
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			msg = uploadTooLargeText
		}
		h.logger().WarnContext(r.Context(), "parse banner upload failed", "error", err)
		h.finishAction(w, r, errorFlash(msg), h.renderBanners, bannersPath)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	upload := model.BannerUpload{Type: model.BannerType(strings.ToLower(formValue(r, "type")))}
	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		upload.FileName = header.Filename
		upload.ContentType = uploadContentType(header)
		upload.Content = file
	case !errors.Is(err, http.ErrMissingFile):
		h.logger().WarnContext(r.Context(), "read banner file failed", "error", err)
	}

	b, err := scope.Panel.Banners.Upload(r.Context(), upload)
	if err != nil {
		h.logger().WarnContext(r.Context(), "banner upload failed", "file", upload.FileName, "error", err)
		h.finishAction(w, r, errorFlash(errorMessage(err, "Failed to save banner")), h.renderBanners, bannersPath)
		return
	}
	h.logger().InfoContext(r.Context(), "banner uploaded", "id", b.ID, "type", b.Type)
	h.finishAction(w, r, successFlash("Banner uploaded."), h.renderBanners, bannersPath)
}

// BannerToggle flips a banner between shown and hidden. The form posts the
// current state as "current".
// POST /dashboard/banner/{id}/toggle.
func (h *UIHandlers) BannerToggle(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err == nil {
		err = scope.Panel.Banners.Toggle(r.Context(), id, formBool(r, "current"))
	}
	if err != nil {
		h.logger().WarnContext(r.Context(), "toggle banner failed", "id", id, "error", err)
		h.finishAction(w, r, errorFlash(errorMessage(err, "Failed to update banner.")), h.renderBanners, bannersPath)
		return
	}
	h.finishAction(w, r, successFlash("Banner updated."), h.renderBanners, bannersPath)
}

// BannerDelete removes a banner.
// POST /dashboard/banner/{id}/delete.
func (h *UIHandlers) BannerDelete(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err == nil {
		err = scope.Panel.Banners.Delete(r.Context(), id)
	}
	if err != nil {
		h.logger().WarnContext(r.Context(), "delete banner failed", "id", id, "error", err)
		h.finishAction(w, r, errorFlash(errorMessage(err, "Failed to delete banner.")), h.renderBanners, bannersPath)
		return
	}
	h.finishAction(w, r, successFlash("Banner deleted."), h.renderBanners, bannersPath)
}

func uploadContentType(h *multipart.FileHeader) string {
	if ct := h.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
