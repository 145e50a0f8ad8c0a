package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Fluorine7/Holylight-marine/internal/domain"
	"github.com/Fluorine7/Holylight-marine/internal/service"
	"github.com/Fluorine7/Holylight-marine/pkg/httputil"
	"github.com/Fluorine7/Holylight-marine/pkg/validator"
)

// BannerHandler handles HTTP requests for banner endpoints.
type BannerHandler struct {
	service *service.ContentService
	logger  *slog.Logger
}

// NewBannerHandler creates a new banner HTTP handler.
func NewBannerHandler(svc *service.ContentService, logger *slog.Logger) *BannerHandler {
	return &BannerHandler{
		service: svc,
		logger:  logger,
	}
}

// ListBanners handles GET /api/v1/banners
// Returns active banners for the storefront carousel.
func (h *BannerHandler) ListBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.service.ListActiveBanners(r.Context())
	writePublicList(w, r, banners, err, h.logger)
}

// ListAllBanners handles GET /api/v1/admin/banners
func (h *BannerHandler) ListAllBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.service.ListBanners(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: banners})
}

// GetBanner handles GET /api/v1/admin/banners/{id}
func (h *BannerHandler) GetBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	banner, err := h.service.GetBanner(r.Context(), id.String())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: banner})
}

// CreateBanner handles POST /api/v1/admin/banners
func (h *BannerHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateBannerInput
	if !decodeBody(w, r, &input) {
		return
	}

	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	banner, err := h.service.CreateBanner(r.Context(), &input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: banner})
}

// UpdateBanner handles PUT /api/v1/admin/banners/{id}
func (h *BannerHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var input domain.UpdateBannerInput
	if !decodeBody(w, r, &input) {
		return
	}

	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	banner, err := h.service.UpdateBanner(r.Context(), id.String(), &input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: banner})
}

// DeleteBanner handles DELETE /api/v1/admin/banners/{id}
func (h *BannerHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.DeleteBanner(r.Context(), id.String()); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"id": id.String(), "status": "deleted"}})
}
