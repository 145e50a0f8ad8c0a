package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Fluorine7/Holylight-marine/internal/domain"
	"github.com/Fluorine7/Holylight-marine/internal/service"
	"github.com/Fluorine7/Holylight-marine/pkg/httputil"
	"github.com/Fluorine7/Holylight-marine/pkg/validator"
)

// BrandHandler handles HTTP requests for brand endpoints.
type BrandHandler struct {
	service *service.BrandService
	logger  *slog.Logger
}

// NewBrandHandler creates a new brand HTTP handler.
func NewBrandHandler(svc *service.BrandService, logger *slog.Logger) *BrandHandler {
	return &BrandHandler{
		service: svc,
		logger:  logger,
	}
}

// ListBrands handles GET /api/v1/brands
// Returns active brands for the storefront brand wall.
func (h *BrandHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.service.ListActiveBrands(r.Context())
	writePublicList(w, r, brands, err, h.logger)
}

// ListAllBrands handles GET /api/v1/admin/brands
func (h *BrandHandler) ListAllBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.service.ListBrands(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: brands})
}

// GetBrand handles GET /api/v1/brands/{idOrSlug}
// Accepts both a UUID (brand ID) and a slug for lookup.
func (h *BrandHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	idOrSlug := chi.URLParam(r, "idOrSlug")
	if !requireParam(w, idOrSlug, "brand id or slug") {
		return
	}

	var (
		brand *domain.Brand
		err   error
	)

	if _, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		brand, err = h.service.GetBrand(r.Context(), idOrSlug)
	} else {
		brand, err = h.service.GetBrandBySlug(r.Context(), idOrSlug)
	}

	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: brand})
}

// CreateBrand handles POST /api/v1/admin/brands
func (h *BrandHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateBrandInput
	if !decodeBody(w, r, &input) {
		return
	}

	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	brand, err := h.service.CreateBrand(r.Context(), &input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: brand})
}

// UpdateBrand handles PUT /api/v1/admin/brands/{id}
func (h *BrandHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var input domain.UpdateBrandInput
	if !decodeBody(w, r, &input) {
		return
	}

	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	brand, err := h.service.UpdateBrand(r.Context(), id.String(), &input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: brand})
}

// DeleteBrand handles DELETE /api/v1/admin/brands/{id}
// Fails with 409 when products still reference the brand.
func (h *BrandHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.DeleteBrand(r.Context(), id.String()); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"id": id.String(), "status": "deleted"}})
}
