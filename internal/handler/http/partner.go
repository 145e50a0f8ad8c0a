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

// PartnerHandler handles HTTP requests for partner endpoints.
type PartnerHandler struct {
	service *service.ContentService
	logger  *slog.Logger
}

// NewPartnerHandler creates a new partner HTTP handler.
func NewPartnerHandler(svc *service.ContentService, logger *slog.Logger) *PartnerHandler {
	return &PartnerHandler{
		service: svc,
		logger:  logger,
	}
}

// ListPartners handles GET /api/v1/partners
// Returns active partners for the storefront logo strip.
func (h *PartnerHandler) ListPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.service.ListActivePartners(r.Context())
	writePublicList(w, r, partners, err, h.logger)
}

// ListAllPartners handles GET /api/v1/admin/partners
func (h *PartnerHandler) ListAllPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.service.ListPartners(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: partners})
}

// GetPartner handles GET /api/v1/admin/partners/{id}
func (h *PartnerHandler) GetPartner(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	partner, err := h.service.GetPartner(r.Context(), id.String())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: partner})
}

// CreatePartner handles POST /api/v1/admin/partners
func (h *PartnerHandler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	var input domain.CreatePartnerInput
	if !decodeBody(w, r, &input) {
		return
	}

	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	partner, err := h.service.CreatePartner(r.Context(), &input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: partner})
}

// UpdatePartner handles PUT /api/v1/admin/partners/{id}
func (h *PartnerHandler) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var input domain.UpdatePartnerInput
	if !decodeBody(w, r, &input) {
		return
	}

	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	partner, err := h.service.UpdatePartner(r.Context(), id.String(), &input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: partner})
}

// DeletePartner handles DELETE /api/v1/admin/partners/{id}
func (h *PartnerHandler) DeletePartner(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.DeletePartner(r.Context(), id.String()); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"id": id.String(), "status": "deleted"}})
}
