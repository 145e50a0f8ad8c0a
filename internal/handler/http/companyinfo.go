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

// CompanyInfoHandler handles HTTP requests for company info endpoints.
type CompanyInfoHandler struct {
	service *service.ContentService
	logger  *slog.Logger
}

// NewCompanyInfoHandler creates a new company info HTTP handler.
func NewCompanyInfoHandler(svc *service.ContentService, logger *slog.Logger) *CompanyInfoHandler {
	return &CompanyInfoHandler{
		service: svc,
		logger:  logger,
	}
}

// ListCompanyInfo handles GET /api/v1/company-info
func (h *CompanyInfoHandler) ListCompanyInfo(w http.ResponseWriter, r *http.Request) {
	infos, err := h.service.ListCompanyInfo(r.Context())
	writePublicList(w, r, infos, err, h.logger)
}

// GetCompanyInfo handles GET /api/v1/company-info/{section}
func (h *CompanyInfoHandler) GetCompanyInfo(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	if !requireParam(w, section, "section") {
		return
	}

	info, err := h.service.GetCompanyInfo(r.Context(), section)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: info})
}

// UpsertCompanyInfo handles PUT /api/v1/admin/company-info
// The same call serves both the first write of a section and every later edit.
func (h *CompanyInfoHandler) UpsertCompanyInfo(w http.ResponseWriter, r *http.Request) {
	var input domain.UpsertCompanyInfoInput
	if !decodeBody(w, r, &input) {
		return
	}

	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	info, err := h.service.UpsertCompanyInfo(r.Context(), &input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: info})
}
