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

// NewsHandler handles HTTP requests for news endpoints.
type NewsHandler struct {
	service *service.NewsService
	logger  *slog.Logger
}

// NewNewsHandler creates a new news HTTP handler.
func NewNewsHandler(svc *service.NewsService, logger *slog.Logger) *NewsHandler {
	return &NewsHandler{
		service: svc,
		logger:  logger,
	}
}

// ListNews handles GET /api/v1/news
// Returns published articles, newest first.
func (h *NewsHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	articles, err := h.service.ListPublishedArticles(r.Context())
	writePublicList(w, r, articles, err, h.logger)
}

// ListAllNews handles GET /api/v1/admin/news
// Returns every article, drafts included.
func (h *NewsHandler) ListAllNews(w http.ResponseWriter, r *http.Request) {
	articles, err := h.service.ListArticles(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: articles})
}

// GetNews handles GET /api/v1/news/{idOrSlug}
// Accepts both a UUID (article ID) and a slug for lookup.
func (h *NewsHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	idOrSlug := chi.URLParam(r, "idOrSlug")
	if !requireParam(w, idOrSlug, "article id or slug") {
		return
	}

	var (
		article *domain.NewsArticle
		err     error
	)

	if _, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		article, err = h.service.GetArticle(r.Context(), idOrSlug)
	} else {
		article, err = h.service.GetArticleBySlug(r.Context(), idOrSlug)
	}

	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: article})
}

// CreateNews handles POST /api/v1/admin/news
func (h *NewsHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateNewsInput
	if !decodeBody(w, r, &input) {
		return
	}

	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	article, err := h.service.CreateArticle(r.Context(), &input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: article})
}

// UpdateNews handles PUT /api/v1/admin/news/{id}
func (h *NewsHandler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var input domain.UpdateNewsInput
	if !decodeBody(w, r, &input) {
		return
	}

	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	article, err := h.service.UpdateArticle(r.Context(), id.String(), &input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: article})
}

// DeleteNews handles DELETE /api/v1/admin/news/{id}
func (h *NewsHandler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.DeleteArticle(r.Context(), id.String()); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"id": id.String(), "status": "deleted"}})
}
