package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Fluorine7/Holylight-marine/internal/domain"
	"github.com/Fluorine7/Holylight-marine/internal/service"
	"github.com/Fluorine7/Holylight-marine/pkg/httputil"
	"github.com/Fluorine7/Holylight-marine/pkg/validator"
)

// CategoryHandler handles HTTP requests for category endpoints.
type CategoryHandler struct {
	service *service.CategoryService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new category HTTP handler.
func NewCategoryHandler(svc *service.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: svc,
		logger:  logger,
	}
}

// ListCategories handles GET /api/v1/categories
// Returns active categories as a flat list by default. Pass ?tree=true to get
// the nested tree structure, or ?top_level=true for root categories only,
// optionally capped with ?limit=N.
// @Summary List categories
// @Description Returns active categories. Pass ?tree=true for a nested tree structure, ?top_level=true for root categories only.
// @Tags categories
// @Produce json
// @Param tree query bool false "Return categories as a nested tree"
// @Param top_level query bool false "Return root categories only"
// @Param limit query int false "Cap the top-level list at N rows"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/categories [get]
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("tree") == "true" {
		tree, err := h.service.GetCategoryTree(r.Context())
		writePublicList(w, r, tree, err, h.logger)
		return
	}

	if query.Get("top_level") == "true" {
		categories, err := h.service.ListTopLevelCategories(r.Context(), parseLimit(query.Get("limit")))
		writePublicList(w, r, categories, err, h.logger)
		return
	}

	categories, err := h.service.ListActiveCategories(r.Context())
	writePublicList(w, r, categories, err, h.logger)
}

// parseLimit reads an optional positive row cap. Anything unparseable or
// negative means no cap.
func parseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ListAllCategories handles GET /api/v1/admin/categories
// Returns every category, inactive rows included.
func (h *CategoryHandler) ListAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: categories})
}

// GetCategory handles GET /api/v1/categories/{idOrSlug}
// Accepts both a UUID (category ID) and a slug for lookup.
// @Summary Get category by ID or slug
// @Description Returns a category. Accepts UUID or URL slug.
// @Tags categories
// @Produce json
// @Param idOrSlug path string true "Category UUID or slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/categories/{idOrSlug} [get]
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	idOrSlug := chi.URLParam(r, "idOrSlug")
	if !requireParam(w, idOrSlug, "category id or slug") {
		return
	}

	var (
		category *domain.Category
		err      error
	)

	if _, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		category, err = h.service.GetCategory(r.Context(), idOrSlug)
	} else {
		category, err = h.service.GetCategoryBySlug(r.Context(), idOrSlug)
	}

	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: category})
}

// GetCategoryPath handles GET /api/v1/categories/{id}/path
// Returns the root-first ancestor chain for breadcrumb rendering.
func (h *CategoryHandler) GetCategoryPath(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !requireParam(w, id, "category id") {
		return
	}

	path, err := h.service.GetCategoryPath(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: path})
}

// GetCategoryChildren handles GET /api/v1/categories/{id}/children
func (h *CategoryHandler) GetCategoryChildren(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !requireParam(w, id, "category id") {
		return
	}

	children, err := h.service.GetCategoryChildren(r.Context(), id)
	writePublicList(w, r, children, err, h.logger)
}

// CreateCategory handles POST /api/v1/admin/categories
// @Summary Create a category
// @Description Creates a new catalog category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body domain.CreateCategoryInput true "Category to create"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/admin/categories [post]
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateCategoryInput
	if !decodeBody(w, r, &input) {
		return
	}

	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: category})
}

// UpdateCategory handles PUT /api/v1/admin/categories/{id}
// All fields are optional; a present slug key regenerates the slug.
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var input domain.UpdateCategoryInput
	if !decodeBody(w, r, &input) {
		return
	}

	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), id.String(), &input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: category})
}

// CheckCategoryDelete handles GET /api/v1/admin/categories/{id}/delete-check
// Lets the admin UI warn before attempting a delete that would be blocked.
func (h *CategoryHandler) CheckCategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	check, err := h.service.CheckCategoryDelete(r.Context(), id.String())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: check})
}

// DeleteCategory handles DELETE /api/v1/admin/categories/{id}
// Fails with 409 when child categories or products still reference the row.
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id.String()); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"id": id.String(), "status": "deleted"}})
}
