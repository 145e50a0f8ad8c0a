package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Fluorine7/Holylight-marine/internal/domain"
	"github.com/Fluorine7/Holylight-marine/internal/event"
	apperrors "github.com/Fluorine7/Holylight-marine/pkg/errors"
	"github.com/Fluorine7/Holylight-marine/pkg/slug"
)

// CategoryService implements the business logic for category operations,
// including the delete guard that keeps the tree referentially intact.
type CategoryService struct {
	categories domain.CategoryRepository
	products   domain.ProductRepository
	producer   *event.Producer
	logger     *slog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(
	categories domain.CategoryRepository,
	products domain.ProductRepository,
	producer *event.Producer,
	logger *slog.Logger,
) *CategoryService {
	return &CategoryService{
		categories: categories,
		products:   products,
		producer:   producer,
		logger:     logger,
	}
}

// CreateCategory creates a new category with the given input.
func (s *CategoryService) CreateCategory(ctx context.Context, input *domain.CreateCategoryInput) (*domain.Category, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("category name is required")
	}

	if input.ParentID != nil {
		if err := s.ensureParentExists(ctx, *input.ParentID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	category := &domain.Category{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Slug:        slug.Ensure(input.Slug, input.Name, "category"),
		ParentID:    input.ParentID,
		SortOrder:   input.SortOrder,
		IsActive:    boolOrDefault(input.IsActive, true),
		ImageURL:    input.ImageURL,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.publishCatalogChanged(ctx, event.EntityCategory, event.ActionCreated, category.ID, category.Slug)

	s.logger.InfoContext(ctx, "category created",
		slog.String("category_id", category.ID),
		slog.String("slug", category.Slug),
	)

	return category, nil
}

// GetCategory retrieves a category by its ID.
func (s *CategoryService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	return category, nil
}

// GetCategoryBySlug retrieves a category by its slug.
func (s *CategoryService) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	return category, nil
}

// ListCategories returns every category as a flat list for admin screens.
func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListActiveCategories returns active categories as a flat list.
func (s *CategoryService) ListActiveCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active categories: %w", err)
	}
	return categories, nil
}

// ListTopLevelCategories returns the active root categories, optionally
// capped. A limit of zero or less returns all of them.
func (s *CategoryService) ListTopLevelCategories(ctx context.Context, limit int) ([]domain.Category, error) {
	categories, err := s.categories.ListTopLevel(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list top level categories: %w", err)
	}
	return categories, nil
}

// GetCategoryTree returns all active categories assembled into a forest.
func (s *CategoryService) GetCategoryTree(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categories.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories for tree: %w", err)
	}
	return domain.BuildTree(categories), nil
}

// GetCategoryPath returns the ancestor chain of a category, root first. The
// walk runs over all categories so inactive ancestors still resolve.
func (s *CategoryService) GetCategoryPath(ctx context.Context, id string) ([]domain.Category, error) {
	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories for path: %w", err)
	}

	path, err := domain.Path(categories, id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryMissing) {
			return nil, apperrors.NotFound("category", id)
		}
		return nil, apperrors.Internal(err)
	}
	return path, nil
}

// GetCategoryChildren returns the active direct children of a category.
func (s *CategoryService) GetCategoryChildren(ctx context.Context, id string) ([]domain.Category, error) {
	children, err := s.categories.ListByParent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list category children: %w", err)
	}
	return children, nil
}

// UpdateCategory applies partial updates to an existing category.
func (s *CategoryService) UpdateCategory(ctx context.Context, id string, input *domain.UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category for update: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperrors.InvalidInput("category name must not be empty")
		}
		category.Name = *input.Name
	}

	// The slug only changes when the request carries the slug key.
	if input.Slug != nil {
		category.Slug = slug.Ensure(*input.Slug, category.Name, "category")
	}

	if input.ParentID != nil {
		if err := s.applyParentChange(ctx, category, *input.ParentID); err != nil {
			return nil, err
		}
	}

	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if input.ImageURL != nil {
		category.ImageURL = input.ImageURL
	}
	if input.Description != nil {
		category.Description = input.Description
	}

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.publishCatalogChanged(ctx, event.EntityCategory, event.ActionUpdated, category.ID, category.Slug)

	s.logger.InfoContext(ctx, "category updated",
		slog.String("category_id", category.ID),
		slog.String("slug", category.Slug),
	)

	return category, nil
}

// CheckCategoryDelete reports whether the category can be removed. A category
// with child categories or products still attached cannot be deleted.
func (s *CategoryService) CheckCategoryDelete(ctx context.Context, id string) (*domain.CategoryDeleteCheck, error) {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("get category for delete check: %w", err)
	}

	childCount, err := s.categories.CountChildren(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count child categories: %w", err)
	}

	productCount, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count products in category: %w", err)
	}

	check := &domain.CategoryDeleteCheck{
		CanDelete:    childCount == 0 && productCount == 0,
		ChildCount:   childCount,
		ProductCount: productCount,
	}
	if !check.CanDelete {
		check.BlockedReason = deleteBlockedReason(childCount, productCount)
	}

	return check, nil
}

// DeleteCategory removes a category after verifying nothing references it.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	check, err := s.CheckCategoryDelete(ctx, id)
	if err != nil {
		return err
	}
	if !check.CanDelete {
		return apperrors.DeleteBlocked("category", check.BlockedReason)
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.publishCatalogChanged(ctx, event.EntityCategory, event.ActionDeleted, id, "")

	s.logger.InfoContext(ctx, "category deleted",
		slog.String("category_id", id),
	)

	return nil
}

// ensureParentExists verifies the referenced parent category, translating a
// missing row into a foreign key violation instead of a bare not found.
func (s *CategoryService) ensureParentExists(ctx context.Context, parentID string) error {
	if _, err := s.categories.GetByID(ctx, parentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ForeignKeyViolation("parent_id", parentID)
		}
		return fmt.Errorf("get parent category: %w", err)
	}
	return nil
}

// applyParentChange moves a category under a new parent. An empty parent id
// moves it to the top level. Self-parenting and moves that would close a loop
// through the category's own subtree are rejected.
func (s *CategoryService) applyParentChange(ctx context.Context, category *domain.Category, newParentID string) error {
	if newParentID == "" {
		category.ParentID = nil
		return nil
	}

	if newParentID == category.ID {
		return apperrors.InvalidInput("category cannot be its own parent")
	}

	if err := s.ensureParentExists(ctx, newParentID); err != nil {
		return err
	}

	all, err := s.categories.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list categories for cycle check: %w", err)
	}

	path, err := domain.Path(all, newParentID)
	if err != nil {
		return apperrors.Internal(err)
	}
	for _, ancestor := range path {
		if ancestor.ID == category.ID {
			return apperrors.InvalidInput("cannot move a category under its own descendant")
		}
	}

	category.ParentID = &newParentID
	return nil
}

func (s *CategoryService) publishCatalogChanged(ctx context.Context, entity, action, id, entitySlug string) {
	if err := s.producer.PublishCatalogChanged(ctx, entity, action, id, entitySlug); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish catalog change event",
			slog.String("entity", entity),
			slog.String("action", action),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}
}

// deleteBlockedReason builds a human readable summary of what blocks a
// category delete, e.g. "2 child categories, 5 products still reference it".
func deleteBlockedReason(childCount, productCount int) string {
	var parts []string
	if childCount > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", childCount, pluralize(childCount, "child category", "child categories")))
	}
	if productCount > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", productCount, pluralize(productCount, "product", "products")))
	}

	reason := ""
	for i, p := range parts {
		if i > 0 {
			reason += ", "
		}
		reason += p
	}
	return reason + " still reference it"
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// boolOrDefault returns the pointed-to value, or def when the pointer is nil.
func boolOrDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
