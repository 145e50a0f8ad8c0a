package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Fluorine7/Holylight-marine/internal/domain"
	"github.com/Fluorine7/Holylight-marine/internal/event"
	apperrors "github.com/Fluorine7/Holylight-marine/pkg/errors"
	"github.com/Fluorine7/Holylight-marine/pkg/slug"
)

// BrandService implements the business logic for brand operations.
type BrandService struct {
	brands   domain.BrandRepository
	products domain.ProductRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewBrandService creates a new brand service.
func NewBrandService(
	brands domain.BrandRepository,
	products domain.ProductRepository,
	producer *event.Producer,
	logger *slog.Logger,
) *BrandService {
	return &BrandService{
		brands:   brands,
		products: products,
		producer: producer,
		logger:   logger,
	}
}

// CreateBrand creates a new brand with the given input.
func (s *BrandService) CreateBrand(ctx context.Context, input *domain.CreateBrandInput) (*domain.Brand, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("brand name is required")
	}

	now := time.Now().UTC()
	brand := &domain.Brand{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Slug:        slug.Ensure(input.Slug, input.Name, "brand"),
		LogoURL:     input.LogoURL,
		Website:     input.Website,
		Description: input.Description,
		SortOrder:   input.SortOrder,
		IsActive:    boolOrDefault(input.IsActive, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.brands.Create(ctx, brand); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}

	s.publishChanged(ctx, event.ActionCreated, brand.ID, brand.Slug)

	s.logger.InfoContext(ctx, "brand created",
		slog.String("brand_id", brand.ID),
		slog.String("slug", brand.Slug),
	)

	return brand, nil
}

// GetBrand retrieves a brand by its ID.
func (s *BrandService) GetBrand(ctx context.Context, id string) (*domain.Brand, error) {
	brand, err := s.brands.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get brand by id: %w", err)
	}
	return brand, nil
}

// GetBrandBySlug retrieves a brand by its slug.
func (s *BrandService) GetBrandBySlug(ctx context.Context, slug string) (*domain.Brand, error) {
	brand, err := s.brands.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get brand by slug: %w", err)
	}
	return brand, nil
}

// ListBrands returns every brand for admin screens.
func (s *BrandService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	brands, err := s.brands.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return brands, nil
}

// ListActiveBrands returns active brands for the storefront.
func (s *BrandService) ListActiveBrands(ctx context.Context) ([]domain.Brand, error) {
	brands, err := s.brands.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active brands: %w", err)
	}
	return brands, nil
}

// UpdateBrand applies partial updates to an existing brand.
func (s *BrandService) UpdateBrand(ctx context.Context, id string, input *domain.UpdateBrandInput) (*domain.Brand, error) {
	brand, err := s.brands.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get brand for update: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperrors.InvalidInput("brand name must not be empty")
		}
		brand.Name = *input.Name
	}

	// The slug only changes when the request carries the slug key.
	if input.Slug != nil {
		brand.Slug = slug.Ensure(*input.Slug, brand.Name, "brand")
	}

	if input.LogoURL != nil {
		brand.LogoURL = input.LogoURL
	}
	if input.Website != nil {
		brand.Website = input.Website
	}
	if input.Description != nil {
		brand.Description = input.Description
	}
	if input.SortOrder != nil {
		brand.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		brand.IsActive = *input.IsActive
	}

	if err := s.brands.Update(ctx, brand); err != nil {
		return nil, fmt.Errorf("update brand: %w", err)
	}

	s.publishChanged(ctx, event.ActionUpdated, brand.ID, brand.Slug)

	s.logger.InfoContext(ctx, "brand updated",
		slog.String("brand_id", brand.ID),
		slog.String("slug", brand.Slug),
	)

	return brand, nil
}

// DeleteBrand removes a brand after verifying no product references it.
func (s *BrandService) DeleteBrand(ctx context.Context, id string) error {
	if _, err := s.brands.GetByID(ctx, id); err != nil {
		return fmt.Errorf("get brand for delete: %w", err)
	}

	productCount, err := s.products.CountByBrand(ctx, id)
	if err != nil {
		return fmt.Errorf("count products by brand: %w", err)
	}
	if productCount > 0 {
		reason := fmt.Sprintf("%d %s still reference it", productCount, pluralize(productCount, "product", "products"))
		return apperrors.DeleteBlocked("brand", reason)
	}

	if err := s.brands.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}

	s.publishChanged(ctx, event.ActionDeleted, id, "")

	s.logger.InfoContext(ctx, "brand deleted",
		slog.String("brand_id", id),
	)

	return nil
}

func (s *BrandService) publishChanged(ctx context.Context, action, id, brandSlug string) {
	if err := s.producer.PublishCatalogChanged(ctx, event.EntityBrand, action, id, brandSlug); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish catalog change event",
			slog.String("brand_id", id),
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}
}
