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

// ProductService implements the business logic for product operations.
type ProductService struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
	brands     domain.BrandRepository
	producer   *event.Producer
	logger     *slog.Logger
}

// NewProductService creates a new product service.
func NewProductService(
	products domain.ProductRepository,
	categories domain.CategoryRepository,
	brands domain.BrandRepository,
	producer *event.Producer,
	logger *slog.Logger,
) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		brands:     brands,
		producer:   producer,
		logger:     logger,
	}
}

// CreateProduct creates a new product with the given input.
func (s *ProductService) CreateProduct(ctx context.Context, input *domain.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}
	if input.CategoryID == "" {
		return nil, apperrors.InvalidInput("product category is required")
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, apperrors.InvalidInput("price must not be negative")
	}

	if err := s.ensureCategoryExists(ctx, input.CategoryID); err != nil {
		return nil, err
	}
	if input.BrandID != nil {
		if err := s.ensureBrandExists(ctx, *input.BrandID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:             uuid.New().String(),
		CategoryID:     input.CategoryID,
		BrandID:        input.BrandID,
		Name:           input.Name,
		Model:          input.Model,
		Slug:           slug.Ensure(input.Slug, input.Name, "product"),
		Description:    input.Description,
		Specifications: input.Specifications,
		Price:          input.Price,
		Images:         input.Images,
		Downloads:      input.Downloads,
		SortOrder:      input.SortOrder,
		IsPublished:    boolOrDefault(input.IsPublished, true),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if product.Images == nil {
		product.Images = []string{}
	}
	if product.Downloads == nil {
		product.Downloads = []domain.Download{}
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.publishProductChanged(ctx, event.ActionCreated, product)

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID),
		slog.String("slug", product.Slug),
	)

	return product, nil
}

// GetProduct retrieves a product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return product, nil
}

// GetProductBySlug retrieves a product by its slug.
func (s *ProductService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	product, err := s.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get product by slug: %w", err)
	}
	return product, nil
}

// ListProducts returns every product for admin screens.
func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ListPublishedProducts returns published products for the storefront.
func (s *ProductService) ListPublishedProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published products: %w", err)
	}
	return products, nil
}

// ListProductsByCategory returns published products directly in a category.
func (s *ProductService) ListProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	products, err := s.products.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return products, nil
}

// UpdateProduct applies partial updates to an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input *domain.UpdateProductInput) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product for update: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperrors.InvalidInput("product name must not be empty")
		}
		product.Name = *input.Name
	}

	// The slug only changes when the request carries the slug key.
	if input.Slug != nil {
		product.Slug = slug.Ensure(*input.Slug, product.Name, "product")
	}

	if input.CategoryID != nil {
		if err := s.ensureCategoryExists(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *input.CategoryID
	}

	if input.BrandID != nil {
		if *input.BrandID == "" {
			product.BrandID = nil
		} else {
			if err := s.ensureBrandExists(ctx, *input.BrandID); err != nil {
				return nil, err
			}
			product.BrandID = input.BrandID
		}
	}

	if input.Model != nil {
		product.Model = input.Model
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Specifications != nil {
		product.Specifications = input.Specifications
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperrors.InvalidInput("price must not be negative")
		}
		product.Price = input.Price
	}
	if input.Images != nil {
		product.Images = *input.Images
	}
	if input.Downloads != nil {
		product.Downloads = *input.Downloads
	}
	if input.SortOrder != nil {
		product.SortOrder = *input.SortOrder
	}
	if input.IsPublished != nil {
		product.IsPublished = *input.IsPublished
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.publishProductChanged(ctx, event.ActionUpdated, product)

	s.logger.InfoContext(ctx, "product updated",
		slog.String("product_id", product.ID),
		slog.String("slug", product.Slug),
	)

	return product, nil
}

// DeleteProduct removes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	// Verify the product exists before deleting.
	if _, err := s.products.GetByID(ctx, id); err != nil {
		return fmt.Errorf("get product for delete: %w", err)
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if err := s.producer.PublishCatalogChanged(ctx, event.EntityProduct, event.ActionDeleted, id, ""); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish catalog change event",
			slog.String("product_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product deleted",
		slog.String("product_id", id),
	)

	return nil
}

func (s *ProductService) ensureCategoryExists(ctx context.Context, categoryID string) error {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ForeignKeyViolation("category_id", categoryID)
		}
		return fmt.Errorf("get category for product: %w", err)
	}
	return nil
}

func (s *ProductService) ensureBrandExists(ctx context.Context, brandID string) error {
	if _, err := s.brands.GetByID(ctx, brandID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ForeignKeyViolation("brand_id", brandID)
		}
		return fmt.Errorf("get brand for product: %w", err)
	}
	return nil
}

func (s *ProductService) publishProductChanged(ctx context.Context, action string, product *domain.Product) {
	if err := s.producer.PublishProductChanged(ctx, action, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish catalog change event",
			slog.String("product_id", product.ID),
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}
}
