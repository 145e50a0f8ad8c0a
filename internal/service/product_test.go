package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Fluorine7/Holylight-marine/internal/domain"
	apperrors "github.com/Fluorine7/Holylight-marine/pkg/errors"
)

func newProductService(t *testing.T, products *mockProductRepository, categories *mockCategoryRepository, brands *mockBrandRepository) *ProductService {
	t.Helper()
	return NewProductService(products, categories, brands, newTestProducer(t), newTestLogger())
}

func sampleStoredProduct() *domain.Product {
	return &domain.Product{
		ID:          "prod-1",
		CategoryID:  "cat-1",
		Name:        "D4-320 Marine Diesel",
		Slug:        "d4-320-marine-diesel",
		Images:      []string{"https://cdn.example.com/d4-320.jpg"},
		Downloads:   []domain.Download{},
		IsPublished: true,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func TestCreateProduct_Success(t *testing.T) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	brands := new(mockBrandRepository)
	svc := newProductService(t, products, categories, brands)
	ctx := context.Background()

	categories.On("GetByID", ctx, "cat-1").Return(sampleCategory(), nil)
	products.On("Create", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)

	product, err := svc.CreateProduct(ctx, &domain.CreateProductInput{
		CategoryID: "cat-1",
		Name:       "Deck Winch 500",
		Price:      int64Ptr(125000),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Regexp(t, `^deck-winch-500-[a-z0-9]{8}$`, product.Slug)
	assert.True(t, product.IsPublished)
	assert.Equal(t, []string{}, product.Images)
	assert.Equal(t, []domain.Download{}, product.Downloads)
	products.AssertExpectations(t)
}

func TestCreateProduct_MissingCategory(t *testing.T) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	brands := new(mockBrandRepository)
	svc := newProductService(t, products, categories, brands)
	ctx := context.Background()

	categories.On("GetByID", ctx, "gone").Return(nil, apperrors.ErrNotFound)

	_, err := svc.CreateProduct(ctx, &domain.CreateProductInput{
		CategoryID: "gone",
		Name:       "Deck Winch 500",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrForeignKey)
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProduct_MissingBrand(t *testing.T) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	brands := new(mockBrandRepository)
	svc := newProductService(t, products, categories, brands)
	ctx := context.Background()

	categories.On("GetByID", ctx, "cat-1").Return(sampleCategory(), nil)
	brands.On("GetByID", ctx, "no-brand").Return(nil, apperrors.ErrNotFound)

	_, err := svc.CreateProduct(ctx, &domain.CreateProductInput{
		CategoryID: "cat-1",
		BrandID:    strPtr("no-brand"),
		Name:       "Deck Winch 500",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrForeignKey)
}

func TestCreateProduct_NegativePrice(t *testing.T) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	brands := new(mockBrandRepository)
	svc := newProductService(t, products, categories, brands)

	_, err := svc.CreateProduct(context.Background(), &domain.CreateProductInput{
		CategoryID: "cat-1",
		Name:       "Deck Winch 500",
		Price:      int64Ptr(-1),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestUpdateProduct_PatchSemantics(t *testing.T) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	brands := new(mockBrandRepository)
	svc := newProductService(t, products, categories, brands)
	ctx := context.Background()

	existing := sampleStoredProduct()
	products.On("GetByID", ctx, existing.ID).Return(existing, nil)
	products.On("Update", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)

	updated, err := svc.UpdateProduct(ctx, existing.ID, &domain.UpdateProductInput{
		Description: strPtr("Compact four cylinder diesel"),
		IsPublished: boolPtr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, "Compact four cylinder diesel", *updated.Description)
	assert.False(t, updated.IsPublished)
	// Untouched fields survive the patch.
	assert.Equal(t, "D4-320 Marine Diesel", updated.Name)
	assert.Equal(t, "d4-320-marine-diesel", updated.Slug)
}

func TestUpdateProduct_EmptyPatchIsIdempotent(t *testing.T) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	brands := new(mockBrandRepository)
	svc := newProductService(t, products, categories, brands)
	ctx := context.Background()

	existing := sampleStoredProduct()
	products.On("GetByID", ctx, existing.ID).Return(existing, nil)
	products.On("Update", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)

	updated, err := svc.UpdateProduct(ctx, existing.ID, &domain.UpdateProductInput{})

	require.NoError(t, err)
	assert.Equal(t, existing.Name, updated.Name)
	assert.Equal(t, existing.Slug, updated.Slug)
	assert.Equal(t, existing.CategoryID, updated.CategoryID)
}

func TestUpdateProduct_SlugKeyRegenerates(t *testing.T) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	brands := new(mockBrandRepository)
	svc := newProductService(t, products, categories, brands)
	ctx := context.Background()

	existing := sampleStoredProduct()
	products.On("GetByID", ctx, existing.ID).Return(existing, nil)
	products.On("Update", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)

	updated, err := svc.UpdateProduct(ctx, existing.ID, &domain.UpdateProductInput{
		Slug: strPtr("d4-320 evo"),
	})

	require.NoError(t, err)
	assert.Equal(t, "d4-320-evo", updated.Slug)
}

func TestUpdateProduct_ReplaceImagesWholesale(t *testing.T) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	brands := new(mockBrandRepository)
	svc := newProductService(t, products, categories, brands)
	ctx := context.Background()

	existing := sampleStoredProduct()
	products.On("GetByID", ctx, existing.ID).Return(existing, nil)
	products.On("Update", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)

	newImages := []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}
	updated, err := svc.UpdateProduct(ctx, existing.ID, &domain.UpdateProductInput{
		Images: &newImages,
	})

	require.NoError(t, err)
	assert.Equal(t, newImages, updated.Images)
}

func TestUpdateProduct_ClearBrand(t *testing.T) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	brands := new(mockBrandRepository)
	svc := newProductService(t, products, categories, brands)
	ctx := context.Background()

	existing := sampleStoredProduct()
	existing.BrandID = strPtr("brand-1")
	products.On("GetByID", ctx, existing.ID).Return(existing, nil)
	products.On("Update", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)

	updated, err := svc.UpdateProduct(ctx, existing.ID, &domain.UpdateProductInput{
		BrandID: strPtr(""),
	})

	require.NoError(t, err)
	assert.Nil(t, updated.BrandID)
	brands.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	brands := new(mockBrandRepository)
	svc := newProductService(t, products, categories, brands)
	ctx := context.Background()

	products.On("GetByID", ctx, "missing").Return(nil, apperrors.ErrNotFound)

	_, err := svc.UpdateProduct(ctx, "missing", &domain.UpdateProductInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteProduct_Success(t *testing.T) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	brands := new(mockBrandRepository)
	svc := newProductService(t, products, categories, brands)
	ctx := context.Background()

	existing := sampleStoredProduct()
	products.On("GetByID", ctx, existing.ID).Return(existing, nil)
	products.On("Delete", ctx, existing.ID).Return(nil)

	err := svc.DeleteProduct(ctx, existing.ID)
	assert.NoError(t, err)
	products.AssertExpectations(t)
}

func TestListPublishedProducts(t *testing.T) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	brands := new(mockBrandRepository)
	svc := newProductService(t, products, categories, brands)
	ctx := context.Background()

	products.On("ListPublished", ctx).Return([]domain.Product{*sampleStoredProduct()}, nil)

	list, err := svc.ListPublishedProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
