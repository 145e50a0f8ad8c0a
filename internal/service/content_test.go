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

func newContentService(t *testing.T, banners *mockBannerRepository, partners *mockPartnerRepository, info *mockCompanyInfoRepository) *ContentService {
	t.Helper()
	return NewContentService(banners, partners, info, newTestProducer(t), newTestLogger())
}

// ─── Banners ────────────────────────────────────────────────────────────────

func TestCreateBanner_DefaultsActive(t *testing.T) {
	banners := new(mockBannerRepository)
	svc := newContentService(t, banners, new(mockPartnerRepository), new(mockCompanyInfoRepository))
	ctx := context.Background()

	banners.On("Create", ctx, mock.AnythingOfType("*domain.Banner")).Return(nil)

	banner, err := svc.CreateBanner(ctx, &domain.CreateBannerInput{
		Title:    "Boat Show Special",
		ImageURL: "https://cdn.example.com/boat-show.jpg",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, banner.ID)
	assert.True(t, banner.IsActive)
	banners.AssertExpectations(t)
}

func TestCreateBanner_MissingImage(t *testing.T) {
	banners := new(mockBannerRepository)
	svc := newContentService(t, banners, new(mockPartnerRepository), new(mockCompanyInfoRepository))

	_, err := svc.CreateBanner(context.Background(), &domain.CreateBannerInput{
		Title: "Boat Show Special",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	banners.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateBanner_Patch(t *testing.T) {
	banners := new(mockBannerRepository)
	svc := newContentService(t, banners, new(mockPartnerRepository), new(mockCompanyInfoRepository))
	ctx := context.Background()

	existing := &domain.Banner{
		ID:       "banner-1",
		Title:    "Boat Show Special",
		ImageURL: "https://cdn.example.com/boat-show.jpg",
		IsActive: true,
	}
	banners.On("GetByID", ctx, existing.ID).Return(existing, nil)
	banners.On("Update", ctx, mock.AnythingOfType("*domain.Banner")).Return(nil)

	updated, err := svc.UpdateBanner(ctx, existing.ID, &domain.UpdateBannerInput{
		IsActive: boolPtr(false),
	})

	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Boat Show Special", updated.Title)
}

// ─── Partners ───────────────────────────────────────────────────────────────

func TestCreatePartner_Success(t *testing.T) {
	partners := new(mockPartnerRepository)
	svc := newContentService(t, new(mockBannerRepository), partners, new(mockCompanyInfoRepository))
	ctx := context.Background()

	partners.On("Create", ctx, mock.AnythingOfType("*domain.Partner")).Return(nil)

	partner, err := svc.CreatePartner(ctx, &domain.CreatePartnerInput{
		Name:    "Azimut Yachts",
		LogoURL: "https://cdn.example.com/azimut.png",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, partner.ID)
	assert.True(t, partner.IsActive)
	partners.AssertExpectations(t)
}

func TestCreatePartner_MissingLogo(t *testing.T) {
	partners := new(mockPartnerRepository)
	svc := newContentService(t, new(mockBannerRepository), partners, new(mockCompanyInfoRepository))

	_, err := svc.CreatePartner(context.Background(), &domain.CreatePartnerInput{
		Name: "Azimut Yachts",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

// ─── Company info ───────────────────────────────────────────────────────────

func TestUpsertCompanyInfo_Success(t *testing.T) {
	info := new(mockCompanyInfoRepository)
	svc := newContentService(t, new(mockBannerRepository), new(mockPartnerRepository), info)
	ctx := context.Background()

	info.On("Upsert", ctx, mock.AnythingOfType("*domain.CompanyInfo")).Return(nil)

	result, err := svc.UpsertCompanyInfo(ctx, &domain.UpsertCompanyInfoInput{
		Section: domain.SectionAbout,
		Content: "Twenty years of marine equipment trading.",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SectionAbout, result.Section)
	info.AssertExpectations(t)
}

func TestUpsertCompanyInfo_RepeatedWritesKeepStoredID(t *testing.T) {
	info := new(mockCompanyInfoRepository)
	svc := newContentService(t, new(mockBannerRepository), new(mockPartnerRepository), info)
	ctx := context.Background()

	// The repository writes the persisted identity back into the block, the
	// way the RETURNING clause does against a live database.
	info.On("Upsert", ctx, mock.AnythingOfType("*domain.CompanyInfo")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.CompanyInfo).ID = "info-about"
		}).
		Return(nil)

	first, err := svc.UpsertCompanyInfo(ctx, &domain.UpsertCompanyInfoInput{
		Section: domain.SectionAbout,
		Content: "Twenty years of marine equipment trading.",
	})
	require.NoError(t, err)

	second, err := svc.UpsertCompanyInfo(ctx, &domain.UpsertCompanyInfoInput{
		Section: domain.SectionAbout,
		Content: "Twenty-two years of marine equipment trading.",
	})
	require.NoError(t, err)

	// Editing a section must answer with the id of the stored row, not a
	// fresh candidate per call.
	assert.Equal(t, "info-about", first.ID)
	assert.Equal(t, first.ID, second.ID)
}

func TestUpsertCompanyInfo_MissingContent(t *testing.T) {
	info := new(mockCompanyInfoRepository)
	svc := newContentService(t, new(mockBannerRepository), new(mockPartnerRepository), info)

	_, err := svc.UpsertCompanyInfo(context.Background(), &domain.UpsertCompanyInfoInput{
		Section: domain.SectionAbout,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	info.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

// ─── Brands ─────────────────────────────────────────────────────────────────

func newBrandService(t *testing.T, brands *mockBrandRepository, products *mockProductRepository) *BrandService {
	t.Helper()
	return NewBrandService(brands, products, newTestProducer(t), newTestLogger())
}

func sampleStoredBrand() *domain.Brand {
	return &domain.Brand{
		ID:        "brand-1",
		Name:      "Volvo Penta",
		Slug:      "volvo-penta",
		IsActive:  true,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func TestCreateBrand_ExplicitSlugWins(t *testing.T) {
	brands := new(mockBrandRepository)
	svc := newBrandService(t, brands, new(mockProductRepository))
	ctx := context.Background()

	brands.On("Create", ctx, mock.AnythingOfType("*domain.Brand")).Return(nil)

	brand, err := svc.CreateBrand(ctx, &domain.CreateBrandInput{
		Name: "Volvo Penta",
		Slug: "Volvo Penta",
	})

	require.NoError(t, err)
	assert.Equal(t, "volvo-penta", brand.Slug)
}

func TestDeleteBrand_BlockedByProducts(t *testing.T) {
	brands := new(mockBrandRepository)
	products := new(mockProductRepository)
	svc := newBrandService(t, brands, products)
	ctx := context.Background()

	brands.On("GetByID", ctx, "brand-1").Return(sampleStoredBrand(), nil)
	products.On("CountByBrand", ctx, "brand-1").Return(2, nil)

	err := svc.DeleteBrand(ctx, "brand-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDeleteBlocked)
	assert.Contains(t, err.Error(), "2 products")
	brands.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteBrand_Success(t *testing.T) {
	brands := new(mockBrandRepository)
	products := new(mockProductRepository)
	svc := newBrandService(t, brands, products)
	ctx := context.Background()

	brands.On("GetByID", ctx, "brand-1").Return(sampleStoredBrand(), nil)
	products.On("CountByBrand", ctx, "brand-1").Return(0, nil)
	brands.On("Delete", ctx, "brand-1").Return(nil)

	err := svc.DeleteBrand(ctx, "brand-1")
	assert.NoError(t, err)
	brands.AssertExpectations(t)
}

// ─── News ───────────────────────────────────────────────────────────────────

func newNewsService(t *testing.T, news *mockNewsRepository) *NewsService {
	t.Helper()
	return NewNewsService(news, newTestProducer(t), newTestLogger())
}

func TestCreateArticle_Defaults(t *testing.T) {
	news := new(mockNewsRepository)
	svc := newNewsService(t, news)
	ctx := context.Background()

	news.On("Create", ctx, mock.AnythingOfType("*domain.NewsArticle")).Return(nil)

	article, err := svc.CreateArticle(ctx, &domain.CreateNewsInput{
		Title: "New Distribution Agreement",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, article.ID)
	assert.Regexp(t, `^new-distribution-agreement-[a-z0-9]{8}$`, article.Slug)
	assert.True(t, article.IsPublished)
	assert.False(t, article.PublishDate.IsZero())
	news.AssertExpectations(t)
}

func TestUpdateArticle_SlugStableWithoutKey(t *testing.T) {
	news := new(mockNewsRepository)
	svc := newNewsService(t, news)
	ctx := context.Background()

	existing := &domain.NewsArticle{
		ID:          "news-1",
		Title:       "New Distribution Agreement",
		Slug:        "new-distribution-agreement",
		PublishDate: testTime,
		IsPublished: true,
	}
	news.On("GetByID", ctx, existing.ID).Return(existing, nil)
	news.On("Update", ctx, mock.AnythingOfType("*domain.NewsArticle")).Return(nil)

	updated, err := svc.UpdateArticle(ctx, existing.ID, &domain.UpdateNewsInput{
		Title: strPtr("Distribution Agreement Signed"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Distribution Agreement Signed", updated.Title)
	assert.Equal(t, "new-distribution-agreement", updated.Slug)
}

func TestDeleteArticle_NotFound(t *testing.T) {
	news := new(mockNewsRepository)
	svc := newNewsService(t, news)
	ctx := context.Background()

	news.On("GetByID", ctx, "missing").Return(nil, apperrors.ErrNotFound)

	err := svc.DeleteArticle(ctx, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
