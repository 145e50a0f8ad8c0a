package service

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Fluorine7/Holylight-marine/internal/domain"
	"github.com/Fluorine7/Holylight-marine/internal/event"
	pkgkafka "github.com/Fluorine7/Holylight-marine/pkg/kafka"
)

// --- Mock repositories ---

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *mockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCategoryRepository) ListAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *mockCategoryRepository) ListActive(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *mockCategoryRepository) ListByParent(ctx context.Context, parentID string) ([]domain.Category, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *mockCategoryRepository) ListTopLevel(ctx context.Context, limit int) ([]domain.Category, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *mockCategoryRepository) CountChildren(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProductRepository) ListPublished(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProductRepository) ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProductRepository) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	args := m.Called(ctx, categoryID)
	return args.Int(0), args.Error(1)
}

func (m *mockProductRepository) CountByBrand(ctx context.Context, brandID string) (int, error) {
	args := m.Called(ctx, brandID)
	return args.Int(0), args.Error(1)
}

type mockBrandRepository struct {
	mock.Mock
}

func (m *mockBrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *mockBrandRepository) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *mockBrandRepository) GetBySlug(ctx context.Context, slug string) (*domain.Brand, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *mockBrandRepository) Update(ctx context.Context, brand *domain.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *mockBrandRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBrandRepository) ListAll(ctx context.Context) ([]domain.Brand, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Brand), args.Error(1)
}

func (m *mockBrandRepository) ListActive(ctx context.Context) ([]domain.Brand, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Brand), args.Error(1)
}

type mockNewsRepository struct {
	mock.Mock
}

func (m *mockNewsRepository) Create(ctx context.Context, article *domain.NewsArticle) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *mockNewsRepository) GetByID(ctx context.Context, id string) (*domain.NewsArticle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NewsArticle), args.Error(1)
}

func (m *mockNewsRepository) GetBySlug(ctx context.Context, slug string) (*domain.NewsArticle, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NewsArticle), args.Error(1)
}

func (m *mockNewsRepository) Update(ctx context.Context, article *domain.NewsArticle) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *mockNewsRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockNewsRepository) ListAll(ctx context.Context) ([]domain.NewsArticle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.NewsArticle), args.Error(1)
}

func (m *mockNewsRepository) ListPublished(ctx context.Context) ([]domain.NewsArticle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.NewsArticle), args.Error(1)
}

type mockBannerRepository struct {
	mock.Mock
}

func (m *mockBannerRepository) Create(ctx context.Context, banner *domain.Banner) error {
	args := m.Called(ctx, banner)
	return args.Error(0)
}

func (m *mockBannerRepository) GetByID(ctx context.Context, id string) (*domain.Banner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Banner), args.Error(1)
}

func (m *mockBannerRepository) Update(ctx context.Context, banner *domain.Banner) error {
	args := m.Called(ctx, banner)
	return args.Error(0)
}

func (m *mockBannerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBannerRepository) ListAll(ctx context.Context) ([]domain.Banner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Banner), args.Error(1)
}

func (m *mockBannerRepository) ListActive(ctx context.Context) ([]domain.Banner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Banner), args.Error(1)
}

type mockPartnerRepository struct {
	mock.Mock
}

func (m *mockPartnerRepository) Create(ctx context.Context, partner *domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}

func (m *mockPartnerRepository) GetByID(ctx context.Context, id string) (*domain.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *mockPartnerRepository) Update(ctx context.Context, partner *domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}

func (m *mockPartnerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPartnerRepository) ListAll(ctx context.Context) ([]domain.Partner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Partner), args.Error(1)
}

func (m *mockPartnerRepository) ListActive(ctx context.Context) ([]domain.Partner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Partner), args.Error(1)
}

type mockCompanyInfoRepository struct {
	mock.Mock
}

func (m *mockCompanyInfoRepository) GetBySection(ctx context.Context, section string) (*domain.CompanyInfo, error) {
	args := m.Called(ctx, section)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyInfo), args.Error(1)
}

func (m *mockCompanyInfoRepository) Upsert(ctx context.Context, info *domain.CompanyInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func (m *mockCompanyInfoRepository) ListAll(ctx context.Context) ([]domain.CompanyInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CompanyInfo), args.Error(1)
}

// --- Test helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestProducer returns a producer pointed at nothing. Publish failures are
// logged and swallowed by the services, so tests run without a broker.
func newTestProducer(t *testing.T) *event.Producer {
	t.Helper()
	logger := newTestLogger()
	kafkaCfg := pkgkafka.DefaultProducerConfig([]string{"localhost:9092"})
	return event.NewProducer(pkgkafka.NewProducer(kafkaCfg, logger), logger)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func int64Ptr(n int64) *int64 { return &n }
func boolPtr(b bool) *bool    { return &b }

var testTime = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
