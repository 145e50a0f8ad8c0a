package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fluorine7/Holylight-marine/internal/domain"
	apperrors "github.com/Fluorine7/Holylight-marine/pkg/errors"
)

// ─── Banner column definitions ──────────────────────────────────────────────

var bannerCols = []string{
	"id", "title", "subtitle", "image_url", "link", "sort_order",
	"is_active", "created_at", "updated_at",
}

func sampleBannerRow() domain.Banner {
	return domain.Banner{
		ID:        "banner-1",
		Title:     "Boat Show Special",
		Subtitle:  strPtr("Visit us at stand B12"),
		ImageURL:  "https://cdn.example.com/boat-show.jpg",
		Link:      strPtr("/news/boat-show-2026"),
		SortOrder: 1,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func bannerRow(b domain.Banner) []any {
	return []any{
		b.ID, b.Title, b.Subtitle, b.ImageURL, b.Link, b.SortOrder,
		b.IsActive, b.CreatedAt, b.UpdatedAt,
	}
}

// ─── Partner column definitions ─────────────────────────────────────────────

var partnerCols = []string{
	"id", "name", "logo_url", "website", "sort_order", "is_active",
	"created_at", "updated_at",
}

func samplePartner() domain.Partner {
	return domain.Partner{
		ID:        "partner-1",
		Name:      "Azimut Yachts",
		LogoURL:   "https://cdn.example.com/azimut.png",
		Website:   strPtr("https://www.azimutyachts.com"),
		SortOrder: 0,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func partnerRow(p domain.Partner) []any {
	return []any{
		p.ID, p.Name, p.LogoURL, p.Website, p.SortOrder, p.IsActive,
		p.CreatedAt, p.UpdatedAt,
	}
}

// ─── News column definitions ────────────────────────────────────────────────

var newsCols = []string{
	"id", "title", "slug", "summary", "content", "cover_image", "category",
	"publish_date", "is_published", "created_at", "updated_at",
}

func sampleArticle() domain.NewsArticle {
	return domain.NewsArticle{
		ID:          "news-1",
		Title:       "New Distribution Agreement",
		Slug:        "new-distribution-agreement",
		Summary:     strPtr("Exclusive distribution for the east coast"),
		Content:     strPtr("Full announcement text."),
		Category:    strPtr("company"),
		PublishDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func articleRow(a domain.NewsArticle) []any {
	return []any{
		a.ID, a.Title, a.Slug, a.Summary, a.Content, a.CoverImage, a.Category,
		a.PublishDate, a.IsPublished, a.CreatedAt, a.UpdatedAt,
	}
}

// ─── Company info column definitions ────────────────────────────────────────

var infoCols = []string{
	"id", "section", "title", "content", "image_url", "updated_at",
}

func sampleInfo() domain.CompanyInfo {
	return domain.CompanyInfo{
		ID:        "info-1",
		Section:   domain.SectionAbout,
		Title:     strPtr("About Us"),
		Content:   "Twenty years of marine equipment trading.",
		UpdatedAt: now,
	}
}

func infoRow(i domain.CompanyInfo) []any {
	return []any{i.ID, i.Section, i.Title, i.Content, i.ImageURL, i.UpdatedAt}
}

func errDuplicateKey() error {
	return errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)")
}

// ─────────────────────────────────────────────────────────────────────────────
// BannerRepository
// ─────────────────────────────────────────────────────────────────────────────

func TestBannerRepository_Create_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewBannerRepository(mock)

	b := sampleBannerRow()
	mock.ExpectExec("INSERT INTO banners").
		WithArgs(
			b.ID, b.Title, b.Subtitle, b.ImageURL, b.Link, b.SortOrder,
			b.IsActive, b.CreatedAt, b.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), &b)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBannerRepository_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewBannerRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM banners WHERE id").
		WithArgs("missing-id").
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetByID(context.Background(), "missing-id")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBannerRepository_Update_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewBannerRepository(mock)

	b := sampleBannerRow()
	b.ID = "nonexistent-id"
	mock.ExpectExec("UPDATE banners").
		WithArgs(
			b.Title, b.Subtitle, b.ImageURL, b.Link, b.SortOrder, b.IsActive,
			pgxmock.AnyArg(), // updated_at set inside Update
			b.ID,
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), &b)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBannerRepository_ListActive_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewBannerRepository(mock)

	b := sampleBannerRow()
	mock.ExpectQuery("SELECT .+ FROM banners WHERE is_active").
		WillReturnRows(
			pgxmock.NewRows(bannerCols).AddRow(bannerRow(b)...),
		)

	banners, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, banners, 1)
	assert.Equal(t, b.ID, banners[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────────────────────────────────────
// PartnerRepository
// ─────────────────────────────────────────────────────────────────────────────

func TestPartnerRepository_Create_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPartnerRepository(mock)

	p := samplePartner()
	mock.ExpectExec("INSERT INTO partners").
		WithArgs(
			p.ID, p.Name, p.LogoURL, p.Website, p.SortOrder, p.IsActive,
			p.CreatedAt, p.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), &p)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPartnerRepository_Delete_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPartnerRepository(mock)

	mock.ExpectExec("DELETE FROM partners WHERE id").
		WithArgs("missing-id").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPartnerRepository_ListActive_Empty(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPartnerRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM partners WHERE is_active").
		WillReturnRows(pgxmock.NewRows(partnerCols))

	partners, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Partner{}, partners)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────────────────────────────────────
// NewsRepository
// ─────────────────────────────────────────────────────────────────────────────

func TestNewsRepository_Create_UniqueViolation(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewNewsRepository(mock)

	a := sampleArticle()
	mock.ExpectExec("INSERT INTO news").
		WithArgs(
			a.ID, a.Title, a.Slug, a.Summary, a.Content, a.CoverImage,
			a.Category, a.PublishDate, a.IsPublished, a.CreatedAt, a.UpdatedAt,
		).
		WillReturnError(errDuplicateKey())

	err := repo.Create(context.Background(), &a)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsRepository_GetBySlug_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewNewsRepository(mock)

	a := sampleArticle()
	mock.ExpectQuery("SELECT .+ FROM news WHERE slug").
		WithArgs(a.Slug).
		WillReturnRows(
			pgxmock.NewRows(newsCols).AddRow(articleRow(a)...),
		)

	result, err := repo.GetBySlug(context.Background(), a.Slug)
	require.NoError(t, err)
	assert.Equal(t, a.ID, result.ID)
	assert.Equal(t, a.Title, result.Title)
	assert.Equal(t, a.PublishDate, result.PublishDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsRepository_ListPublished_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewNewsRepository(mock)

	a := sampleArticle()
	mock.ExpectQuery("SELECT .+ FROM news WHERE is_published").
		WillReturnRows(
			pgxmock.NewRows(newsCols).AddRow(articleRow(a)...),
		)

	articles, err := repo.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, a.ID, articles[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsRepository_Delete_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewNewsRepository(mock)

	mock.ExpectExec("DELETE FROM news WHERE id").
		WithArgs("missing-id").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────────────────────────────────────
// CompanyInfoRepository
// ─────────────────────────────────────────────────────────────────────────────

func TestCompanyInfoRepository_GetBySection_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCompanyInfoRepository(mock)

	info := sampleInfo()
	mock.ExpectQuery("SELECT .+ FROM company_info WHERE section").
		WithArgs(info.Section).
		WillReturnRows(
			pgxmock.NewRows(infoCols).AddRow(infoRow(info)...),
		)

	result, err := repo.GetBySection(context.Background(), info.Section)
	require.NoError(t, err)
	assert.Equal(t, info.Section, result.Section)
	assert.Equal(t, info.Content, result.Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyInfoRepository_GetBySection_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCompanyInfoRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM company_info WHERE section").
		WithArgs("missing-section").
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetBySection(context.Background(), "missing-section")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyInfoRepository_Upsert_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCompanyInfoRepository(mock)

	info := sampleInfo()
	mock.ExpectQuery("INSERT INTO company_info .+ RETURNING id, updated_at").
		WithArgs(
			info.ID, info.Section, info.Title, info.Content, info.ImageURL,
			pgxmock.AnyArg(), // updated_at set inside Upsert
		).
		WillReturnRows(
			pgxmock.NewRows([]string{"id", "updated_at"}).AddRow(info.ID, now),
		)

	err := repo.Upsert(context.Background(), &info)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyInfoRepository_Upsert_ExistingSectionKeepsStoredID(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCompanyInfoRepository(mock)

	info := sampleInfo()
	info.ID = "candidate-id"

	// The conflict branch leaves id untouched, so the database hands back
	// the id of the row written on the first upsert.
	mock.ExpectQuery("INSERT INTO company_info .+ RETURNING id, updated_at").
		WithArgs(
			"candidate-id", info.Section, info.Title, info.Content, info.ImageURL,
			pgxmock.AnyArg(),
		).
		WillReturnRows(
			pgxmock.NewRows([]string{"id", "updated_at"}).AddRow("info-1", now),
		)

	err := repo.Upsert(context.Background(), &info)
	require.NoError(t, err)
	assert.Equal(t, "info-1", info.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyInfoRepository_ListAll_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCompanyInfoRepository(mock)

	about := sampleInfo()
	contact := domain.CompanyInfo{
		ID:        "info-2",
		Section:   domain.SectionContact,
		Content:   "info@example.com",
		UpdatedAt: now,
	}

	mock.ExpectQuery("SELECT .+ FROM company_info").
		WillReturnRows(
			pgxmock.NewRows(infoCols).
				AddRow(infoRow(about)...).
				AddRow(infoRow(contact)...),
		)

	infos, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, infos, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
