package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Fluorine7/Holylight-marine/internal/domain"
	"github.com/Fluorine7/Holylight-marine/pkg/database"
	apperrors "github.com/Fluorine7/Holylight-marine/pkg/errors"
)

// bannerColumns is the standard SELECT column list for banners.
const bannerColumns = `id, title, subtitle, image_url, link, sort_order,
	is_active, created_at, updated_at`

// BannerRepository implements domain.BannerRepository using PostgreSQL.
type BannerRepository struct {
	pool database.DBTX
}

// NewBannerRepository creates a new PostgreSQL-backed banner repository.
func NewBannerRepository(pool database.DBTX) *BannerRepository {
	return &BannerRepository{pool: pool}
}

// Create inserts a new banner into the database.
func (r *BannerRepository) Create(ctx context.Context, b *domain.Banner) error {
	query := `
		INSERT INTO banners (id, title, subtitle, image_url, link, sort_order,
			is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		b.ID,
		b.Title,
		b.Subtitle,
		b.ImageURL,
		b.Link,
		b.SortOrder,
		b.IsActive,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}

	return nil
}

// GetByID retrieves a banner by its unique identifier.
func (r *BannerRepository) GetByID(ctx context.Context, id string) (*domain.Banner, error) {
	query := fmt.Sprintf(`SELECT %s FROM banners WHERE id = $1`, bannerColumns)

	var b domain.Banner
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Title,
		&b.Subtitle,
		&b.ImageURL,
		&b.Link,
		&b.SortOrder,
		&b.IsActive,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan banner: %w", err)
	}

	return &b, nil
}

// Update modifies an existing banner in the database.
func (r *BannerRepository) Update(ctx context.Context, b *domain.Banner) error {
	b.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE banners
		SET title = $1, subtitle = $2, image_url = $3, link = $4,
		    sort_order = $5, is_active = $6, updated_at = $7
		WHERE id = $8`

	ct, err := r.pool.Exec(ctx, query,
		b.Title,
		b.Subtitle,
		b.ImageURL,
		b.Link,
		b.SortOrder,
		b.IsActive,
		b.UpdatedAt,
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("update banner: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("banner", b.ID)
	}

	return nil
}

// Delete removes a banner from the database by its ID.
func (r *BannerRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("banner", id)
	}

	return nil
}

// ListAll returns every banner ordered by sort order.
func (r *BannerRepository) ListAll(ctx context.Context) ([]domain.Banner, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM banners
		ORDER BY sort_order, created_at`, bannerColumns)

	return r.listBanners(ctx, query)
}

// ListActive returns active banners ordered by sort order.
func (r *BannerRepository) ListActive(ctx context.Context) ([]domain.Banner, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM banners
		WHERE is_active = true
		ORDER BY sort_order, created_at`, bannerColumns)

	return r.listBanners(ctx, query)
}

func (r *BannerRepository) listBanners(ctx context.Context, query string, args ...any) ([]domain.Banner, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()

	var banners []domain.Banner

	for rows.Next() {
		var b domain.Banner
		if err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.Subtitle,
			&b.ImageURL,
			&b.Link,
			&b.SortOrder,
			&b.IsActive,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan banner row: %w", err)
		}
		banners = append(banners, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate banner rows: %w", err)
	}

	if banners == nil {
		banners = []domain.Banner{}
	}

	return banners, nil
}
