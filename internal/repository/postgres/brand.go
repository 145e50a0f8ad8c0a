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

// brandColumns is the standard SELECT column list for brands.
const brandColumns = `id, name, slug, logo_url, website, description,
	sort_order, is_active, created_at, updated_at`

// BrandRepository implements brand persistence operations using PostgreSQL.
type BrandRepository struct {
	pool database.DBTX
}

// NewBrandRepository creates a new PostgreSQL-backed brand repository.
func NewBrandRepository(pool database.DBTX) *BrandRepository {
	return &BrandRepository{pool: pool}
}

// Create inserts a new brand into the database.
func (r *BrandRepository) Create(ctx context.Context, b *domain.Brand) error {
	query := `
		INSERT INTO brands (id, name, slug, logo_url, website, description,
			sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		b.ID,
		b.Name,
		b.Slug,
		b.LogoURL,
		b.Website,
		b.Description,
		b.SortOrder,
		b.IsActive,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("brand", "slug", b.Slug)
		}
		return fmt.Errorf("insert brand: %w", err)
	}

	return nil
}

// GetByID retrieves a brand by its unique identifier.
func (r *BrandRepository) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	query := fmt.Sprintf(`SELECT %s FROM brands WHERE id = $1`, brandColumns)
	return r.scanBrand(ctx, query, id)
}

// GetBySlug retrieves a brand by its URL-friendly slug.
func (r *BrandRepository) GetBySlug(ctx context.Context, slug string) (*domain.Brand, error) {
	query := fmt.Sprintf(`SELECT %s FROM brands WHERE slug = $1`, brandColumns)
	return r.scanBrand(ctx, query, slug)
}

// Update modifies an existing brand in the database.
func (r *BrandRepository) Update(ctx context.Context, b *domain.Brand) error {
	b.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE brands
		SET name = $1, slug = $2, logo_url = $3, website = $4, description = $5,
		    sort_order = $6, is_active = $7, updated_at = $8
		WHERE id = $9`

	ct, err := r.pool.Exec(ctx, query,
		b.Name,
		b.Slug,
		b.LogoURL,
		b.Website,
		b.Description,
		b.SortOrder,
		b.IsActive,
		b.UpdatedAt,
		b.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("brand", "slug", b.Slug)
		}
		return fmt.Errorf("update brand: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("brand", b.ID)
	}

	return nil
}

// Delete removes a brand from the database by its ID.
func (r *BrandRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.DeleteBlocked("brand", "products still reference it")
		}
		return fmt.Errorf("delete brand: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("brand", id)
	}

	return nil
}

// ListAll returns every brand ordered by sort order and name.
func (r *BrandRepository) ListAll(ctx context.Context) ([]domain.Brand, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM brands
		ORDER BY sort_order, name`, brandColumns)

	return r.listBrands(ctx, query)
}

// ListActive returns active brands ordered by sort order and name.
func (r *BrandRepository) ListActive(ctx context.Context) ([]domain.Brand, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM brands
		WHERE is_active = true
		ORDER BY sort_order, name`, brandColumns)

	return r.listBrands(ctx, query)
}

func (r *BrandRepository) listBrands(ctx context.Context, query string, args ...any) ([]domain.Brand, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var brands []domain.Brand

	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Slug,
			&b.LogoURL,
			&b.Website,
			&b.Description,
			&b.SortOrder,
			&b.IsActive,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan brand row: %w", err)
		}
		brands = append(brands, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate brand rows: %w", err)
	}

	if brands == nil {
		brands = []domain.Brand{}
	}

	return brands, nil
}

// scanBrand executes a query expected to return a single brand row.
func (r *BrandRepository) scanBrand(ctx context.Context, query string, args ...any) (*domain.Brand, error) {
	var b domain.Brand

	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&b.ID,
		&b.Name,
		&b.Slug,
		&b.LogoURL,
		&b.Website,
		&b.Description,
		&b.SortOrder,
		&b.IsActive,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan brand: %w", err)
	}

	return &b, nil
}
