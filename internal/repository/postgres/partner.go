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

// partnerColumns is the standard SELECT column list for partners.
const partnerColumns = `id, name, logo_url, website, sort_order, is_active,
	created_at, updated_at`

// PartnerRepository implements domain.PartnerRepository using PostgreSQL.
type PartnerRepository struct {
	pool database.DBTX
}

// NewPartnerRepository creates a new PostgreSQL-backed partner repository.
func NewPartnerRepository(pool database.DBTX) *PartnerRepository {
	return &PartnerRepository{pool: pool}
}

// Create inserts a new partner into the database.
func (r *PartnerRepository) Create(ctx context.Context, p *domain.Partner) error {
	query := `
		INSERT INTO partners (id, name, logo_url, website, sort_order, is_active,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		p.ID,
		p.Name,
		p.LogoURL,
		p.Website,
		p.SortOrder,
		p.IsActive,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert partner: %w", err)
	}

	return nil
}

// GetByID retrieves a partner by its unique identifier.
func (r *PartnerRepository) GetByID(ctx context.Context, id string) (*domain.Partner, error) {
	query := fmt.Sprintf(`SELECT %s FROM partners WHERE id = $1`, partnerColumns)

	var p domain.Partner
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.LogoURL,
		&p.Website,
		&p.SortOrder,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan partner: %w", err)
	}

	return &p, nil
}

// Update modifies an existing partner in the database.
func (r *PartnerRepository) Update(ctx context.Context, p *domain.Partner) error {
	p.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE partners
		SET name = $1, logo_url = $2, website = $3, sort_order = $4,
		    is_active = $5, updated_at = $6
		WHERE id = $7`

	ct, err := r.pool.Exec(ctx, query,
		p.Name,
		p.LogoURL,
		p.Website,
		p.SortOrder,
		p.IsActive,
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update partner: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("partner", p.ID)
	}

	return nil
}

// Delete removes a partner from the database by its ID.
func (r *PartnerRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete partner: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("partner", id)
	}

	return nil
}

// ListAll returns every partner ordered by sort order and name.
func (r *PartnerRepository) ListAll(ctx context.Context) ([]domain.Partner, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM partners
		ORDER BY sort_order, name`, partnerColumns)

	return r.listPartners(ctx, query)
}

// ListActive returns active partners ordered by sort order and name.
func (r *PartnerRepository) ListActive(ctx context.Context) ([]domain.Partner, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM partners
		WHERE is_active = true
		ORDER BY sort_order, name`, partnerColumns)

	return r.listPartners(ctx, query)
}

func (r *PartnerRepository) listPartners(ctx context.Context, query string, args ...any) ([]domain.Partner, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()

	var partners []domain.Partner

	for rows.Next() {
		var p domain.Partner
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.LogoURL,
			&p.Website,
			&p.SortOrder,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan partner row: %w", err)
		}
		partners = append(partners, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate partner rows: %w", err)
	}

	if partners == nil {
		partners = []domain.Partner{}
	}

	return partners, nil
}
