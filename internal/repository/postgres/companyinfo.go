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

// companyInfoColumns is the standard SELECT column list for company info.
const companyInfoColumns = `id, section, title, content, image_url, updated_at`

// CompanyInfoRepository implements domain.CompanyInfoRepository using PostgreSQL.
type CompanyInfoRepository struct {
	pool database.DBTX
}

// NewCompanyInfoRepository creates a new PostgreSQL-backed company info repository.
func NewCompanyInfoRepository(pool database.DBTX) *CompanyInfoRepository {
	return &CompanyInfoRepository{pool: pool}
}

// GetBySection retrieves the info block for a section.
func (r *CompanyInfoRepository) GetBySection(ctx context.Context, section string) (*domain.CompanyInfo, error) {
	query := fmt.Sprintf(`SELECT %s FROM company_info WHERE section = $1`, companyInfoColumns)

	var info domain.CompanyInfo
	err := r.pool.QueryRow(ctx, query, section).Scan(
		&info.ID,
		&info.Section,
		&info.Title,
		&info.Content,
		&info.ImageURL,
		&info.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan company info: %w", err)
	}

	return &info, nil
}

// Upsert creates the section row or replaces its content. The section column
// carries a unique constraint, so concurrent writers converge on one row. The
// persisted identity is written back into info: when the section already
// exists, the stored id wins over the candidate one, since the conflict
// branch never rewrites id.
func (r *CompanyInfoRepository) Upsert(ctx context.Context, info *domain.CompanyInfo) error {
	info.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO company_info (id, section, title, content, image_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (section) DO UPDATE
		SET title = EXCLUDED.title, content = EXCLUDED.content,
		    image_url = EXCLUDED.image_url, updated_at = EXCLUDED.updated_at
		RETURNING id, updated_at`

	err := r.pool.QueryRow(ctx, query,
		info.ID,
		info.Section,
		info.Title,
		info.Content,
		info.ImageURL,
		info.UpdatedAt,
	).Scan(&info.ID, &info.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert company info: %w", err)
	}

	return nil
}

// ListAll returns every section block ordered by section name.
func (r *CompanyInfoRepository) ListAll(ctx context.Context) ([]domain.CompanyInfo, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM company_info
		ORDER BY section`, companyInfoColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list company info: %w", err)
	}
	defer rows.Close()

	var infos []domain.CompanyInfo

	for rows.Next() {
		var info domain.CompanyInfo
		if err := rows.Scan(
			&info.ID,
			&info.Section,
			&info.Title,
			&info.Content,
			&info.ImageURL,
			&info.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company info row: %w", err)
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate company info rows: %w", err)
	}

	if infos == nil {
		infos = []domain.CompanyInfo{}
	}

	return infos, nil
}
