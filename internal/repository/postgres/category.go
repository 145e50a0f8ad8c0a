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

// categoryColumns is the standard SELECT column list for categories.
const categoryColumns = `id, name, slug, parent_id, sort_order, is_active,
	image_url, description, created_at, updated_at`

// CategoryRepository implements category persistence operations using PostgreSQL.
type CategoryRepository struct {
	pool database.DBTX
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool database.DBTX) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// Create inserts a new category into the database.
func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query := `
		INSERT INTO categories (id, name, slug, parent_id, sort_order, is_active,
			image_url, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		c.ID,
		c.Name,
		c.Slug,
		c.ParentID,
		c.SortOrder,
		c.IsActive,
		c.ImageURL,
		c.Description,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("category", "slug", c.Slug)
		}
		if isForeignKeyViolation(err) {
			return apperrors.ForeignKeyViolation("parent_id", deref(c.ParentID))
		}
		return fmt.Errorf("insert category: %w", err)
	}

	return nil
}

// GetByID retrieves a category by its unique identifier.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM categories WHERE id = $1`, categoryColumns)
	return r.scanCategory(ctx, query, id)
}

// GetBySlug retrieves a category by its URL-friendly slug.
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM categories WHERE slug = $1`, categoryColumns)
	return r.scanCategory(ctx, query, slug)
}

// Update modifies an existing category in the database.
func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	c.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE categories
		SET name = $1, slug = $2, parent_id = $3, sort_order = $4, is_active = $5,
		    image_url = $6, description = $7, updated_at = $8
		WHERE id = $9`

	ct, err := r.pool.Exec(ctx, query,
		c.Name,
		c.Slug,
		c.ParentID,
		c.SortOrder,
		c.IsActive,
		c.ImageURL,
		c.Description,
		c.UpdatedAt,
		c.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("category", "slug", c.Slug)
		}
		if isForeignKeyViolation(err) {
			return apperrors.ForeignKeyViolation("parent_id", deref(c.ParentID))
		}
		return fmt.Errorf("update category: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("category", c.ID)
	}

	return nil
}

// Delete removes a category from the database by its ID. Callers are expected
// to have run the delete check first; a lingering foreign key reference still
// maps to a conflict rather than a bare SQL error.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.DeleteBlocked("category", "dependent records still reference it")
		}
		return fmt.Errorf("delete category: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("category", id)
	}

	return nil
}

// ListAll returns every category ordered by sort_order and name.
func (r *CategoryRepository) ListAll(ctx context.Context) ([]domain.Category, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories
		ORDER BY sort_order, name`, categoryColumns)

	return r.listCategories(ctx, query)
}

// ListActive returns all active categories as a flat list ordered by
// sort_order and name.
func (r *CategoryRepository) ListActive(ctx context.Context) ([]domain.Category, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories
		WHERE is_active = true
		ORDER BY sort_order, name`, categoryColumns)

	return r.listCategories(ctx, query)
}

// ListByParent returns the active direct children of the given category.
func (r *CategoryRepository) ListByParent(ctx context.Context, parentID string) ([]domain.Category, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories
		WHERE parent_id = $1 AND is_active = true
		ORDER BY sort_order, name`, categoryColumns)

	return r.listCategories(ctx, query, parentID)
}

// ListTopLevel returns the active root categories ordered by sort_order and
// name. A limit of zero or less returns all of them.
func (r *CategoryRepository) ListTopLevel(ctx context.Context, limit int) ([]domain.Category, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories
		WHERE parent_id IS NULL AND is_active = true
		ORDER BY sort_order, name`, categoryColumns)

	if limit > 0 {
		return r.listCategories(ctx, query+` LIMIT $1`, limit)
	}
	return r.listCategories(ctx, query)
}

// CountChildren counts categories whose parent is the given category.
func (r *CategoryRepository) CountChildren(ctx context.Context, id string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM categories WHERE parent_id = $1`, id,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count child categories: %w", err)
	}
	return count, nil
}

func (r *CategoryRepository) listCategories(ctx context.Context, query string, args ...any) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category

	for rows.Next() {
		var c domain.Category
		if err := scanCategoryRow(rows, &c); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	if categories == nil {
		categories = []domain.Category{}
	}

	return categories, nil
}

// scanCategory executes a query expected to return a single category row.
func (r *CategoryRepository) scanCategory(ctx context.Context, query string, args ...any) (*domain.Category, error) {
	c := domain.Category{Children: []*domain.Category{}}

	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.ParentID,
		&c.SortOrder,
		&c.IsActive,
		&c.ImageURL,
		&c.Description,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}

	return &c, nil
}

// scanCategoryRow scans a single row from a rows iterator into a Category struct.
func scanCategoryRow(rows pgx.Rows, c *domain.Category) error {
	c.Children = []*domain.Category{}
	return rows.Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.ParentID,
		&c.SortOrder,
		&c.IsActive,
		&c.ImageURL,
		&c.Description,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
