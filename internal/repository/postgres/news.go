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

// newsColumns is the standard SELECT column list for news articles.
const newsColumns = `id, title, slug, summary, content, cover_image, category,
	publish_date, is_published, created_at, updated_at`

// NewsRepository implements domain.NewsRepository using PostgreSQL.
type NewsRepository struct {
	pool database.DBTX
}

// NewNewsRepository creates a new PostgreSQL-backed news repository.
func NewNewsRepository(pool database.DBTX) *NewsRepository {
	return &NewsRepository{pool: pool}
}

// Create inserts a new article into the database.
func (r *NewsRepository) Create(ctx context.Context, a *domain.NewsArticle) error {
	query := `
		INSERT INTO news (id, title, slug, summary, content, cover_image, category,
			publish_date, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		a.ID,
		a.Title,
		a.Slug,
		a.Summary,
		a.Content,
		a.CoverImage,
		a.Category,
		a.PublishDate,
		a.IsPublished,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("news article", "slug", a.Slug)
		}
		return fmt.Errorf("insert news article: %w", err)
	}

	return nil
}

// GetByID retrieves an article by its unique identifier.
func (r *NewsRepository) GetByID(ctx context.Context, id string) (*domain.NewsArticle, error) {
	query := fmt.Sprintf(`SELECT %s FROM news WHERE id = $1`, newsColumns)
	return r.scanArticle(ctx, query, id)
}

// GetBySlug retrieves an article by its URL-friendly slug.
func (r *NewsRepository) GetBySlug(ctx context.Context, slug string) (*domain.NewsArticle, error) {
	query := fmt.Sprintf(`SELECT %s FROM news WHERE slug = $1`, newsColumns)
	return r.scanArticle(ctx, query, slug)
}

// Update modifies an existing article in the database.
func (r *NewsRepository) Update(ctx context.Context, a *domain.NewsArticle) error {
	a.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE news
		SET title = $1, slug = $2, summary = $3, content = $4, cover_image = $5,
		    category = $6, publish_date = $7, is_published = $8, updated_at = $9
		WHERE id = $10`

	ct, err := r.pool.Exec(ctx, query,
		a.Title,
		a.Slug,
		a.Summary,
		a.Content,
		a.CoverImage,
		a.Category,
		a.PublishDate,
		a.IsPublished,
		a.UpdatedAt,
		a.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("news article", "slug", a.Slug)
		}
		return fmt.Errorf("update news article: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("news article", a.ID)
	}

	return nil
}

// Delete removes an article from the database by its ID.
func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete news article: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("news article", id)
	}

	return nil
}

// ListAll returns every article, newest first.
func (r *NewsRepository) ListAll(ctx context.Context) ([]domain.NewsArticle, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM news
		ORDER BY publish_date DESC, created_at DESC`, newsColumns)

	return r.listArticles(ctx, query)
}

// ListPublished returns published articles, newest first.
func (r *NewsRepository) ListPublished(ctx context.Context) ([]domain.NewsArticle, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM news
		WHERE is_published = true
		ORDER BY publish_date DESC, created_at DESC`, newsColumns)

	return r.listArticles(ctx, query)
}

func (r *NewsRepository) listArticles(ctx context.Context, query string, args ...any) ([]domain.NewsArticle, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list news articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.NewsArticle

	for rows.Next() {
		var a domain.NewsArticle
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Slug,
			&a.Summary,
			&a.Content,
			&a.CoverImage,
			&a.Category,
			&a.PublishDate,
			&a.IsPublished,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan news row: %w", err)
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate news rows: %w", err)
	}

	if articles == nil {
		articles = []domain.NewsArticle{}
	}

	return articles, nil
}

// scanArticle executes a query expected to return a single news row.
func (r *NewsRepository) scanArticle(ctx context.Context, query string, args ...any) (*domain.NewsArticle, error) {
	var a domain.NewsArticle

	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&a.ID,
		&a.Title,
		&a.Slug,
		&a.Summary,
		&a.Content,
		&a.CoverImage,
		&a.Category,
		&a.PublishDate,
		&a.IsPublished,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan news article: %w", err)
	}

	return &a, nil
}
