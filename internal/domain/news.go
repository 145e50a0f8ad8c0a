package domain

import (
	"context"
	"time"
)

// NewsArticle represents a company news or industry update article.
type NewsArticle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Summary     *string   `json:"summary,omitempty"`
	Content     *string   `json:"content,omitempty"`
	CoverImage  *string   `json:"cover_image,omitempty"`
	Category    *string   `json:"category,omitempty"`
	PublishDate time.Time `json:"publish_date"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateNewsInput holds the parameters for creating a news article.
type CreateNewsInput struct {
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Slug        string     `json:"slug"`
	Summary     *string    `json:"summary"`
	Content     *string    `json:"content"`
	CoverImage  *string    `json:"cover_image" validate:"omitempty,url"`
	Category    *string    `json:"category" validate:"omitempty,max=100"`
	PublishDate *time.Time `json:"publish_date"`
	IsPublished *bool      `json:"is_published"`
}

// UpdateNewsInput holds the parameters for updating a news article. Nil
// fields are left untouched. A non-nil Slug asks for the slug to be
// regenerated even when its value is empty.
type UpdateNewsInput struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Slug        *string    `json:"slug"`
	Summary     *string    `json:"summary"`
	Content     *string    `json:"content"`
	CoverImage  *string    `json:"cover_image" validate:"omitempty,url"`
	Category    *string    `json:"category" validate:"omitempty,max=100"`
	PublishDate *time.Time `json:"publish_date"`
	IsPublished *bool      `json:"is_published"`
}

// NewsRepository defines the interface for news persistence operations.
type NewsRepository interface {
	// Create inserts a new article into the store.
	Create(ctx context.Context, article *NewsArticle) error

	// GetByID retrieves an article by its unique identifier.
	GetByID(ctx context.Context, id string) (*NewsArticle, error)

	// GetBySlug retrieves an article by its URL-friendly slug.
	GetBySlug(ctx context.Context, slug string) (*NewsArticle, error)

	// Update modifies an existing article in the store.
	Update(ctx context.Context, article *NewsArticle) error

	// Delete removes an article from the store by its identifier.
	Delete(ctx context.Context, id string) error

	// ListAll returns every article, published or not, newest first.
	ListAll(ctx context.Context) ([]NewsArticle, error)

	// ListPublished returns published articles newest first.
	ListPublished(ctx context.Context) ([]NewsArticle, error)
}
