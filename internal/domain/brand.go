package domain

import (
	"context"
	"time"
)

// Brand represents an equipment manufacturer carried in the catalog.
type Brand struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	Website     *string   `json:"website,omitempty"`
	Description *string   `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateBrandInput holds the parameters for creating a brand.
type CreateBrandInput struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Slug        string  `json:"slug"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,url"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Description *string `json:"description"`
	SortOrder   int     `json:"sort_order" validate:"gte=0"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateBrandInput holds the parameters for updating a brand. Nil fields are
// left untouched. A non-nil Slug asks for the slug to be regenerated even
// when its value is empty.
type UpdateBrandInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Slug        *string `json:"slug"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,url"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order" validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"is_active"`
}

// BrandRepository defines the interface for brand persistence operations.
type BrandRepository interface {
	// Create inserts a new brand into the store.
	Create(ctx context.Context, brand *Brand) error

	// GetByID retrieves a brand by its unique identifier.
	GetByID(ctx context.Context, id string) (*Brand, error)

	// GetBySlug retrieves a brand by its URL-friendly slug.
	GetBySlug(ctx context.Context, slug string) (*Brand, error)

	// Update modifies an existing brand in the store.
	Update(ctx context.Context, brand *Brand) error

	// Delete removes a brand from the store by its identifier.
	Delete(ctx context.Context, id string) error

	// ListAll returns every brand, active or not, ordered by sort order.
	ListAll(ctx context.Context) ([]Brand, error)

	// ListActive returns active brands ordered by sort order.
	ListActive(ctx context.Context) ([]Brand, error)
}
