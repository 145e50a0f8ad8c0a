package domain

import (
	"context"
	"time"
)

// Banner represents a promotional banner on the storefront home page.
type Banner struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  *string   `json:"subtitle,omitempty"`
	ImageURL  string    `json:"image_url"`
	Link      *string   `json:"link,omitempty"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateBannerInput holds the parameters for creating a banner.
type CreateBannerInput struct {
	Title     string  `json:"title" validate:"required,min=1,max=255"`
	Subtitle  *string `json:"subtitle"`
	ImageURL  string  `json:"image_url" validate:"required,url"`
	Link      *string `json:"link"`
	SortOrder int     `json:"sort_order" validate:"gte=0"`
	IsActive  *bool   `json:"is_active"`
}

// UpdateBannerInput holds the parameters for updating a banner. Nil fields
// are left untouched.
type UpdateBannerInput struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=255"`
	Subtitle  *string `json:"subtitle"`
	ImageURL  *string `json:"image_url" validate:"omitempty,url"`
	Link      *string `json:"link"`
	SortOrder *int    `json:"sort_order" validate:"omitempty,gte=0"`
	IsActive  *bool   `json:"is_active"`
}

// BannerRepository defines the interface for banner persistence operations.
type BannerRepository interface {
	// Create inserts a new banner into the store.
	Create(ctx context.Context, banner *Banner) error

	// GetByID retrieves a banner by its unique identifier.
	GetByID(ctx context.Context, id string) (*Banner, error)

	// Update modifies an existing banner in the store.
	Update(ctx context.Context, banner *Banner) error

	// Delete removes a banner from the store by its identifier.
	Delete(ctx context.Context, id string) error

	// ListAll returns every banner, active or not, ordered by sort order.
	ListAll(ctx context.Context) ([]Banner, error)

	// ListActive returns active banners ordered by sort order.
	ListActive(ctx context.Context) ([]Banner, error)
}
