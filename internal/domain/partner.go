package domain

import (
	"context"
	"time"
)

// Partner represents a cooperating shipyard or distributor shown on the
// partners page.
type Partner struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logo_url"`
	Website   *string   `json:"website,omitempty"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePartnerInput holds the parameters for creating a partner.
type CreatePartnerInput struct {
	Name      string  `json:"name" validate:"required,min=1,max=255"`
	LogoURL   string  `json:"logo_url" validate:"required,url"`
	Website   *string `json:"website" validate:"omitempty,url"`
	SortOrder int     `json:"sort_order" validate:"gte=0"`
	IsActive  *bool   `json:"is_active"`
}

// UpdatePartnerInput holds the parameters for updating a partner. Nil fields
// are left untouched.
type UpdatePartnerInput struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	LogoURL   *string `json:"logo_url" validate:"omitempty,url"`
	Website   *string `json:"website" validate:"omitempty,url"`
	SortOrder *int    `json:"sort_order" validate:"omitempty,gte=0"`
	IsActive  *bool   `json:"is_active"`
}

// PartnerRepository defines the interface for partner persistence operations.
type PartnerRepository interface {
	// Create inserts a new partner into the store.
	Create(ctx context.Context, partner *Partner) error

	// GetByID retrieves a partner by its unique identifier.
	GetByID(ctx context.Context, id string) (*Partner, error)

	// Update modifies an existing partner in the store.
	Update(ctx context.Context, partner *Partner) error

	// Delete removes a partner from the store by its identifier.
	Delete(ctx context.Context, id string) error

	// ListAll returns every partner, active or not, ordered by sort order.
	ListAll(ctx context.Context) ([]Partner, error)

	// ListActive returns active partners ordered by sort order.
	ListActive(ctx context.Context) ([]Partner, error)
}
