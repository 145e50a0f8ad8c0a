package domain

import (
	"context"
	"time"
)

// Download is a downloadable asset attached to a product, typically a
// datasheet or installation manual.
type Download struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Product represents an item in the equipment catalog. Price is in cents and
// optional: much of the catalog is quote-on-request.
type Product struct {
	ID             string     `json:"id"`
	CategoryID     string     `json:"category_id"`
	BrandID        *string    `json:"brand_id,omitempty"`
	Name           string     `json:"name"`
	Model          *string    `json:"model,omitempty"`
	Slug           string     `json:"slug"`
	Description    *string    `json:"description,omitempty"`
	Specifications *string    `json:"specifications,omitempty"`
	Price          *int64     `json:"price,omitempty"`
	Images         []string   `json:"images"`
	Downloads      []Download `json:"downloads"`
	SortOrder      int        `json:"sort_order"`
	IsPublished    bool       `json:"is_published"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CreateProductInput holds the parameters for creating a product.
type CreateProductInput struct {
	CategoryID     string     `json:"category_id" validate:"required,uuid"`
	BrandID        *string    `json:"brand_id" validate:"omitempty,uuid"`
	Name           string     `json:"name" validate:"required,min=1,max=255"`
	Model          *string    `json:"model" validate:"omitempty,max=255"`
	Slug           string     `json:"slug"`
	Description    *string    `json:"description"`
	Specifications *string    `json:"specifications"`
	Price          *int64     `json:"price" validate:"omitempty,gte=0"`
	Images         []string   `json:"images" validate:"omitempty,dive,url"`
	Downloads      []Download `json:"downloads"`
	SortOrder      int        `json:"sort_order" validate:"gte=0"`
	IsPublished    *bool      `json:"is_published"`
}

// UpdateProductInput holds the parameters for updating a product. Nil fields
// are left untouched. A non-nil Slug asks for the slug to be regenerated even
// when its value is empty. Images and Downloads replace wholesale when
// present.
type UpdateProductInput struct {
	CategoryID     *string     `json:"category_id" validate:"omitempty,uuid"`
	BrandID        *string     `json:"brand_id" validate:"omitempty,uuid"`
	Name           *string     `json:"name" validate:"omitempty,min=1,max=255"`
	Model          *string     `json:"model" validate:"omitempty,max=255"`
	Slug           *string     `json:"slug"`
	Description    *string     `json:"description"`
	Specifications *string     `json:"specifications"`
	Price          *int64      `json:"price" validate:"omitempty,gte=0"`
	Images         *[]string   `json:"images" validate:"omitempty,dive,url"`
	Downloads      *[]Download `json:"downloads"`
	SortOrder      *int        `json:"sort_order" validate:"omitempty,gte=0"`
	IsPublished    *bool       `json:"is_published"`
}

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create inserts a new product into the store.
	Create(ctx context.Context, product *Product) error

	// GetByID retrieves a product by its unique identifier.
	GetByID(ctx context.Context, id string) (*Product, error)

	// GetBySlug retrieves a product by its URL-friendly slug.
	GetBySlug(ctx context.Context, slug string) (*Product, error)

	// Update modifies an existing product in the store.
	Update(ctx context.Context, product *Product) error

	// Delete removes a product from the store by its identifier.
	Delete(ctx context.Context, id string) error

	// ListAll returns every product, published or not.
	ListAll(ctx context.Context) ([]Product, error)

	// ListPublished returns published products ordered for storefront display.
	ListPublished(ctx context.Context) ([]Product, error)

	// ListByCategory returns published products directly in the given
	// category. Descendant categories are not included.
	ListByCategory(ctx context.Context, categoryID string) ([]Product, error)

	// CountByCategory counts products directly in the given category,
	// published or not.
	CountByCategory(ctx context.Context, categoryID string) (int, error)

	// CountByBrand counts products referencing the given brand.
	CountByBrand(ctx context.Context, brandID string) (int, error)
}
