package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Fluorine7/Holylight-marine/internal/domain"
	"github.com/Fluorine7/Holylight-marine/pkg/database"
	apperrors "github.com/Fluorine7/Holylight-marine/pkg/errors"
)

// productColumns is the standard SELECT column list for products. Images and
// downloads are stored as JSON text and decoded at scan time.
const productColumns = `id, category_id, brand_id, name, model, slug, description,
	specifications, price, images, downloads, sort_order, is_published, created_at, updated_at`

// ProductRepository implements product persistence operations using PostgreSQL.
type ProductRepository struct {
	pool database.DBTX
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool database.DBTX) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// Create inserts a new product into the database.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	imagesJSON, downloadsJSON, err := marshalProductAssets(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO products (id, category_id, brand_id, name, model, slug, description,
			specifications, price, images, downloads, sort_order, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err = r.pool.Exec(ctx, query,
		p.ID,
		p.CategoryID,
		p.BrandID,
		p.Name,
		p.Model,
		p.Slug,
		p.Description,
		p.Specifications,
		p.Price,
		imagesJSON,
		downloadsJSON,
		p.SortOrder,
		p.IsPublished,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("product", "slug", p.Slug)
		}
		if isForeignKeyViolation(err) {
			return apperrors.ForeignKeyViolation("category_id", p.CategoryID)
		}
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

// GetByID retrieves a product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)
	return r.scanProduct(ctx, query, id)
}

// GetBySlug retrieves a product by its slug.
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE slug = $1`, productColumns)
	return r.scanProduct(ctx, query, slug)
}

// Update modifies an existing product in the database.
func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	imagesJSON, downloadsJSON, err := marshalProductAssets(p)
	if err != nil {
		return err
	}

	p.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE products
		SET category_id = $1, brand_id = $2, name = $3, model = $4, slug = $5,
		    description = $6, specifications = $7, price = $8, images = $9,
		    downloads = $10, sort_order = $11, is_published = $12, updated_at = $13
		WHERE id = $14`

	ct, err := r.pool.Exec(ctx, query,
		p.CategoryID,
		p.BrandID,
		p.Name,
		p.Model,
		p.Slug,
		p.Description,
		p.Specifications,
		p.Price,
		imagesJSON,
		downloadsJSON,
		p.SortOrder,
		p.IsPublished,
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("product", "slug", p.Slug)
		}
		if isForeignKeyViolation(err) {
			return apperrors.ForeignKeyViolation("category_id", p.CategoryID)
		}
		return fmt.Errorf("update product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("product", p.ID)
	}

	return nil
}

// Delete removes a product from the database by its ID.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("product", id)
	}

	return nil
}

// ListAll returns every product ordered for admin display.
func (r *ProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		ORDER BY sort_order, created_at DESC`, productColumns)

	return r.listProducts(ctx, query)
}

// ListPublished returns published products ordered for storefront display.
func (r *ProductRepository) ListPublished(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE is_published = true
		ORDER BY sort_order, created_at DESC`, productColumns)

	return r.listProducts(ctx, query)
}

// ListByCategory returns published products directly in the given category.
func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE category_id = $1 AND is_published = true
		ORDER BY sort_order, created_at DESC`, productColumns)

	return r.listProducts(ctx, query, categoryID)
}

// CountByCategory counts products directly in the given category, published
// or not.
func (r *ProductRepository) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return count, nil
}

// CountByBrand counts products referencing the given brand.
func (r *ProductRepository) CountByBrand(ctx context.Context, brandID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE brand_id = $1`, brandID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by brand: %w", err)
	}
	return count, nil
}

func (r *ProductRepository) listProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product

	for rows.Next() {
		p, err := scanProductRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	if products == nil {
		products = []domain.Product{}
	}

	return products, nil
}

// scanProduct executes a query expected to return a single product row.
func (r *ProductRepository) scanProduct(ctx context.Context, query string, args ...any) (*domain.Product, error) {
	var (
		p             domain.Product
		imagesJSON    []byte
		downloadsJSON []byte
	)

	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&p.ID,
		&p.CategoryID,
		&p.BrandID,
		&p.Name,
		&p.Model,
		&p.Slug,
		&p.Description,
		&p.Specifications,
		&p.Price,
		&imagesJSON,
		&downloadsJSON,
		&p.SortOrder,
		&p.IsPublished,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}

	if err := unmarshalProductAssets(&p, imagesJSON, downloadsJSON); err != nil {
		return nil, err
	}

	return &p, nil
}

func scanProductRow(rows pgx.Rows) (*domain.Product, error) {
	var (
		p             domain.Product
		imagesJSON    []byte
		downloadsJSON []byte
	)

	if err := rows.Scan(
		&p.ID,
		&p.CategoryID,
		&p.BrandID,
		&p.Name,
		&p.Model,
		&p.Slug,
		&p.Description,
		&p.Specifications,
		&p.Price,
		&imagesJSON,
		&downloadsJSON,
		&p.SortOrder,
		&p.IsPublished,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := unmarshalProductAssets(&p, imagesJSON, downloadsJSON); err != nil {
		return nil, err
	}

	return &p, nil
}

// marshalProductAssets encodes the images and downloads slices as JSON for
// storage. Nil slices are stored as empty arrays so reads never see SQL NULL.
func marshalProductAssets(p *domain.Product) (imagesJSON, downloadsJSON []byte, err error) {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, err = json.Marshal(images)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal images: %w", err)
	}

	downloads := p.Downloads
	if downloads == nil {
		downloads = []domain.Download{}
	}
	downloadsJSON, err = json.Marshal(downloads)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal downloads: %w", err)
	}

	return imagesJSON, downloadsJSON, nil
}

func unmarshalProductAssets(p *domain.Product, imagesJSON, downloadsJSON []byte) error {
	p.Images = []string{}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
			return fmt.Errorf("unmarshal images: %w", err)
		}
	}

	p.Downloads = []domain.Download{}
	if len(downloadsJSON) > 0 {
		if err := json.Unmarshal(downloadsJSON, &p.Downloads); err != nil {
			return fmt.Errorf("unmarshal downloads: %w", err)
		}
	}

	return nil
}
