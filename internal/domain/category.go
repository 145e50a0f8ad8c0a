package domain

import (
	"context"
	"errors"
	"sort"
	"time"
)

var (
	// ErrCycleDetected is returned by Path when the parent chain of a
	// category loops back on itself. A well-formed store never produces
	// this, but corrupt data must not hang the walk.
	ErrCycleDetected = errors.New("category parent chain contains a cycle")

	// ErrCategoryMissing is returned by Path when the requested id is not
	// present in the supplied set.
	ErrCategoryMissing = errors.New("category not present in set")
)

// Category represents a catalog category with optional hierarchical nesting.
type Category struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	ParentID    *string     `json:"parent_id,omitempty"`
	SortOrder   int         `json:"sort_order"`
	IsActive    bool        `json:"is_active"`
	ImageURL    *string     `json:"image_url,omitempty"`
	Description *string     `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	// Children is always non-nil so childless nodes serialize as [] rather
	// than null or a missing key.
	Children []*Category `json:"children"`
}

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Slug        string  `json:"slug"`
	ParentID    *string `json:"parent_id" validate:"omitempty,uuid"`
	SortOrder   int     `json:"sort_order" validate:"gte=0"`
	IsActive    *bool   `json:"is_active"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	Description *string `json:"description"`
}

// UpdateCategoryInput holds the parameters for updating a category. Nil
// fields are left untouched. A non-nil Slug asks for the slug to be
// regenerated even when its value is empty.
type UpdateCategoryInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Slug        *string `json:"slug"`
	ParentID    *string `json:"parent_id" validate:"omitempty,uuid"`
	SortOrder   *int    `json:"sort_order" validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"is_active"`
	ImageURL    *string `json:"image_url" validate:"omitempty"`
	Description *string `json:"description"`
}

// CategoryDeleteCheck reports whether a category can be removed and, if not,
// what still references it.
type CategoryDeleteCheck struct {
	CanDelete     bool   `json:"can_delete"`
	ChildCount    int    `json:"child_count"`
	ProductCount  int    `json:"product_count"`
	BlockedReason string `json:"blocked_reason,omitempty"`
}

// BuildTree assembles a flat list of categories into a forest. Children are
// attached to their parent ordered by SortOrder; categories whose parent is
// absent from the input are treated as roots rather than dropped.
func BuildTree(categories []Category) []*Category {
	nodes := make(map[string]*Category, len(categories))
	ordered := make([]*Category, 0, len(categories))
	for i := range categories {
		c := categories[i]
		c.Children = []*Category{}
		nodes[c.ID] = &c
		ordered = append(ordered, &c)
	}

	var roots []*Category
	for _, node := range ordered {
		if node.ParentID != nil {
			if parent, ok := nodes[*node.ParentID]; ok && parent != node {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	sortSiblings(roots)
	for _, node := range ordered {
		sortSiblings(node.Children)
	}
	return roots
}

func sortSiblings(siblings []*Category) {
	sort.SliceStable(siblings, func(i, j int) bool {
		return siblings[i].SortOrder < siblings[j].SortOrder
	})
}

// Path returns the ancestor chain of the category with the given id, root
// first and the category itself last.
func Path(categories []Category, id string) ([]Category, error) {
	byID := make(map[string]Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	current, ok := byID[id]
	if !ok {
		return nil, ErrCategoryMissing
	}

	visited := map[string]bool{current.ID: true}
	path := []Category{current}
	for current.ParentID != nil {
		parent, ok := byID[*current.ParentID]
		if !ok {
			break
		}
		if visited[parent.ID] {
			return nil, ErrCycleDetected
		}
		visited[parent.ID] = true
		path = append(path, parent)
		current = parent
	}

	// Reverse so the root comes first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create inserts a new category into the store.
	Create(ctx context.Context, category *Category) error

	// GetByID retrieves a category by its unique identifier.
	GetByID(ctx context.Context, id string) (*Category, error)

	// GetBySlug retrieves a category by its URL-friendly slug.
	GetBySlug(ctx context.Context, slug string) (*Category, error)

	// Update modifies an existing category in the store.
	Update(ctx context.Context, category *Category) error

	// Delete removes a category from the store by its identifier.
	Delete(ctx context.Context, id string) error

	// ListAll returns every category, active or not, as a flat list.
	ListAll(ctx context.Context) ([]Category, error)

	// ListActive returns all active categories as a flat list.
	ListActive(ctx context.Context) ([]Category, error)

	// ListByParent returns the active direct children of the given category.
	ListByParent(ctx context.Context, parentID string) ([]Category, error)

	// ListTopLevel returns the active categories with no parent. A limit of
	// zero or less returns all of them.
	ListTopLevel(ctx context.Context, limit int) ([]Category, error)

	// CountChildren counts categories whose parent is the given category,
	// regardless of active state.
	CountChildren(ctx context.Context, id string) (int, error)
}
