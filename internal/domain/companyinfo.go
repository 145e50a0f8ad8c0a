package domain

import (
	"context"
	"time"
)

// Known company info sections. Sections are free-form strings in storage;
// these are the ones the storefront renders.
const (
	SectionAbout   = "about"
	SectionContact = "contact"
	SectionHistory = "history"
	SectionCulture = "culture"
)

// CompanyInfo is a keyed block of editable site copy, one row per section.
type CompanyInfo struct {
	ID        string    `json:"id"`
	Section   string    `json:"section"`
	Title     *string   `json:"title,omitempty"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertCompanyInfoInput holds the parameters for writing a section. The
// write is an upsert keyed on Section, so the same call creates or replaces.
type UpsertCompanyInfoInput struct {
	Section  string  `json:"section" validate:"required,min=1,max=100"`
	Title    *string `json:"title" validate:"omitempty,max=255"`
	Content  string  `json:"content" validate:"required"`
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
}

// CompanyInfoRepository defines the interface for company info persistence.
type CompanyInfoRepository interface {
	// GetBySection retrieves the info block for a section.
	GetBySection(ctx context.Context, section string) (*CompanyInfo, error)

	// Upsert creates the section row or replaces its content.
	Upsert(ctx context.Context, info *CompanyInfo) error

	// ListAll returns every section block.
	ListAll(ctx context.Context) ([]CompanyInfo, error)
}
