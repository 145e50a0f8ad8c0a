package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Fluorine7/Holylight-marine/internal/domain"
	"github.com/Fluorine7/Holylight-marine/internal/event"
	apperrors "github.com/Fluorine7/Holylight-marine/pkg/errors"
)

// ContentService implements the business logic for the page-content
// entities: banners, partners, and the keyed company info sections.
type ContentService struct {
	banners  domain.BannerRepository
	partners domain.PartnerRepository
	info     domain.CompanyInfoRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewContentService creates a new content service.
func NewContentService(
	banners domain.BannerRepository,
	partners domain.PartnerRepository,
	info domain.CompanyInfoRepository,
	producer *event.Producer,
	logger *slog.Logger,
) *ContentService {
	return &ContentService{
		banners:  banners,
		partners: partners,
		info:     info,
		producer: producer,
		logger:   logger,
	}
}

// ─── Banners ────────────────────────────────────────────────────────────────

// CreateBanner creates a new banner with the given input.
func (s *ContentService) CreateBanner(ctx context.Context, input *domain.CreateBannerInput) (*domain.Banner, error) {
	if input.Title == "" {
		return nil, apperrors.InvalidInput("banner title is required")
	}
	if input.ImageURL == "" {
		return nil, apperrors.InvalidInput("banner image is required")
	}

	now := time.Now().UTC()
	banner := &domain.Banner{
		ID:        uuid.New().String(),
		Title:     input.Title,
		Subtitle:  input.Subtitle,
		ImageURL:  input.ImageURL,
		Link:      input.Link,
		SortOrder: input.SortOrder,
		IsActive:  boolOrDefault(input.IsActive, true),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.banners.Create(ctx, banner); err != nil {
		return nil, fmt.Errorf("create banner: %w", err)
	}

	s.publishChanged(ctx, event.EntityBanner, event.ActionCreated, banner.ID)

	s.logger.InfoContext(ctx, "banner created",
		slog.String("banner_id", banner.ID),
	)

	return banner, nil
}

// GetBanner retrieves a banner by its ID.
func (s *ContentService) GetBanner(ctx context.Context, id string) (*domain.Banner, error) {
	banner, err := s.banners.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get banner by id: %w", err)
	}
	return banner, nil
}

// ListBanners returns every banner for admin screens.
func (s *ContentService) ListBanners(ctx context.Context) ([]domain.Banner, error) {
	banners, err := s.banners.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	return banners, nil
}

// ListActiveBanners returns active banners for the storefront.
func (s *ContentService) ListActiveBanners(ctx context.Context) ([]domain.Banner, error) {
	banners, err := s.banners.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active banners: %w", err)
	}
	return banners, nil
}

// UpdateBanner applies partial updates to an existing banner.
func (s *ContentService) UpdateBanner(ctx context.Context, id string, input *domain.UpdateBannerInput) (*domain.Banner, error) {
	banner, err := s.banners.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get banner for update: %w", err)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, apperrors.InvalidInput("banner title must not be empty")
		}
		banner.Title = *input.Title
	}
	if input.Subtitle != nil {
		banner.Subtitle = input.Subtitle
	}
	if input.ImageURL != nil {
		if *input.ImageURL == "" {
			return nil, apperrors.InvalidInput("banner image must not be empty")
		}
		banner.ImageURL = *input.ImageURL
	}
	if input.Link != nil {
		banner.Link = input.Link
	}
	if input.SortOrder != nil {
		banner.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}

	if err := s.banners.Update(ctx, banner); err != nil {
		return nil, fmt.Errorf("update banner: %w", err)
	}

	s.publishChanged(ctx, event.EntityBanner, event.ActionUpdated, banner.ID)

	s.logger.InfoContext(ctx, "banner updated",
		slog.String("banner_id", banner.ID),
	)

	return banner, nil
}

// DeleteBanner removes a banner by its ID.
func (s *ContentService) DeleteBanner(ctx context.Context, id string) error {
	if err := s.banners.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}

	s.publishChanged(ctx, event.EntityBanner, event.ActionDeleted, id)

	s.logger.InfoContext(ctx, "banner deleted",
		slog.String("banner_id", id),
	)

	return nil
}

// ─── Partners ───────────────────────────────────────────────────────────────

// CreatePartner creates a new partner with the given input.
func (s *ContentService) CreatePartner(ctx context.Context, input *domain.CreatePartnerInput) (*domain.Partner, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("partner name is required")
	}
	if input.LogoURL == "" {
		return nil, apperrors.InvalidInput("partner logo is required")
	}

	now := time.Now().UTC()
	partner := &domain.Partner{
		ID:        uuid.New().String(),
		Name:      input.Name,
		LogoURL:   input.LogoURL,
		Website:   input.Website,
		SortOrder: input.SortOrder,
		IsActive:  boolOrDefault(input.IsActive, true),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.partners.Create(ctx, partner); err != nil {
		return nil, fmt.Errorf("create partner: %w", err)
	}

	s.publishChanged(ctx, event.EntityPartner, event.ActionCreated, partner.ID)

	s.logger.InfoContext(ctx, "partner created",
		slog.String("partner_id", partner.ID),
	)

	return partner, nil
}

// GetPartner retrieves a partner by its ID.
func (s *ContentService) GetPartner(ctx context.Context, id string) (*domain.Partner, error) {
	partner, err := s.partners.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get partner by id: %w", err)
	}
	return partner, nil
}

// ListPartners returns every partner for admin screens.
func (s *ContentService) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	partners, err := s.partners.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	return partners, nil
}

// ListActivePartners returns active partners for the storefront.
func (s *ContentService) ListActivePartners(ctx context.Context) ([]domain.Partner, error) {
	partners, err := s.partners.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active partners: %w", err)
	}
	return partners, nil
}

// UpdatePartner applies partial updates to an existing partner.
func (s *ContentService) UpdatePartner(ctx context.Context, id string, input *domain.UpdatePartnerInput) (*domain.Partner, error) {
	partner, err := s.partners.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get partner for update: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperrors.InvalidInput("partner name must not be empty")
		}
		partner.Name = *input.Name
	}
	if input.LogoURL != nil {
		if *input.LogoURL == "" {
			return nil, apperrors.InvalidInput("partner logo must not be empty")
		}
		partner.LogoURL = *input.LogoURL
	}
	if input.Website != nil {
		partner.Website = input.Website
	}
	if input.SortOrder != nil {
		partner.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		partner.IsActive = *input.IsActive
	}

	if err := s.partners.Update(ctx, partner); err != nil {
		return nil, fmt.Errorf("update partner: %w", err)
	}

	s.publishChanged(ctx, event.EntityPartner, event.ActionUpdated, partner.ID)

	s.logger.InfoContext(ctx, "partner updated",
		slog.String("partner_id", partner.ID),
	)

	return partner, nil
}

// DeletePartner removes a partner by its ID.
func (s *ContentService) DeletePartner(ctx context.Context, id string) error {
	if err := s.partners.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete partner: %w", err)
	}

	s.publishChanged(ctx, event.EntityPartner, event.ActionDeleted, id)

	s.logger.InfoContext(ctx, "partner deleted",
		slog.String("partner_id", id),
	)

	return nil
}

// ─── Company info ───────────────────────────────────────────────────────────

// GetCompanyInfo retrieves the info block for a section.
func (s *ContentService) GetCompanyInfo(ctx context.Context, section string) (*domain.CompanyInfo, error) {
	info, err := s.info.GetBySection(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("get company info by section: %w", err)
	}
	return info, nil
}

// ListCompanyInfo returns every section block.
func (s *ContentService) ListCompanyInfo(ctx context.Context) ([]domain.CompanyInfo, error) {
	infos, err := s.info.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list company info: %w", err)
	}
	return infos, nil
}

// UpsertCompanyInfo creates or replaces a section block. The same call
// serves both the first write and every later edit. The returned block
// carries the stored identity: the generated id is only a candidate for the
// insert path, and the repository replaces it with the existing row's id
// when the section was already written.
func (s *ContentService) UpsertCompanyInfo(ctx context.Context, input *domain.UpsertCompanyInfoInput) (*domain.CompanyInfo, error) {
	if input.Section == "" {
		return nil, apperrors.InvalidInput("company info section is required")
	}
	if input.Content == "" {
		return nil, apperrors.InvalidInput("company info content is required")
	}

	info := &domain.CompanyInfo{
		ID:       uuid.New().String(),
		Section:  input.Section,
		Title:    input.Title,
		Content:  input.Content,
		ImageURL: input.ImageURL,
	}

	if err := s.info.Upsert(ctx, info); err != nil {
		return nil, fmt.Errorf("upsert company info: %w", err)
	}

	s.publishChanged(ctx, event.EntityCompanyInfo, event.ActionUpdated, info.Section)

	s.logger.InfoContext(ctx, "company info upserted",
		slog.String("section", info.Section),
	)

	return info, nil
}

func (s *ContentService) publishChanged(ctx context.Context, entity, action, id string) {
	if err := s.producer.PublishContentChanged(ctx, entity, action, id, ""); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish content change event",
			slog.String("entity", entity),
			slog.String("action", action),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}
}
