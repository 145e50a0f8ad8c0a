package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Fluorine7/Holylight-marine/internal/domain"
	pkgkafka "github.com/Fluorine7/Holylight-marine/pkg/kafka"
)

// Kafka topics. Catalog changes drive search reindexing; content changes
// drive storefront cache purges.
const (
	TopicCatalogChanged = "holylight.catalog.changed"
	TopicContentChanged = "holylight.content.changed"
)

// Entity identifiers carried in change events.
const (
	EntityCategory    = "category"
	EntityBrand       = "brand"
	EntityProduct     = "product"
	EntityBanner      = "banner"
	EntityPartner     = "partner"
	EntityNews        = "news"
	EntityCompanyInfo = "company_info"
)

// Change actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Source identifier for events originating from this service.
const SourceCMS = "holylight-cms"

// ChangeData is the payload for catalog and content change events.
type ChangeData struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     string `json:"id"`
	Slug   string `json:"slug,omitempty"`
}

// Producer publishes change events to Kafka. Publishing is best effort:
// callers log failures and never fail the originating mutation.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishCatalogChanged publishes a change event for a catalog entity
// (category, brand, product).
func (p *Producer) PublishCatalogChanged(ctx context.Context, entity, action, id, slug string) error {
	return p.publish(ctx, TopicCatalogChanged, entity, action, id, slug)
}

// PublishContentChanged publishes a change event for a content entity
// (banner, partner, news, company info).
func (p *Producer) PublishContentChanged(ctx context.Context, entity, action, id, slug string) error {
	return p.publish(ctx, TopicContentChanged, entity, action, id, slug)
}

// PublishProductChanged publishes a catalog change event keyed to a product.
func (p *Producer) PublishProductChanged(ctx context.Context, action string, product *domain.Product) error {
	return p.PublishCatalogChanged(ctx, EntityProduct, action, product.ID, product.Slug)
}

func (p *Producer) publish(ctx context.Context, topic, entity, action, id, slug string) error {
	data := ChangeData{
		Entity: entity,
		Action: action,
		ID:     id,
		Slug:   slug,
	}

	eventType := fmt.Sprintf("%s.%s", entity, action)
	event, err := pkgkafka.NewEvent(eventType, id, entity, SourceCMS, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", eventType, err)
	}

	if err := p.kafka.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish %s event: %w", eventType, err)
	}

	p.logger.DebugContext(ctx, "published change event",
		slog.String("topic", topic),
		slog.String("entity", entity),
		slog.String("action", action),
		slog.String("id", id),
	)

	return nil
}
