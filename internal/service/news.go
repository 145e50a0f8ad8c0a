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
	"github.com/Fluorine7/Holylight-marine/pkg/slug"
)

// NewsService implements the business logic for news operations.
type NewsService struct {
	news     domain.NewsRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewNewsService creates a new news service.
func NewNewsService(news domain.NewsRepository, producer *event.Producer, logger *slog.Logger) *NewsService {
	return &NewsService{
		news:     news,
		producer: producer,
		logger:   logger,
	}
}

// CreateArticle creates a new news article with the given input. The publish
// date defaults to now when absent.
func (s *NewsService) CreateArticle(ctx context.Context, input *domain.CreateNewsInput) (*domain.NewsArticle, error) {
	if input.Title == "" {
		return nil, apperrors.InvalidInput("article title is required")
	}

	now := time.Now().UTC()
	publishDate := now
	if input.PublishDate != nil {
		publishDate = input.PublishDate.UTC()
	}

	article := &domain.NewsArticle{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Slug:        slug.Ensure(input.Slug, input.Title, "news"),
		Summary:     input.Summary,
		Content:     input.Content,
		CoverImage:  input.CoverImage,
		Category:    input.Category,
		PublishDate: publishDate,
		IsPublished: boolOrDefault(input.IsPublished, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.news.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create news article: %w", err)
	}

	s.publishChanged(ctx, event.ActionCreated, article.ID, article.Slug)

	s.logger.InfoContext(ctx, "news article created",
		slog.String("article_id", article.ID),
		slog.String("slug", article.Slug),
	)

	return article, nil
}

// GetArticle retrieves an article by its ID.
func (s *NewsService) GetArticle(ctx context.Context, id string) (*domain.NewsArticle, error) {
	article, err := s.news.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news article by id: %w", err)
	}
	return article, nil
}

// GetArticleBySlug retrieves an article by its slug.
func (s *NewsService) GetArticleBySlug(ctx context.Context, slug string) (*domain.NewsArticle, error) {
	article, err := s.news.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get news article by slug: %w", err)
	}
	return article, nil
}

// ListArticles returns every article for admin screens.
func (s *NewsService) ListArticles(ctx context.Context) ([]domain.NewsArticle, error) {
	articles, err := s.news.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list news articles: %w", err)
	}
	return articles, nil
}

// ListPublishedArticles returns published articles for the storefront.
func (s *NewsService) ListPublishedArticles(ctx context.Context) ([]domain.NewsArticle, error) {
	articles, err := s.news.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published news articles: %w", err)
	}
	return articles, nil
}

// UpdateArticle applies partial updates to an existing article.
func (s *NewsService) UpdateArticle(ctx context.Context, id string, input *domain.UpdateNewsInput) (*domain.NewsArticle, error) {
	article, err := s.news.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news article for update: %w", err)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, apperrors.InvalidInput("article title must not be empty")
		}
		article.Title = *input.Title
	}

	// The slug only changes when the request carries the slug key.
	if input.Slug != nil {
		article.Slug = slug.Ensure(*input.Slug, article.Title, "news")
	}

	if input.Summary != nil {
		article.Summary = input.Summary
	}
	if input.Content != nil {
		article.Content = input.Content
	}
	if input.CoverImage != nil {
		article.CoverImage = input.CoverImage
	}
	if input.Category != nil {
		article.Category = input.Category
	}
	if input.PublishDate != nil {
		article.PublishDate = input.PublishDate.UTC()
	}
	if input.IsPublished != nil {
		article.IsPublished = *input.IsPublished
	}

	if err := s.news.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update news article: %w", err)
	}

	s.publishChanged(ctx, event.ActionUpdated, article.ID, article.Slug)

	s.logger.InfoContext(ctx, "news article updated",
		slog.String("article_id", article.ID),
		slog.String("slug", article.Slug),
	)

	return article, nil
}

// DeleteArticle removes an article by its ID.
func (s *NewsService) DeleteArticle(ctx context.Context, id string) error {
	if _, err := s.news.GetByID(ctx, id); err != nil {
		return fmt.Errorf("get news article for delete: %w", err)
	}

	if err := s.news.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete news article: %w", err)
	}

	s.publishChanged(ctx, event.ActionDeleted, id, "")

	s.logger.InfoContext(ctx, "news article deleted",
		slog.String("article_id", id),
	)

	return nil
}

func (s *NewsService) publishChanged(ctx context.Context, action, id, articleSlug string) {
	if err := s.producer.PublishContentChanged(ctx, event.EntityNews, action, id, articleSlug); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish content change event",
			slog.String("article_id", id),
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}
}
