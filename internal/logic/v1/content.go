package v1

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tawzeef/tawzeef/internal/core/domain"
	"github.com/tawzeef/tawzeef/middleware"
)

// ContentService serves the CMS: public page and blog reads, and the
// admin-only writes. Authorization is enforced at the route level; the
// service itself has no role logic.
type ContentService struct {
	content domain.ContentRepository
}

// NewContentService creates a ContentService.
func NewContentService(content domain.ContentRepository) *ContentService {
	return &ContentService{content: content}
}

// GetPage returns the page with the slug.
func (s *ContentService) GetPage(ctx context.Context, slug string) (*domain.PageRow, error) {
	ctx, span := middleware.StartSpan(ctx, "content.get_page", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("page.slug", slug),
	))
	defer span.End()

	page, err := s.content.GetPage(ctx, slug)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query page: %w", err)
	}
	if page == nil {
		return nil, fmt.Errorf("page %q: %w", slug, ErrNotFound)
	}
	return page, nil
}

// ListPages returns all CMS pages.
func (s *ContentService) ListPages(ctx context.Context) ([]domain.PageRow, error) {
	pages, err := s.content.ListPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	return pages, nil
}

// UpsertPage creates or replaces a page.
func (s *ContentService) UpsertPage(ctx context.Context, slug string, input domain.PageInput) (*domain.PageRow, error) {
	ctx, span := middleware.StartSpan(ctx, "content.upsert_page", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("page.slug", slug),
	))
	defer span.End()

	row := &domain.PageRow{
		Slug:    slug,
		TitleAr: input.TitleAr,
		TitleEn: input.TitleEn,
		BodyAr:  input.BodyAr,
		BodyEn:  input.BodyEn,
	}
	if err := s.content.UpsertPage(ctx, row); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("upsert page: %w", err)
	}
	return row, nil
}

// ListPosts returns blog posts. Unpublished posts are included only
// when includeDrafts is set (admin listing).
func (s *ContentService) ListPosts(ctx context.Context, includeDrafts bool) ([]domain.PostRow, error) {
	posts, err := s.content.ListPosts(ctx, !includeDrafts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// GetPost returns one published post by slug.
func (s *ContentService) GetPost(ctx context.Context, slug string) (*domain.PostRow, error) {
	post, err := s.content.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("query post: %w", err)
	}
	if post == nil || !post.Published {
		return nil, fmt.Errorf("post %q: %w", slug, ErrNotFound)
	}
	return post, nil
}

// CreatePost inserts a blog post. Slugs are unique.
func (s *ContentService) CreatePost(ctx context.Context, input domain.PostInput) (*domain.PostRow, error) {
	ctx, span := middleware.StartSpan(ctx, "content.create_post", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("post.slug", input.Slug),
	))
	defer span.End()

	existing, err := s.content.GetPostBySlug(ctx, input.Slug)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("post %q: %w", input.Slug, ErrSlugTaken)
	}

	row := &domain.PostRow{
		Slug:      input.Slug,
		TitleAr:   input.TitleAr,
		TitleEn:   input.TitleEn,
		BodyAr:    input.BodyAr,
		BodyEn:    input.BodyEn,
		Published: input.Published,
	}

	id, err := s.content.CreatePost(ctx, row)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("insert post: %w", err)
	}
	row.ID = id
	return row, nil
}

// UpdatePost replaces a post's fields.
func (s *ContentService) UpdatePost(ctx context.Context, id uuid.UUID, input domain.PostInput) (*domain.PostRow, error) {
	ctx, span := middleware.StartSpan(ctx, "content.update_post", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	existing, err := s.content.GetPostBySlug(ctx, input.Slug)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if existing != nil && existing.ID != id {
		return nil, fmt.Errorf("post %q: %w", input.Slug, ErrSlugTaken)
	}

	row := &domain.PostRow{
		ID:        id,
		Slug:      input.Slug,
		TitleAr:   input.TitleAr,
		TitleEn:   input.TitleEn,
		BodyAr:    input.BodyAr,
		BodyEn:    input.BodyEn,
		Published: input.Published,
	}
	if err := s.content.UpdatePost(ctx, row); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("update post: %w", err)
	}
	return row, nil
}

// DeletePost removes a post.
func (s *ContentService) DeletePost(ctx context.Context, id uuid.UUID) error {
	if err := s.content.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// GetSettings returns the site settings table.
func (s *ContentService) GetSettings(ctx context.Context) (map[string]string, error) {
	settings, err := s.content.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	return settings, nil
}

// SetSetting upserts one settings key.
func (s *ContentService) SetSetting(ctx context.Context, key, value string) error {
	if err := s.content.SetSetting(ctx, key, value); err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}
