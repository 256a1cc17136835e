package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PageRow is a CMS page (about, terms, ...) with bilingual content,
// addressed by slug.
type PageRow struct {
	Slug      string
	TitleAr   string
	TitleEn   string
	BodyAr    string
	BodyEn    string
	UpdatedAt time.Time
}

// PostRow is a blog post with bilingual content.
type PostRow struct {
	ID        uuid.UUID
	Slug      string
	TitleAr   string
	TitleEn   string
	BodyAr    string
	BodyEn    string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContentRepository defines data access for CMS pages, blog posts and
// the site settings key/value table.
type ContentRepository interface {
	// GetPage returns the page with the slug, or (nil, nil).
	GetPage(ctx context.Context, slug string) (*PageRow, error)

	// ListPages returns all pages ordered by slug.
	ListPages(ctx context.Context) ([]PageRow, error)

	// UpsertPage creates or replaces the page with row.Slug.
	UpsertPage(ctx context.Context, row *PageRow) error

	// ListPosts returns posts, optionally only published ones,
	// newest first.
	ListPosts(ctx context.Context, publishedOnly bool) ([]PostRow, error)

	// GetPostBySlug returns the post with the slug, or (nil, nil).
	GetPostBySlug(ctx context.Context, slug string) (*PostRow, error)

	// CreatePost inserts a post and returns its id.
	CreatePost(ctx context.Context, row *PostRow) (uuid.UUID, error)

	// UpdatePost replaces the post's mutable fields.
	UpdatePost(ctx context.Context, row *PostRow) error

	// DeletePost removes the post.
	DeletePost(ctx context.Context, id uuid.UUID) error

	// GetSettings returns the whole settings table.
	GetSettings(ctx context.Context) (map[string]string, error)

	// SetSetting upserts one settings key.
	SetSetting(ctx context.Context, key, value string) error
}
