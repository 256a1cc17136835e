package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tawzeef/tawzeef/internal/core/domain"
)

// PgxContentRepository implements domain.ContentRepository.
type PgxContentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository creates a new PgxContentRepository.
func NewContentRepository(pool *pgxpool.Pool) *PgxContentRepository {
	return &PgxContentRepository{pool: pool}
}

// GetPage returns the page with the slug, or (nil, nil).
func (r *PgxContentRepository) GetPage(ctx context.Context, slug string) (*domain.PageRow, error) {
	query := `SELECT slug, title_ar, title_en, body_ar, body_en, updated_at FROM pages WHERE slug = $1`

	var p domain.PageRow
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&p.Slug, &p.TitleAr, &p.TitleEn, &p.BodyAr, &p.BodyEn, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// ListPages returns all pages ordered by slug.
func (r *PgxContentRepository) ListPages(ctx context.Context) ([]domain.PageRow, error) {
	query := `SELECT slug, title_ar, title_en, body_ar, body_en, updated_at FROM pages ORDER BY slug`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []domain.PageRow
	for rows.Next() {
		var p domain.PageRow
		if err := rows.Scan(&p.Slug, &p.TitleAr, &p.TitleEn, &p.BodyAr, &p.BodyEn, &p.UpdatedAt); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// UpsertPage creates or replaces the page with row.Slug.
func (r *PgxContentRepository) UpsertPage(ctx context.Context, row *domain.PageRow) error {
	query := `
		INSERT INTO pages (slug, title_ar, title_en, body_ar, body_en)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slug) DO UPDATE
		SET title_ar = EXCLUDED.title_ar, title_en = EXCLUDED.title_en,
		    body_ar = EXCLUDED.body_ar, body_en = EXCLUDED.body_en,
		    updated_at = CURRENT_TIMESTAMP
	`
	_, err := r.pool.Exec(ctx, query, row.Slug, row.TitleAr, row.TitleEn, row.BodyAr, row.BodyEn)
	return err
}

const postColumns = `id, slug, title_ar, title_en, body_ar, body_en, published, created_at, updated_at`

// ListPosts returns posts, optionally only published ones.
func (r *PgxContentRepository) ListPosts(ctx context.Context, publishedOnly bool) ([]domain.PostRow, error) {
	query := `SELECT ` + postColumns + ` FROM posts`
	if publishedOnly {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.PostRow
	for rows.Next() {
		var p domain.PostRow
		if err := rows.Scan(
			&p.ID, &p.Slug, &p.TitleAr, &p.TitleEn, &p.BodyAr, &p.BodyEn,
			&p.Published, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetPostBySlug returns the post with the slug, or (nil, nil).
func (r *PgxContentRepository) GetPostBySlug(ctx context.Context, slug string) (*domain.PostRow, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE slug = $1`

	var p domain.PostRow
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&p.ID, &p.Slug, &p.TitleAr, &p.TitleEn, &p.BodyAr, &p.BodyEn,
		&p.Published, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// CreatePost inserts a post and returns its id.
func (r *PgxContentRepository) CreatePost(ctx context.Context, row *domain.PostRow) (uuid.UUID, error) {
	query := `
		INSERT INTO posts (slug, title_ar, title_en, body_ar, body_en, published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query,
		row.Slug, row.TitleAr, row.TitleEn, row.BodyAr, row.BodyEn, row.Published,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdatePost replaces the post's mutable fields.
func (r *PgxContentRepository) UpdatePost(ctx context.Context, row *domain.PostRow) error {
	query := `
		UPDATE posts
		SET slug = $2, title_ar = $3, title_en = $4, body_ar = $5, body_en = $6,
		    published = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		row.ID, row.Slug, row.TitleAr, row.TitleEn, row.BodyAr, row.BodyEn, row.Published,
	)
	return err
}

// DeletePost removes the post.
func (r *PgxContentRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM posts WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// GetSettings returns the whole settings table.
func (r *PgxContentRepository) GetSettings(ctx context.Context) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		settings[k] = v
	}
	return settings, rows.Err()
}

// SetSetting upserts one settings key.
func (r *PgxContentRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	_, err := r.pool.Exec(ctx, query, key, value)
	return err
}
