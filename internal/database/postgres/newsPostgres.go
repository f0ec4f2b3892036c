package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/greenwoodcity/portal-backend/internal/entity"
)

type newsRepository struct {
	db *sql.DB
}

func NewNewsRepository(db *sql.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(ctx context.Context, news *entity.News) error {
	query := `
		INSERT INTO news (title, slug, short_description, content, category, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		news.Title, news.Slug, news.ShortDescription, news.Content, news.Category, news.PublishedAt,
	).Scan(&news.ID, &news.CreatedAt, &news.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create news: %w", err)
	}
	return nil
}

func (r *newsRepository) GetByID(ctx context.Context, id int64) (*entity.News, error) {
	var n entity.News
	query := `
		SELECT id, title, slug, COALESCE(short_description, ''), COALESCE(content, ''),
			COALESCE(category, ''), COALESCE(published_at, created_at), created_at, updated_at
		FROM news WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&n.ID, &n.Title, &n.Slug, &n.ShortDescription, &n.Content,
		&n.Category, &n.PublishedAt, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get news: %w", err)
	}
	return &n, nil
}

func (r *newsRepository) GetAll(ctx context.Context) ([]*entity.News, error) {
	query := `
		SELECT id, title, slug, COALESCE(short_description, ''), COALESCE(content, ''),
			COALESCE(category, ''), COALESCE(published_at, created_at), created_at, updated_at
		FROM news ORDER BY published_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get news list: %w", err)
	}
	defer rows.Close()

	var items []*entity.News
	for rows.Next() {
		var n entity.News
		err := rows.Scan(
			&n.ID, &n.Title, &n.Slug, &n.ShortDescription, &n.Content,
			&n.Category, &n.PublishedAt, &n.CreatedAt, &n.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan news: %w", err)
		}
		items = append(items, &n)
	}
	return items, rows.Err()
}

func (r *newsRepository) GetTitles(ctx context.Context) ([]string, error) {
	return scanTitles(ctx, r.db, `SELECT title FROM news`)
}

func (r *newsRepository) Update(ctx context.Context, news *entity.News) error {
	query := `
		UPDATE news SET title = $1, slug = $2, short_description = $3, content = $4,
			category = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
	`
	result, err := r.db.ExecContext(ctx, query,
		news.Title, news.Slug, news.ShortDescription, news.Content, news.Category, news.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update news: %w", err)
	}
	return requireAffected(result)
}

func (r *newsRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete news %d: %w", id, err)
	}
	return requireAffected(result)
}

// scanTitles collects a single text column, used by the seeders to diff
// desired rows against existing ones.
func scanTitles(ctx context.Context, db *sql.DB, query string) ([]string, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get titles: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrContentNotFound
	}
	return nil
}
