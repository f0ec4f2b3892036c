package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/greenwoodcity/portal-backend/internal/entity"
)

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.ContentCategory) error {
	query := `
		INSERT INTO content_categories (name, slug, description, color, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		category.Name, category.Slug, category.Description, category.Color,
	).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]*entity.ContentCategory, error) {
	query := `SELECT id, name, slug, COALESCE(description, ''), COALESCE(color, ''), created_at FROM content_categories ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.ContentCategory
	for rows.Next() {
		var c entity.ContentCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Color, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*entity.ContentCategory, error) {
	var c entity.ContentCategory
	query := `SELECT id, name, slug, COALESCE(description, ''), COALESCE(color, ''), created_at FROM content_categories WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Color, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &c, nil
}

func (r *categoryRepository) GetNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM content_categories`)
	if err != nil {
		return nil, fmt.Errorf("failed to get category names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.ContentCategory) error {
	query := `
		UPDATE content_categories
		SET name = $1, slug = $2, description = $3, color = $4
		WHERE id = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		category.Name, category.Slug, category.Description, category.Color, category.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return requireAffected(result)
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM content_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	return nil
}
