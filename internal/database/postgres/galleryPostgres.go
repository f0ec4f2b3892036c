package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/greenwoodcity/portal-backend/internal/entity"

	"github.com/lib/pq"
)

type galleryRepository struct {
	db *sql.DB
}

func NewGalleryRepository(db *sql.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(ctx context.Context, gallery *entity.Gallery) error {
	query := `
		INSERT INTO galleries (title, slug, description, event_id, images, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		gallery.Title, gallery.Slug, gallery.Description,
		nullableID(gallery.EventID), pq.Array(gallery.Images), gallery.PublishedAt,
	).Scan(&gallery.ID, &gallery.CreatedAt, &gallery.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create gallery: %w", err)
	}
	return nil
}

const galleryColumns = `id, title, slug, COALESCE(description, ''), COALESCE(event_id, 0),
	images, COALESCE(published_at, created_at), created_at, updated_at`

func (r *galleryRepository) scanRow(row interface{ Scan(...interface{}) error }) (*entity.Gallery, error) {
	var g entity.Gallery
	err := row.Scan(
		&g.ID, &g.Title, &g.Slug, &g.Description, &g.EventID,
		pq.Array(&g.Images), &g.PublishedAt, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *galleryRepository) GetByID(ctx context.Context, id int64) (*entity.Gallery, error) {
	query := `SELECT ` + galleryColumns + ` FROM galleries WHERE id = $1`
	gallery, err := r.scanRow(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get gallery: %w", err)
	}
	return gallery, nil
}

func (r *galleryRepository) GetAll(ctx context.Context) ([]*entity.Gallery, error) {
	query := `SELECT ` + galleryColumns + ` FROM galleries ORDER BY published_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get galleries: %w", err)
	}
	defer rows.Close()

	var items []*entity.Gallery
	for rows.Next() {
		gallery, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gallery: %w", err)
		}
		items = append(items, gallery)
	}
	return items, rows.Err()
}

func (r *galleryRepository) GetByEvent(ctx context.Context, eventID int64) ([]*entity.Gallery, error) {
	query := `SELECT ` + galleryColumns + ` FROM galleries WHERE event_id = $1 ORDER BY published_at DESC`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get galleries for event %d: %w", eventID, err)
	}
	defer rows.Close()

	var items []*entity.Gallery
	for rows.Next() {
		gallery, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gallery: %w", err)
		}
		items = append(items, gallery)
	}
	return items, rows.Err()
}

func (r *galleryRepository) Update(ctx context.Context, gallery *entity.Gallery) error {
	query := `
		UPDATE galleries SET title = $1, slug = $2, description = $3, event_id = $4,
			images = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
	`
	result, err := r.db.ExecContext(ctx, query,
		gallery.Title, gallery.Slug, gallery.Description,
		nullableID(gallery.EventID), pq.Array(gallery.Images), gallery.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update gallery: %w", err)
	}
	return requireAffected(result)
}

func (r *galleryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM galleries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery %d: %w", id, err)
	}
	return requireAffected(result)
}

func nullableID(id int64) interface{} {
	if id <= 0 {
		return nil
	}
	return id
}
