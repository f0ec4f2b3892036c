package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/greenwoodcity/portal-backend/internal/entity"
)

type announcementRepository struct {
	db *sql.DB
}

func NewAnnouncementRepository(db *sql.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *entity.Announcement) error {
	query := `
		INSERT INTO announcements (title, message, priority, expiry_date, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		announcement.Title, announcement.Message, announcement.Priority,
		nullableTime(announcement.ExpiryDate), announcement.PublishedAt,
	).Scan(&announcement.ID, &announcement.CreatedAt, &announcement.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}
	return nil
}

func (r *announcementRepository) GetByID(ctx context.Context, id int64) (*entity.Announcement, error) {
	var a entity.Announcement
	var expiry sql.NullTime
	query := `
		SELECT id, title, message, COALESCE(priority, 'normal'), expiry_date,
			COALESCE(published_at, created_at), created_at, updated_at
		FROM announcements WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Message, &a.Priority, &expiry,
		&a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}
	a.ExpiryDate = expiry.Time
	return &a, nil
}

func (r *announcementRepository) GetAll(ctx context.Context) ([]*entity.Announcement, error) {
	query := `
		SELECT id, title, message, COALESCE(priority, 'normal'), expiry_date,
			COALESCE(published_at, created_at), created_at, updated_at
		FROM announcements ORDER BY published_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get announcements: %w", err)
	}
	defer rows.Close()

	var items []*entity.Announcement
	for rows.Next() {
		var a entity.Announcement
		var expiry sql.NullTime
		err := rows.Scan(
			&a.ID, &a.Title, &a.Message, &a.Priority, &expiry,
			&a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		a.ExpiryDate = expiry.Time
		items = append(items, &a)
	}
	return items, rows.Err()
}

func (r *announcementRepository) GetTitles(ctx context.Context) ([]string, error) {
	return scanTitles(ctx, r.db, `SELECT title FROM announcements`)
}

func (r *announcementRepository) Update(ctx context.Context, announcement *entity.Announcement) error {
	query := `
		UPDATE announcements SET title = $1, message = $2, priority = $3, expiry_date = $4,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		announcement.Title, announcement.Message, announcement.Priority,
		nullableTime(announcement.ExpiryDate), announcement.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update announcement: %w", err)
	}
	return requireAffected(result)
}

func (r *announcementRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement %d: %w", id, err)
	}
	return requireAffected(result)
}

func nullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
