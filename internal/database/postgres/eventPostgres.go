package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/greenwoodcity/portal-backend/internal/entity"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (title, slug, description, event_date, location, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		event.Title, event.Slug, event.Description, event.EventDate, event.Location, event.PublishedAt,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	var e entity.Event
	query := `
		SELECT id, title, slug, COALESCE(description, ''), event_date, COALESCE(location, ''),
			COALESCE(published_at, created_at), created_at, updated_at
		FROM events WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.EventDate, &e.Location,
		&e.PublishedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &e, nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]*entity.Event, error) {
	query := `
		SELECT id, title, slug, COALESCE(description, ''), event_date, COALESCE(location, ''),
			COALESCE(published_at, created_at), created_at, updated_at
		FROM events ORDER BY event_date
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var items []*entity.Event
	for rows.Next() {
		var e entity.Event
		err := rows.Scan(
			&e.ID, &e.Title, &e.Slug, &e.Description, &e.EventDate, &e.Location,
			&e.PublishedAt, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		items = append(items, &e)
	}
	return items, rows.Err()
}

func (r *eventRepository) GetTitles(ctx context.Context) ([]string, error) {
	return scanTitles(ctx, r.db, `SELECT title FROM events`)
}

func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events SET title = $1, slug = $2, description = $3, event_date = $4,
			location = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
	`
	result, err := r.db.ExecContext(ctx, query,
		event.Title, event.Slug, event.Description, event.EventDate, event.Location, event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return requireAffected(result)
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event %d: %w", id, err)
	}
	return requireAffected(result)
}
