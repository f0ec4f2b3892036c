package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/greenwoodcity/portal-backend/internal/entity"

	_ "github.com/lib/pq"
)

type subscriptionRepository struct {
	db *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Upsert(ctx context.Context, sub *entity.PushSubscription) (*entity.PushSubscription, error) {
	query := `
		INSERT INTO push_subscriptions (endpoint, p256dh, auth, device, user_agent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (endpoint) DO UPDATE SET
			p256dh = EXCLUDED.p256dh,
			auth = EXCLUDED.auth,
			device = EXCLUDED.device,
			user_agent = EXCLUDED.user_agent,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at
	`

	stored := *sub
	err := r.db.QueryRowContext(ctx, query,
		sub.Endpoint,
		sub.Keys.P256dh,
		sub.Keys.Auth,
		sub.Device,
		sub.UserAgent,
	).Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert subscription: %w", err)
	}

	return &stored, nil
}

func (r *subscriptionRepository) GetAll(ctx context.Context, filter *entity.BroadcastFilter) ([]*entity.PushSubscription, error) {
	query := `
		SELECT id, endpoint, p256dh, auth, COALESCE(device, ''), COALESCE(user_agent, ''), created_at, updated_at
		FROM push_subscriptions
	`
	args := []interface{}{}
	if filter != nil && filter.Device != "" {
		query += ` WHERE device = $1`
		args = append(args, filter.Device)
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []*entity.PushSubscription
	for rows.Next() {
		var sub entity.PushSubscription
		err := rows.Scan(
			&sub.ID, &sub.Endpoint, &sub.Keys.P256dh, &sub.Keys.Auth,
			&sub.Device, &sub.UserAgent, &sub.CreatedAt, &sub.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, &sub)
	}

	return subs, rows.Err()
}

func (r *subscriptionRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM push_subscriptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subscription %d: %w", id, err)
	}
	return nil
}

func (r *subscriptionRepository) DeleteByEndpoint(ctx context.Context, endpoint string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM push_subscriptions WHERE endpoint = $1`, endpoint)
	if err != nil {
		return false, fmt.Errorf("failed to delete subscription by endpoint: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
