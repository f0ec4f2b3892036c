package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/greenwoodcity/portal-backend/internal/entity"
)

type policyRepository struct {
	db *sql.DB
}

func NewPolicyRepository(db *sql.DB) PolicyRepository {
	return &policyRepository{db: db}
}

func (r *policyRepository) Create(ctx context.Context, policy *entity.Policy) error {
	query := `
		INSERT INTO policies (title, slug, content, effective_date, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		policy.Title, policy.Slug, policy.Content, nullableTime(policy.EffectiveDate), policy.PublishedAt,
	).Scan(&policy.ID, &policy.CreatedAt, &policy.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create policy: %w", err)
	}
	return nil
}

func (r *policyRepository) GetByID(ctx context.Context, id int64) (*entity.Policy, error) {
	var p entity.Policy
	var effective sql.NullTime
	query := `
		SELECT id, title, slug, COALESCE(content, ''), effective_date,
			COALESCE(published_at, created_at), created_at, updated_at
		FROM policies WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &effective,
		&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get policy: %w", err)
	}
	p.EffectiveDate = effective.Time
	return &p, nil
}

func (r *policyRepository) GetAll(ctx context.Context) ([]*entity.Policy, error) {
	query := `
		SELECT id, title, slug, COALESCE(content, ''), effective_date,
			COALESCE(published_at, created_at), created_at, updated_at
		FROM policies ORDER BY title
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get policies: %w", err)
	}
	defer rows.Close()

	var items []*entity.Policy
	for rows.Next() {
		var p entity.Policy
		var effective sql.NullTime
		err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Content, &effective,
			&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan policy: %w", err)
		}
		p.EffectiveDate = effective.Time
		items = append(items, &p)
	}
	return items, rows.Err()
}

func (r *policyRepository) Update(ctx context.Context, policy *entity.Policy) error {
	query := `
		UPDATE policies SET title = $1, slug = $2, content = $3, effective_date = $4,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		policy.Title, policy.Slug, policy.Content, nullableTime(policy.EffectiveDate), policy.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update policy: %w", err)
	}
	return requireAffected(result)
}

func (r *policyRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM policies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete policy %d: %w", id, err)
	}
	return requireAffected(result)
}
