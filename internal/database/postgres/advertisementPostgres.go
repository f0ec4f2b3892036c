package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/greenwoodcity/portal-backend/internal/entity"
)

type advertisementRepository struct {
	db *sql.DB
}

func NewAdvertisementRepository(db *sql.DB) AdvertisementRepository {
	return &advertisementRepository{db: db}
}

func (r *advertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) error {
	query := `
		INSERT INTO advertisements (title, description, category, business_name, contact_phone,
			contact_email, website, discount, offer, valid_until, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		ad.Title, ad.Description, ad.Category, ad.BusinessName, ad.ContactPhone,
		ad.ContactEmail, ad.Website, ad.Discount, ad.Offer, nullableTime(ad.ValidUntil), ad.PublishedAt,
	).Scan(&ad.ID, &ad.CreatedAt, &ad.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create advertisement: %w", err)
	}
	return nil
}

const advertisementColumns = `id, title, COALESCE(description, ''), COALESCE(category, ''),
	COALESCE(business_name, ''), COALESCE(contact_phone, ''), COALESCE(contact_email, ''),
	COALESCE(website, ''), COALESCE(discount, ''), COALESCE(offer, ''), valid_until,
	COALESCE(published_at, created_at), created_at, updated_at`

func (r *advertisementRepository) scanRow(row interface{ Scan(...interface{}) error }) (*entity.Advertisement, error) {
	var a entity.Advertisement
	var validUntil sql.NullTime
	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.Category,
		&a.BusinessName, &a.ContactPhone, &a.ContactEmail,
		&a.Website, &a.Discount, &a.Offer, &validUntil,
		&a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.ValidUntil = validUntil.Time
	return &a, nil
}

func (r *advertisementRepository) GetByID(ctx context.Context, id int64) (*entity.Advertisement, error) {
	query := `SELECT ` + advertisementColumns + ` FROM advertisements WHERE id = $1`
	ad, err := r.scanRow(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get advertisement: %w", err)
	}
	return ad, nil
}

func (r *advertisementRepository) GetAll(ctx context.Context) ([]*entity.Advertisement, error) {
	query := `SELECT ` + advertisementColumns + ` FROM advertisements ORDER BY published_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get advertisements: %w", err)
	}
	defer rows.Close()

	var items []*entity.Advertisement
	for rows.Next() {
		ad, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advertisement: %w", err)
		}
		items = append(items, ad)
	}
	return items, rows.Err()
}

func (r *advertisementRepository) Update(ctx context.Context, ad *entity.Advertisement) error {
	query := `
		UPDATE advertisements SET title = $1, description = $2, category = $3, business_name = $4,
			contact_phone = $5, contact_email = $6, website = $7, discount = $8, offer = $9,
			valid_until = $10, updated_at = CURRENT_TIMESTAMP
		WHERE id = $11
	`
	result, err := r.db.ExecContext(ctx, query,
		ad.Title, ad.Description, ad.Category, ad.BusinessName,
		ad.ContactPhone, ad.ContactEmail, ad.Website, ad.Discount, ad.Offer,
		nullableTime(ad.ValidUntil), ad.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update advertisement: %w", err)
	}
	return requireAffected(result)
}

func (r *advertisementRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM advertisements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete advertisement %d: %w", id, err)
	}
	return requireAffected(result)
}
