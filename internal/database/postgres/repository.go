package repository

import (
	"context"

	"github.com/greenwoodcity/portal-backend/internal/entity"
)

type SubscriptionRepository interface {
	// Upsert inserts a subscription or, when the endpoint already exists,
	// replaces its keys/device/user agent. Atomic at the database.
	Upsert(ctx context.Context, sub *entity.PushSubscription) (*entity.PushSubscription, error)
	GetAll(ctx context.Context, filter *entity.BroadcastFilter) ([]*entity.PushSubscription, error)
	Delete(ctx context.Context, id int64) error
	DeleteByEndpoint(ctx context.Context, endpoint string) (bool, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.ContentCategory) error
	GetAll(ctx context.Context) ([]*entity.ContentCategory, error)
	GetByID(ctx context.Context, id int64) (*entity.ContentCategory, error)
	GetNames(ctx context.Context) ([]string, error)
	Update(ctx context.Context, category *entity.ContentCategory) error
	Delete(ctx context.Context, id int64) error
}

type NewsRepository interface {
	Create(ctx context.Context, news *entity.News) error
	GetByID(ctx context.Context, id int64) (*entity.News, error)
	GetAll(ctx context.Context) ([]*entity.News, error)
	GetTitles(ctx context.Context) ([]string, error)
	Update(ctx context.Context, news *entity.News) error
	Delete(ctx context.Context, id int64) error
}

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id int64) (*entity.Event, error)
	GetAll(ctx context.Context) ([]*entity.Event, error)
	GetTitles(ctx context.Context) ([]string, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id int64) error
}

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *entity.Announcement) error
	GetByID(ctx context.Context, id int64) (*entity.Announcement, error)
	GetAll(ctx context.Context) ([]*entity.Announcement, error)
	GetTitles(ctx context.Context) ([]string, error)
	Update(ctx context.Context, announcement *entity.Announcement) error
	Delete(ctx context.Context, id int64) error
}

type AdvertisementRepository interface {
	Create(ctx context.Context, ad *entity.Advertisement) error
	GetByID(ctx context.Context, id int64) (*entity.Advertisement, error)
	GetAll(ctx context.Context) ([]*entity.Advertisement, error)
	Update(ctx context.Context, ad *entity.Advertisement) error
	Delete(ctx context.Context, id int64) error
}

type GalleryRepository interface {
	Create(ctx context.Context, gallery *entity.Gallery) error
	GetByID(ctx context.Context, id int64) (*entity.Gallery, error)
	GetAll(ctx context.Context) ([]*entity.Gallery, error)
	GetByEvent(ctx context.Context, eventID int64) ([]*entity.Gallery, error)
	Update(ctx context.Context, gallery *entity.Gallery) error
	Delete(ctx context.Context, id int64) error
}

type PolicyRepository interface {
	Create(ctx context.Context, policy *entity.Policy) error
	GetByID(ctx context.Context, id int64) (*entity.Policy, error)
	GetAll(ctx context.Context) ([]*entity.Policy, error)
	Update(ctx context.Context, policy *entity.Policy) error
	Delete(ctx context.Context, id int64) error
}
