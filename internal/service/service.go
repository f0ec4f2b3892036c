package service

import (
	"context"

	"github.com/greenwoodcity/portal-backend/internal/entity"
)

// PushSender delivers one payload to one subscription. Implemented by
// push.Client.
type PushSender interface {
	Send(ctx context.Context, sub *entity.PushSubscription, payload *entity.NotificationPayload) error
	PublicKey() (string, error)
}

type SubscriptionService interface {
	Subscribe(ctx context.Context, req *entity.SubscribeRequest) (*entity.PushSubscription, error)
	Unsubscribe(ctx context.Context, endpoint string, id int64) error
	PublicKey() (string, error)
}

// Broadcaster fans one payload out to every matching subscription.
type Broadcaster interface {
	Broadcast(ctx context.Context, payload *entity.NotificationPayload, filter *entity.BroadcastFilter) (*entity.BroadcastResult, error)
}

// Notifier turns a content lifecycle event into a push broadcast. It never
// returns an error: delivery problems must not reach the content mutation
// that triggered them.
type Notifier interface {
	NotifyContentChange(ctx context.Context, event *entity.ContentChangeEvent)
}

// ChangePublisher hands a content change to whatever drives notifications,
// either the event bus or the notifier directly.
type ChangePublisher interface {
	PublishChange(ctx context.Context, event *entity.ContentChangeEvent)
}

type ContentService interface {
	CreateNews(ctx context.Context, req *entity.NewsRequest) (*entity.News, error)
	GetNews(ctx context.Context, id int64) (*entity.News, error)
	ListNews(ctx context.Context) ([]*entity.News, error)
	UpdateNews(ctx context.Context, id int64, req *entity.NewsRequest) (*entity.News, error)
	DeleteNews(ctx context.Context, id int64) error

	CreateEvent(ctx context.Context, req *entity.EventRequest) (*entity.Event, error)
	GetEvent(ctx context.Context, id int64) (*entity.Event, error)
	ListEvents(ctx context.Context) ([]*entity.Event, error)
	UpdateEvent(ctx context.Context, id int64, req *entity.EventRequest) (*entity.Event, error)
	DeleteEvent(ctx context.Context, id int64) error

	CreateAnnouncement(ctx context.Context, req *entity.AnnouncementRequest) (*entity.Announcement, error)
	GetAnnouncement(ctx context.Context, id int64) (*entity.Announcement, error)
	ListAnnouncements(ctx context.Context) ([]*entity.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id int64, req *entity.AnnouncementRequest) (*entity.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id int64) error

	CreateAdvertisement(ctx context.Context, req *entity.AdvertisementRequest) (*entity.Advertisement, error)
	GetAdvertisement(ctx context.Context, id int64) (*entity.Advertisement, error)
	ListAdvertisements(ctx context.Context) ([]*entity.Advertisement, error)
	UpdateAdvertisement(ctx context.Context, id int64, req *entity.AdvertisementRequest) (*entity.Advertisement, error)
	DeleteAdvertisement(ctx context.Context, id int64) error

	CreatePolicy(ctx context.Context, req *entity.PolicyRequest) (*entity.Policy, error)
	GetPolicy(ctx context.Context, id int64) (*entity.Policy, error)
	ListPolicies(ctx context.Context) ([]*entity.Policy, error)
	UpdatePolicy(ctx context.Context, id int64, req *entity.PolicyRequest) (*entity.Policy, error)
	DeletePolicy(ctx context.Context, id int64) error

	CreateGallery(ctx context.Context, req *entity.GalleryRequest) (*entity.Gallery, error)
	GetGallery(ctx context.Context, id int64) (*entity.Gallery, error)
	ListGalleries(ctx context.Context) ([]*entity.Gallery, error)
	ListEventGalleries(ctx context.Context, eventID int64) ([]*entity.Gallery, error)
	UpdateGallery(ctx context.Context, id int64, req *entity.GalleryRequest) (*entity.Gallery, error)
	DeleteGallery(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, req *entity.CategoryRequest) (*entity.ContentCategory, error)
	GetCategory(ctx context.Context, id int64) (*entity.ContentCategory, error)
	ListCategories(ctx context.Context) ([]*entity.ContentCategory, error)
	UpdateCategory(ctx context.Context, id int64, req *entity.CategoryRequest) (*entity.ContentCategory, error)
	DeleteCategory(ctx context.Context, id int64) error
}
