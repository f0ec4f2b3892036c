package service

import (
	"context"
	"testing"

	"github.com/greenwoodcity/portal-backend/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []*entity.ContentChangeEvent
}

func (p *recordingPublisher) PublishChange(ctx context.Context, event *entity.ContentChangeEvent) {
	p.events = append(p.events, event)
}

type memNewsRepo struct {
	news   map[int64]*entity.News
	nextID int64
}

func newMemNewsRepo() *memNewsRepo {
	return &memNewsRepo{news: make(map[int64]*entity.News)}
}

func (r *memNewsRepo) Create(ctx context.Context, news *entity.News) error {
	r.nextID++
	news.ID = r.nextID
	r.news[news.ID] = news
	return nil
}

func (r *memNewsRepo) GetByID(ctx context.Context, id int64) (*entity.News, error) {
	news, ok := r.news[id]
	if !ok {
		return nil, entity.ErrContentNotFound
	}
	return news, nil
}

func (r *memNewsRepo) GetAll(ctx context.Context) ([]*entity.News, error) {
	out := make([]*entity.News, 0, len(r.news))
	for _, n := range r.news {
		out = append(out, n)
	}
	return out, nil
}

func (r *memNewsRepo) GetTitles(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (r *memNewsRepo) Update(ctx context.Context, news *entity.News) error {
	if _, ok := r.news[news.ID]; !ok {
		return entity.ErrContentNotFound
	}
	r.news[news.ID] = news
	return nil
}

func (r *memNewsRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.news[id]; !ok {
		return entity.ErrContentNotFound
	}
	delete(r.news, id)
	return nil
}

type memAnnouncementRepo struct {
	announcements map[int64]*entity.Announcement
	nextID        int64
}

func newMemAnnouncementRepo() *memAnnouncementRepo {
	return &memAnnouncementRepo{announcements: make(map[int64]*entity.Announcement)}
}

func (r *memAnnouncementRepo) Create(ctx context.Context, announcement *entity.Announcement) error {
	r.nextID++
	announcement.ID = r.nextID
	r.announcements[announcement.ID] = announcement
	return nil
}

func (r *memAnnouncementRepo) GetByID(ctx context.Context, id int64) (*entity.Announcement, error) {
	announcement, ok := r.announcements[id]
	if !ok {
		return nil, entity.ErrContentNotFound
	}
	return announcement, nil
}

func (r *memAnnouncementRepo) GetAll(ctx context.Context) ([]*entity.Announcement, error) {
	return nil, nil
}

func (r *memAnnouncementRepo) GetTitles(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (r *memAnnouncementRepo) Update(ctx context.Context, announcement *entity.Announcement) error {
	return nil
}

func (r *memAnnouncementRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

type memCategoryRepo struct {
	categories map[int64]*entity.ContentCategory
	nextID     int64
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[int64]*entity.ContentCategory)}
}

func (r *memCategoryRepo) Create(ctx context.Context, category *entity.ContentCategory) error {
	r.nextID++
	category.ID = r.nextID
	r.categories[category.ID] = category
	return nil
}

func (r *memCategoryRepo) GetAll(ctx context.Context) ([]*entity.ContentCategory, error) {
	return nil, nil
}

func (r *memCategoryRepo) GetByID(ctx context.Context, id int64) (*entity.ContentCategory, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, entity.ErrContentNotFound
	}
	return category, nil
}

func (r *memCategoryRepo) GetNames(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (r *memCategoryRepo) Update(ctx context.Context, category *entity.ContentCategory) error {
	if _, ok := r.categories[category.ID]; !ok {
		return entity.ErrContentNotFound
	}
	r.categories[category.ID] = category
	return nil
}

func (r *memCategoryRepo) Delete(ctx context.Context, id int64) error {
	delete(r.categories, id)
	return nil
}

type memGalleryRepo struct {
	galleries map[int64]*entity.Gallery
	nextID    int64
}

func newMemGalleryRepo() *memGalleryRepo {
	return &memGalleryRepo{galleries: make(map[int64]*entity.Gallery)}
}

func (r *memGalleryRepo) Create(ctx context.Context, gallery *entity.Gallery) error {
	r.nextID++
	gallery.ID = r.nextID
	r.galleries[gallery.ID] = gallery
	return nil
}

func (r *memGalleryRepo) GetByID(ctx context.Context, id int64) (*entity.Gallery, error) {
	gallery, ok := r.galleries[id]
	if !ok {
		return nil, entity.ErrContentNotFound
	}
	return gallery, nil
}

func (r *memGalleryRepo) GetAll(ctx context.Context) ([]*entity.Gallery, error) {
	out := make([]*entity.Gallery, 0, len(r.galleries))
	for _, g := range r.galleries {
		out = append(out, g)
	}
	return out, nil
}

func (r *memGalleryRepo) GetByEvent(ctx context.Context, eventID int64) ([]*entity.Gallery, error) {
	var out []*entity.Gallery
	for _, g := range r.galleries {
		if g.EventID == eventID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *memGalleryRepo) Update(ctx context.Context, gallery *entity.Gallery) error {
	if _, ok := r.galleries[gallery.ID]; !ok {
		return entity.ErrContentNotFound
	}
	r.galleries[gallery.ID] = gallery
	return nil
}

func (r *memGalleryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.galleries[id]; !ok {
		return entity.ErrContentNotFound
	}
	delete(r.galleries, id)
	return nil
}

type memEventRepo struct {
	events map[int64]*entity.Event
	nextID int64
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: make(map[int64]*entity.Event)}
}

func (r *memEventRepo) Create(ctx context.Context, event *entity.Event) error {
	r.nextID++
	event.ID = r.nextID
	r.events[event.ID] = event
	return nil
}

func (r *memEventRepo) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, entity.ErrContentNotFound
	}
	return event, nil
}

func (r *memEventRepo) GetAll(ctx context.Context) ([]*entity.Event, error) {
	return nil, nil
}

func (r *memEventRepo) GetTitles(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (r *memEventRepo) Update(ctx context.Context, event *entity.Event) error {
	return nil
}

func (r *memEventRepo) Delete(ctx context.Context, id int64) error {
	delete(r.events, id)
	return nil
}

func newTestContentService(newsRepo *memNewsRepo, announcementRepo *memAnnouncementRepo, publisher *recordingPublisher) ContentService {
	return NewContentService(newsRepo, nil, announcementRepo, nil, nil, nil, nil, nil, publisher)
}

func TestCreateNewsEmitsChangeEvent(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := newTestContentService(newMemNewsRepo(), newMemAnnouncementRepo(), publisher)

	news, err := svc.CreateNews(context.Background(), &entity.NewsRequest{Title: "Park Opens"})
	require.NoError(t, err)
	assert.Equal(t, "park-opens", news.Slug)
	assert.False(t, news.PublishedAt.IsZero())

	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.Equal(t, entity.ContentTypeNews, event.ContentType)
	assert.Equal(t, entity.ActionCreate, event.Action)
	assert.Equal(t, news.ID, event.EntryID)
	assert.Equal(t, "Park Opens", event.Title)
}

func TestUpdateNewsMissingEntry(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := newTestContentService(newMemNewsRepo(), newMemAnnouncementRepo(), publisher)

	_, err := svc.UpdateNews(context.Background(), 42, &entity.NewsRequest{Title: "x"})
	assert.ErrorIs(t, err, entity.ErrContentNotFound)
	assert.Empty(t, publisher.events, "failed mutations must not notify")
}

func TestDeleteNewsNotifiesWithPriorTitle(t *testing.T) {
	publisher := &recordingPublisher{}
	newsRepo := newMemNewsRepo()
	svc := newTestContentService(newsRepo, newMemAnnouncementRepo(), publisher)

	news, err := svc.CreateNews(context.Background(), &entity.NewsRequest{Title: "Park Opens"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteNews(context.Background(), news.ID))

	require.Len(t, publisher.events, 2)
	deleted := publisher.events[1]
	assert.Equal(t, entity.ActionDelete, deleted.Action)
	assert.Equal(t, "Park Opens", deleted.Title)
}

func TestUpdateCategory(t *testing.T) {
	publisher := &recordingPublisher{}
	categoryRepo := newMemCategoryRepo()
	svc := NewContentService(nil, nil, nil, nil, nil, nil, categoryRepo, nil, publisher)

	category, err := svc.CreateCategory(context.Background(), &entity.CategoryRequest{Name: "Parks"})
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(context.Background(), category.ID, &entity.CategoryRequest{
		Name:  "Parks & Recreation",
		Color: "#14B8A6",
	})
	require.NoError(t, err)
	assert.Equal(t, "parks-recreation", updated.Slug)
	assert.Equal(t, "#14B8A6", updated.Color)

	require.Len(t, publisher.events, 2)
	assert.Equal(t, entity.ActionUpdate, publisher.events[1].Action)
	assert.Equal(t, entity.ContentTypeCategory, publisher.events[1].ContentType)

	_, err = svc.UpdateCategory(context.Background(), 99, &entity.CategoryRequest{Name: "x"})
	assert.ErrorIs(t, err, entity.ErrContentNotFound)
}

func TestGalleryLifecycle(t *testing.T) {
	publisher := &recordingPublisher{}
	galleryRepo := newMemGalleryRepo()
	eventRepo := newMemEventRepo()
	svc := NewContentService(nil, eventRepo, nil, nil, nil, galleryRepo, nil, nil, publisher)

	event := &entity.Event{Title: "Summer Festival"}
	require.NoError(t, eventRepo.Create(context.Background(), event))

	gallery, err := svc.CreateGallery(context.Background(), &entity.GalleryRequest{
		Title:   "Summer Festival 2026",
		EventID: event.ID,
		Images:  []string{"/uploads/festival-1.jpg", "/uploads/festival-2.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "summer-festival-2026", gallery.Slug)
	assert.False(t, gallery.PublishedAt.IsZero())

	linked, err := svc.ListEventGalleries(context.Background(), event.ID)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, gallery.ID, linked[0].ID)

	updated, err := svc.UpdateGallery(context.Background(), gallery.ID, &entity.GalleryRequest{
		Title:  "Summer Festival Highlights",
		Images: []string{"/uploads/festival-1.jpg"},
	})
	require.NoError(t, err)
	assert.Zero(t, updated.EventID, "clearing the event id detaches the gallery")
	assert.Len(t, updated.Images, 1)

	require.NoError(t, svc.DeleteGallery(context.Background(), gallery.ID))
	_, err = svc.GetGallery(context.Background(), gallery.ID)
	assert.ErrorIs(t, err, entity.ErrContentNotFound)

	require.Len(t, publisher.events, 3)
	for _, ev := range publisher.events {
		assert.Equal(t, entity.ContentTypeGallery, ev.ContentType)
	}
	assert.Equal(t, entity.ActionCreate, publisher.events[0].Action)
	assert.Equal(t, entity.ActionUpdate, publisher.events[1].Action)
	assert.Equal(t, entity.ActionDelete, publisher.events[2].Action)
}

func TestCreateGalleryRejectsUnknownEvent(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := NewContentService(nil, newMemEventRepo(), nil, nil, nil, newMemGalleryRepo(), nil, nil, publisher)

	_, err := svc.CreateGallery(context.Background(), &entity.GalleryRequest{
		Title:   "Orphaned",
		EventID: 77,
	})
	assert.ErrorIs(t, err, entity.ErrContentNotFound)
	assert.Empty(t, publisher.events)
}

func TestCreateAnnouncementDefaultsPriority(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := newTestContentService(newMemNewsRepo(), newMemAnnouncementRepo(), publisher)

	announcement, err := svc.CreateAnnouncement(context.Background(), &entity.AnnouncementRequest{
		Title:   "Water Outage",
		Message: "Downtown area affected",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PriorityNormal, announcement.Priority)

	urgent, err := svc.CreateAnnouncement(context.Background(), &entity.AnnouncementRequest{
		Title:    "Storm Warning",
		Message:  "Seek shelter",
		Priority: entity.PriorityUrgent,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PriorityUrgent, urgent.Priority)
}
