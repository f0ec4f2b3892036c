package service

import (
	"context"
	"time"

	repository "github.com/greenwoodcity/portal-backend/internal/database/postgres"
	cache "github.com/greenwoodcity/portal-backend/internal/database/redis"
	"github.com/greenwoodcity/portal-backend/internal/entity"
	"github.com/greenwoodcity/portal-backend/internal/pkg/slug"

	"github.com/sirupsen/logrus"
)

type contentService struct {
	newsRepo          repository.NewsRepository
	eventRepo         repository.EventRepository
	announcementRepo  repository.AnnouncementRepository
	advertisementRepo repository.AdvertisementRepository
	policyRepo        repository.PolicyRepository
	galleryRepo       repository.GalleryRepository
	categoryRepo      repository.CategoryRepository
	cache             *cache.ContentCache
	publisher         ChangePublisher
}

func NewContentService(
	newsRepo repository.NewsRepository,
	eventRepo repository.EventRepository,
	announcementRepo repository.AnnouncementRepository,
	advertisementRepo repository.AdvertisementRepository,
	policyRepo repository.PolicyRepository,
	galleryRepo repository.GalleryRepository,
	categoryRepo repository.CategoryRepository,
	contentCache *cache.ContentCache,
	publisher ChangePublisher,
) ContentService {
	return &contentService{
		newsRepo:          newsRepo,
		eventRepo:         eventRepo,
		announcementRepo:  announcementRepo,
		advertisementRepo: advertisementRepo,
		policyRepo:        policyRepo,
		galleryRepo:       galleryRepo,
		categoryRepo:      categoryRepo,
		cache:             contentCache,
		publisher:         publisher,
	}
}

// emitChange invalidates the list cache for the content type and hands the
// change to the publisher. Neither step can fail the mutation.
func (s *contentService) emitChange(ctx context.Context, contentType, action string, entryID int64, title string) {
	s.invalidate(contentType)
	s.publisher.PublishChange(ctx, &entity.ContentChangeEvent{
		ContentType: contentType,
		Action:      action,
		EntryID:     entryID,
		Title:       title,
	})
}

func (s *contentService) invalidate(contentType string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(contentType); err != nil {
		logrus.Warnf("Failed to invalidate %s cache: %v", contentType, err)
	}
}

// News

func (s *contentService) CreateNews(ctx context.Context, req *entity.NewsRequest) (*entity.News, error) {
	news := &entity.News{
		Title:            req.Title,
		Slug:             slug.Make(req.Title),
		ShortDescription: req.ShortDescription,
		Content:          req.Content,
		Category:         req.Category,
		PublishedAt:      time.Now(),
	}
	if err := s.newsRepo.Create(ctx, news); err != nil {
		return nil, err
	}
	s.emitChange(ctx, entity.ContentTypeNews, entity.ActionCreate, news.ID, news.Title)
	return news, nil
}

func (s *contentService) GetNews(ctx context.Context, id int64) (*entity.News, error) {
	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if news == nil {
		return nil, entity.ErrContentNotFound
	}
	return news, nil
}

func (s *contentService) ListNews(ctx context.Context) ([]*entity.News, error) {
	if s.cache != nil {
		var items []*entity.News
		if err := s.cache.GetList(entity.ContentTypeNews, &items); err == nil {
			return items, nil
		}
	}

	items, err := s.newsRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(entity.ContentTypeNews, items)
	}
	return items, nil
}

func (s *contentService) UpdateNews(ctx context.Context, id int64, req *entity.NewsRequest) (*entity.News, error) {
	news, err := s.GetNews(ctx, id)
	if err != nil {
		return nil, err
	}

	news.Title = req.Title
	news.Slug = slug.Make(req.Title)
	news.ShortDescription = req.ShortDescription
	news.Content = req.Content
	news.Category = req.Category

	if err := s.newsRepo.Update(ctx, news); err != nil {
		return nil, err
	}
	s.emitChange(ctx, entity.ContentTypeNews, entity.ActionUpdate, news.ID, news.Title)
	return news, nil
}

func (s *contentService) DeleteNews(ctx context.Context, id int64) error {
	news, err := s.GetNews(ctx, id)
	if err != nil {
		return err
	}
	if err := s.newsRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.emitChange(ctx, entity.ContentTypeNews, entity.ActionDelete, id, news.Title)
	return nil
}

// Events

func (s *contentService) CreateEvent(ctx context.Context, req *entity.EventRequest) (*entity.Event, error) {
	event := &entity.Event{
		Title:       req.Title,
		Slug:        slug.Make(req.Title),
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
		PublishedAt: time.Now(),
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	s.emitChange(ctx, entity.ContentTypeEvent, entity.ActionCreate, event.ID, event.Title)
	return event, nil
}

func (s *contentService) GetEvent(ctx context.Context, id int64) (*entity.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, entity.ErrContentNotFound
	}
	return event, nil
}

func (s *contentService) ListEvents(ctx context.Context) ([]*entity.Event, error) {
	if s.cache != nil {
		var items []*entity.Event
		if err := s.cache.GetList(entity.ContentTypeEvent, &items); err == nil {
			return items, nil
		}
	}

	items, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(entity.ContentTypeEvent, items)
	}
	return items, nil
}

func (s *contentService) UpdateEvent(ctx context.Context, id int64, req *entity.EventRequest) (*entity.Event, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Title = req.Title
	event.Slug = slug.Make(req.Title)
	event.Description = req.Description
	event.EventDate = req.EventDate
	event.Location = req.Location

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	s.emitChange(ctx, entity.ContentTypeEvent, entity.ActionUpdate, event.ID, event.Title)
	return event, nil
}

func (s *contentService) DeleteEvent(ctx context.Context, id int64) error {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.emitChange(ctx, entity.ContentTypeEvent, entity.ActionDelete, id, event.Title)
	return nil
}

// Announcements

func (s *contentService) CreateAnnouncement(ctx context.Context, req *entity.AnnouncementRequest) (*entity.Announcement, error) {
	priority := req.Priority
	if priority == "" {
		priority = entity.PriorityNormal
	}

	announcement := &entity.Announcement{
		Title:       req.Title,
		Message:     req.Message,
		Priority:    priority,
		ExpiryDate:  req.ExpiryDate,
		PublishedAt: time.Now(),
	}
	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}
	s.emitChange(ctx, entity.ContentTypeAnnouncement, entity.ActionCreate, announcement.ID, announcement.Title)
	return announcement, nil
}

func (s *contentService) GetAnnouncement(ctx context.Context, id int64) (*entity.Announcement, error) {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if announcement == nil {
		return nil, entity.ErrContentNotFound
	}
	return announcement, nil
}

func (s *contentService) ListAnnouncements(ctx context.Context) ([]*entity.Announcement, error) {
	if s.cache != nil {
		var items []*entity.Announcement
		if err := s.cache.GetList(entity.ContentTypeAnnouncement, &items); err == nil {
			return items, nil
		}
	}

	items, err := s.announcementRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(entity.ContentTypeAnnouncement, items)
	}
	return items, nil
}

func (s *contentService) UpdateAnnouncement(ctx context.Context, id int64, req *entity.AnnouncementRequest) (*entity.Announcement, error) {
	announcement, err := s.GetAnnouncement(ctx, id)
	if err != nil {
		return nil, err
	}

	announcement.Title = req.Title
	announcement.Message = req.Message
	if req.Priority != "" {
		announcement.Priority = req.Priority
	}
	announcement.ExpiryDate = req.ExpiryDate

	if err := s.announcementRepo.Update(ctx, announcement); err != nil {
		return nil, err
	}
	s.emitChange(ctx, entity.ContentTypeAnnouncement, entity.ActionUpdate, announcement.ID, announcement.Title)
	return announcement, nil
}

func (s *contentService) DeleteAnnouncement(ctx context.Context, id int64) error {
	announcement, err := s.GetAnnouncement(ctx, id)
	if err != nil {
		return err
	}
	if err := s.announcementRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.emitChange(ctx, entity.ContentTypeAnnouncement, entity.ActionDelete, id, announcement.Title)
	return nil
}

// Advertisements

func (s *contentService) CreateAdvertisement(ctx context.Context, req *entity.AdvertisementRequest) (*entity.Advertisement, error) {
	ad := &entity.Advertisement{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		BusinessName: req.BusinessName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Website:      req.Website,
		Discount:     req.Discount,
		Offer:        req.Offer,
		ValidUntil:   req.ValidUntil,
		PublishedAt:  time.Now(),
	}
	if err := s.advertisementRepo.Create(ctx, ad); err != nil {
		return nil, err
	}
	s.emitChange(ctx, entity.ContentTypeAdvertisement, entity.ActionCreate, ad.ID, ad.Title)
	return ad, nil
}

func (s *contentService) GetAdvertisement(ctx context.Context, id int64) (*entity.Advertisement, error) {
	ad, err := s.advertisementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, entity.ErrContentNotFound
	}
	return ad, nil
}

func (s *contentService) ListAdvertisements(ctx context.Context) ([]*entity.Advertisement, error) {
	if s.cache != nil {
		var items []*entity.Advertisement
		if err := s.cache.GetList(entity.ContentTypeAdvertisement, &items); err == nil {
			return items, nil
		}
	}

	items, err := s.advertisementRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(entity.ContentTypeAdvertisement, items)
	}
	return items, nil
}

func (s *contentService) UpdateAdvertisement(ctx context.Context, id int64, req *entity.AdvertisementRequest) (*entity.Advertisement, error) {
	ad, err := s.GetAdvertisement(ctx, id)
	if err != nil {
		return nil, err
	}

	ad.Title = req.Title
	ad.Description = req.Description
	ad.Category = req.Category
	ad.BusinessName = req.BusinessName
	ad.ContactPhone = req.ContactPhone
	ad.ContactEmail = req.ContactEmail
	ad.Website = req.Website
	ad.Discount = req.Discount
	ad.Offer = req.Offer
	ad.ValidUntil = req.ValidUntil

	if err := s.advertisementRepo.Update(ctx, ad); err != nil {
		return nil, err
	}
	s.emitChange(ctx, entity.ContentTypeAdvertisement, entity.ActionUpdate, ad.ID, ad.Title)
	return ad, nil
}

func (s *contentService) DeleteAdvertisement(ctx context.Context, id int64) error {
	ad, err := s.GetAdvertisement(ctx, id)
	if err != nil {
		return err
	}
	if err := s.advertisementRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.emitChange(ctx, entity.ContentTypeAdvertisement, entity.ActionDelete, id, ad.Title)
	return nil
}

// Policies

func (s *contentService) CreatePolicy(ctx context.Context, req *entity.PolicyRequest) (*entity.Policy, error) {
	policy := &entity.Policy{
		Title:         req.Title,
		Slug:          slug.Make(req.Title),
		Content:       req.Content,
		EffectiveDate: req.EffectiveDate,
		PublishedAt:   time.Now(),
	}
	if err := s.policyRepo.Create(ctx, policy); err != nil {
		return nil, err
	}
	s.emitChange(ctx, entity.ContentTypePolicy, entity.ActionCreate, policy.ID, policy.Title)
	return policy, nil
}

func (s *contentService) GetPolicy(ctx context.Context, id int64) (*entity.Policy, error) {
	policy, err := s.policyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, entity.ErrContentNotFound
	}
	return policy, nil
}

func (s *contentService) ListPolicies(ctx context.Context) ([]*entity.Policy, error) {
	if s.cache != nil {
		var items []*entity.Policy
		if err := s.cache.GetList(entity.ContentTypePolicy, &items); err == nil {
			return items, nil
		}
	}

	items, err := s.policyRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(entity.ContentTypePolicy, items)
	}
	return items, nil
}

func (s *contentService) UpdatePolicy(ctx context.Context, id int64, req *entity.PolicyRequest) (*entity.Policy, error) {
	policy, err := s.GetPolicy(ctx, id)
	if err != nil {
		return nil, err
	}

	policy.Title = req.Title
	policy.Slug = slug.Make(req.Title)
	policy.Content = req.Content
	policy.EffectiveDate = req.EffectiveDate

	if err := s.policyRepo.Update(ctx, policy); err != nil {
		return nil, err
	}
	s.emitChange(ctx, entity.ContentTypePolicy, entity.ActionUpdate, policy.ID, policy.Title)
	return policy, nil
}

func (s *contentService) DeletePolicy(ctx context.Context, id int64) error {
	policy, err := s.GetPolicy(ctx, id)
	if err != nil {
		return err
	}
	if err := s.policyRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.emitChange(ctx, entity.ContentTypePolicy, entity.ActionDelete, id, policy.Title)
	return nil
}

// Galleries

func (s *contentService) CreateGallery(ctx context.Context, req *entity.GalleryRequest) (*entity.Gallery, error) {
	if err := s.checkGalleryEvent(ctx, req.EventID); err != nil {
		return nil, err
	}

	gallery := &entity.Gallery{
		Title:       req.Title,
		Slug:        slug.Make(req.Title),
		Description: req.Description,
		EventID:     req.EventID,
		Images:      req.Images,
		PublishedAt: time.Now(),
	}
	if err := s.galleryRepo.Create(ctx, gallery); err != nil {
		return nil, err
	}
	s.emitChange(ctx, entity.ContentTypeGallery, entity.ActionCreate, gallery.ID, gallery.Title)
	return gallery, nil
}

// checkGalleryEvent rejects a gallery pointing at an event that does not
// exist. A zero id means the gallery is standalone.
func (s *contentService) checkGalleryEvent(ctx context.Context, eventID int64) error {
	if eventID <= 0 {
		return nil
	}
	_, err := s.GetEvent(ctx, eventID)
	return err
}

func (s *contentService) GetGallery(ctx context.Context, id int64) (*entity.Gallery, error) {
	gallery, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if gallery == nil {
		return nil, entity.ErrContentNotFound
	}
	return gallery, nil
}

func (s *contentService) ListGalleries(ctx context.Context) ([]*entity.Gallery, error) {
	if s.cache != nil {
		var items []*entity.Gallery
		if err := s.cache.GetList(entity.ContentTypeGallery, &items); err == nil {
			return items, nil
		}
	}

	items, err := s.galleryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(entity.ContentTypeGallery, items)
	}
	return items, nil
}

func (s *contentService) ListEventGalleries(ctx context.Context, eventID int64) ([]*entity.Gallery, error) {
	return s.galleryRepo.GetByEvent(ctx, eventID)
}

func (s *contentService) UpdateGallery(ctx context.Context, id int64, req *entity.GalleryRequest) (*entity.Gallery, error) {
	gallery, err := s.GetGallery(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkGalleryEvent(ctx, req.EventID); err != nil {
		return nil, err
	}

	gallery.Title = req.Title
	gallery.Slug = slug.Make(req.Title)
	gallery.Description = req.Description
	gallery.EventID = req.EventID
	gallery.Images = req.Images

	if err := s.galleryRepo.Update(ctx, gallery); err != nil {
		return nil, err
	}
	s.emitChange(ctx, entity.ContentTypeGallery, entity.ActionUpdate, gallery.ID, gallery.Title)
	return gallery, nil
}

func (s *contentService) DeleteGallery(ctx context.Context, id int64) error {
	gallery, err := s.GetGallery(ctx, id)
	if err != nil {
		return err
	}
	if err := s.galleryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.emitChange(ctx, entity.ContentTypeGallery, entity.ActionDelete, id, gallery.Title)
	return nil
}

// Categories

func (s *contentService) CreateCategory(ctx context.Context, req *entity.CategoryRequest) (*entity.ContentCategory, error) {
	category := &entity.ContentCategory{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		Color:       req.Color,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	s.emitChange(ctx, entity.ContentTypeCategory, entity.ActionCreate, category.ID, category.Name)
	return category, nil
}

func (s *contentService) GetCategory(ctx context.Context, id int64) (*entity.ContentCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, entity.ErrContentNotFound
	}
	return category, nil
}

func (s *contentService) ListCategories(ctx context.Context) ([]*entity.ContentCategory, error) {
	if s.cache != nil {
		var items []*entity.ContentCategory
		if err := s.cache.GetList(entity.ContentTypeCategory, &items); err == nil {
			return items, nil
		}
	}

	items, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(entity.ContentTypeCategory, items)
	}
	return items, nil
}

func (s *contentService) UpdateCategory(ctx context.Context, id int64, req *entity.CategoryRequest) (*entity.ContentCategory, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Slug = slug.Make(req.Name)
	category.Description = req.Description
	category.Color = req.Color

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	s.emitChange(ctx, entity.ContentTypeCategory, entity.ActionUpdate, category.ID, category.Name)
	return category, nil
}

func (s *contentService) DeleteCategory(ctx context.Context, id int64) error {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.emitChange(ctx, entity.ContentTypeCategory, entity.ActionDelete, id, category.Name)
	return nil
}
