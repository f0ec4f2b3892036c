// Package seed populates the portal with starter content on first boot.
// Seeding is idempotent: desired rows are diffed against existing ones by
// their natural key (lowercased name or title) and only the missing rows are
// inserted. Per-row failures are logged and skipped.
package seed

import (
	"context"
	"strings"
	"time"

	repository "github.com/greenwoodcity/portal-backend/internal/database/postgres"
	"github.com/greenwoodcity/portal-backend/internal/entity"
	"github.com/greenwoodcity/portal-backend/internal/pkg/slug"

	"github.com/sirupsen/logrus"
)

type Seeder struct {
	categoryRepo     repository.CategoryRepository
	newsRepo         repository.NewsRepository
	eventRepo        repository.EventRepository
	announcementRepo repository.AnnouncementRepository
}

func NewSeeder(
	categoryRepo repository.CategoryRepository,
	newsRepo repository.NewsRepository,
	eventRepo repository.EventRepository,
	announcementRepo repository.AnnouncementRepository,
) *Seeder {
	return &Seeder{
		categoryRepo:     categoryRepo,
		newsRepo:         newsRepo,
		eventRepo:        eventRepo,
		announcementRepo: announcementRepo,
	}
}

// Run executes every seeder. A failing seeder logs and the rest still run.
func (s *Seeder) Run(ctx context.Context) {
	s.seedCategories(ctx)
	s.seedNews(ctx)
	s.seedEvents(ctx)
	s.seedAnnouncements(ctx)
}

// existingKeys lowercases the natural keys already present so the diff is
// case-insensitive.
func existingKeys(values []string) map[string]struct{} {
	keys := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		keys[strings.ToLower(v)] = struct{}{}
	}
	return keys
}

func (s *Seeder) seedCategories(ctx context.Context) {
	names, err := s.categoryRepo.GetNames(ctx)
	if err != nil {
		logrus.Errorf("Failed to load existing categories, skipping seed: %v", err)
		return
	}
	existing := existingKeys(names)

	created := 0
	for _, c := range seedCategories {
		if _, ok := existing[strings.ToLower(c.Name)]; ok {
			continue
		}
		category := &entity.ContentCategory{
			Name:        c.Name,
			Slug:        slug.Make(c.Name),
			Description: c.Description,
			Color:       c.Color,
		}
		if err := s.categoryRepo.Create(ctx, category); err != nil {
			logrus.Errorf("Failed to seed category %q: %v", c.Name, err)
			continue
		}
		created++
	}

	if created > 0 {
		logrus.Infof("Seeded %d content categories", created)
	}
}

func (s *Seeder) seedNews(ctx context.Context) {
	titles, err := s.newsRepo.GetTitles(ctx)
	if err != nil {
		logrus.Errorf("Failed to load existing news, skipping seed: %v", err)
		return
	}
	existing := existingKeys(titles)

	created := 0
	for _, n := range seedNews {
		if _, ok := existing[strings.ToLower(n.Title)]; ok {
			continue
		}
		news := &entity.News{
			Title:            n.Title,
			Slug:             slug.Make(n.Title),
			ShortDescription: n.ShortDescription,
			Content:          n.Content,
			Category:         n.Category,
			PublishedAt:      time.Now().Add(-n.Age),
		}
		if err := s.newsRepo.Create(ctx, news); err != nil {
			logrus.Errorf("Failed to seed news %q: %v", n.Title, err)
			continue
		}
		created++
	}

	if created > 0 {
		logrus.Infof("Seeded %d news articles", created)
	}
}

func (s *Seeder) seedEvents(ctx context.Context) {
	titles, err := s.eventRepo.GetTitles(ctx)
	if err != nil {
		logrus.Errorf("Failed to load existing events, skipping seed: %v", err)
		return
	}
	existing := existingKeys(titles)

	created := 0
	for _, e := range seedEvents {
		if _, ok := existing[strings.ToLower(e.Title)]; ok {
			continue
		}
		event := &entity.Event{
			Title:       e.Title,
			Slug:        slug.Make(e.Title),
			Description: e.Description,
			EventDate:   time.Now().Add(e.In),
			Location:    e.Location,
			PublishedAt: time.Now(),
		}
		if err := s.eventRepo.Create(ctx, event); err != nil {
			logrus.Errorf("Failed to seed event %q: %v", e.Title, err)
			continue
		}
		created++
	}

	if created > 0 {
		logrus.Infof("Seeded %d events", created)
	}
}

func (s *Seeder) seedAnnouncements(ctx context.Context) {
	titles, err := s.announcementRepo.GetTitles(ctx)
	if err != nil {
		logrus.Errorf("Failed to load existing announcements, skipping seed: %v", err)
		return
	}
	existing := existingKeys(titles)

	created := 0
	for _, a := range seedAnnouncements {
		if _, ok := existing[strings.ToLower(a.Title)]; ok {
			continue
		}
		announcement := &entity.Announcement{
			Title:       a.Title,
			Message:     a.Message,
			Priority:    a.Priority,
			ExpiryDate:  time.Now().Add(a.ExpiresIn),
			PublishedAt: time.Now(),
		}
		if err := s.announcementRepo.Create(ctx, announcement); err != nil {
			logrus.Errorf("Failed to seed announcement %q: %v", a.Title, err)
			continue
		}
		created++
	}

	if created > 0 {
		logrus.Infof("Seeded %d announcements", created)
	}
}
