package entity

import (
	"time"
)

// Content type names as used in change events and notification payloads.
const (
	ContentTypeNews          = "news"
	ContentTypeEvent         = "event"
	ContentTypeAnnouncement  = "announcement"
	ContentTypeAdvertisement = "advertisement"
	ContentTypePolicy        = "policy"
	ContentTypeCategory      = "category"
	ContentTypeGallery       = "gallery"
)

type ContentCategory struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

type News struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	ShortDescription string    `json:"short_description"`
	Content          string    `json:"content"`
	Category         string    `json:"category"`
	PublishedAt      time.Time `json:"published_at"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	Location    string    `json:"location"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Announcement struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Priority    string    `json:"priority"`
	ExpiryDate  time.Time `json:"expiry_date"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	PriorityNormal = "normal"
	PriorityUrgent = "urgent"
)

type Advertisement struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	BusinessName string    `json:"business_name"`
	ContactPhone string    `json:"contact_phone"`
	ContactEmail string    `json:"contact_email"`
	Website      string    `json:"website"`
	Discount     string    `json:"discount"`
	Offer        string    `json:"offer"`
	ValidUntil   time.Time `json:"valid_until"`
	PublishedAt  time.Time `json:"published_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Policy struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Content       string    `json:"content"`
	EffectiveDate time.Time `json:"effective_date"`
	PublishedAt   time.Time `json:"published_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Gallery groups uploaded media, optionally linked to an event. EventID is
// zero for standalone galleries.
type Gallery struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	EventID     int64     `json:"event_id,omitempty"`
	Images      []string  `json:"images"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type NewsRequest struct {
	Title            string `json:"title" binding:"required"`
	ShortDescription string `json:"short_description"`
	Content          string `json:"content"`
	Category         string `json:"category"`
}

type EventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date" binding:"required"`
	Location    string    `json:"location"`
}

type AnnouncementRequest struct {
	Title      string    `json:"title" binding:"required"`
	Message    string    `json:"message" binding:"required"`
	Priority   string    `json:"priority"`
	ExpiryDate time.Time `json:"expiry_date"`
}

type AdvertisementRequest struct {
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	BusinessName string    `json:"business_name"`
	ContactPhone string    `json:"contact_phone"`
	ContactEmail string    `json:"contact_email"`
	Website      string    `json:"website"`
	Discount     string    `json:"discount"`
	Offer        string    `json:"offer"`
	ValidUntil   time.Time `json:"valid_until"`
}

type PolicyRequest struct {
	Title         string    `json:"title" binding:"required"`
	Content       string    `json:"content"`
	EffectiveDate time.Time `json:"effective_date"`
}

type GalleryRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	EventID     int64    `json:"event_id"`
	Images      []string `json:"images"`
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type Media struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}
