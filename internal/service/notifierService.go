package service

import (
	"context"
	"strings"

	"github.com/greenwoodcity/portal-backend/internal/entity"

	"github.com/sirupsen/logrus"
)

var contentTypeLabels = map[string]string{
	entity.ContentTypeNews:          "News Article",
	entity.ContentTypeEvent:         "Event",
	entity.ContentTypeAnnouncement:  "Announcement",
	entity.ContentTypeAdvertisement: "Advertisement",
	entity.ContentTypePolicy:        "Policy",
	entity.ContentTypeGallery:       "Gallery",
	entity.ContentTypeCategory:      "Category",
	"notification":                  "Notification",
}

var actionLabels = map[string]string{
	entity.ActionCreate: "New",
	entity.ActionUpdate: "Updated",
	entity.ActionDelete: "Deleted",
}

type notifierService struct {
	broadcaster Broadcaster
}

func NewNotifierService(broadcaster Broadcaster) Notifier {
	return &notifierService{broadcaster: broadcaster}
}

// BuildContentPayload maps a content lifecycle event to the payload pushed to
// subscribers. The data map lets clients deep-link to the changed entry.
func BuildContentPayload(event *entity.ContentChangeEvent) *entity.NotificationPayload {
	label, ok := contentTypeLabels[event.ContentType]
	if !ok {
		label = event.ContentType
	}

	verb, ok := actionLabels[event.Action]
	if !ok {
		verb = event.Action
	}

	body := event.Title
	if body == "" {
		body = verb + " " + strings.ToLower(label)
	}

	return &entity.NotificationPayload{
		Title: verb + " " + label,
		Body:  body,
		Data: map[string]interface{}{
			"contentType": event.ContentType,
			"action":      event.Action,
			"entryId":     event.EntryID,
		},
	}
}

func (s *notifierService) NotifyContentChange(ctx context.Context, event *entity.ContentChangeEvent) {
	// Icon, badge and data defaults are filled by the delivery client.
	payload := BuildContentPayload(event)

	result, err := s.broadcaster.Broadcast(ctx, payload, nil)
	if err != nil {
		logrus.Errorf("Failed to send content change notification: %v", err)
		return
	}

	logrus.Infof("Content change notification for %s %s: %d sent, %d failed",
		event.Action, event.ContentType, result.Sent, result.Failed)
}
