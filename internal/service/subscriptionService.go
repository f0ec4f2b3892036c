package service

import (
	"context"

	repository "github.com/greenwoodcity/portal-backend/internal/database/postgres"
	"github.com/greenwoodcity/portal-backend/internal/entity"

	"github.com/sirupsen/logrus"
)

type subscriptionService struct {
	repo   repository.SubscriptionRepository
	sender PushSender
}

func NewSubscriptionService(repo repository.SubscriptionRepository, sender PushSender) SubscriptionService {
	return &subscriptionService{
		repo:   repo,
		sender: sender,
	}
}

// Subscribe registers a push endpoint. Re-registering an existing endpoint
// replaces its keys and metadata, there is never more than one row per
// endpoint.
func (s *subscriptionService) Subscribe(ctx context.Context, req *entity.SubscribeRequest) (*entity.PushSubscription, error) {
	if req.Endpoint == "" || req.Keys == nil || req.Keys.Incomplete() {
		return nil, entity.ErrInvalidSubscription
	}

	sub := &entity.PushSubscription{
		Endpoint:  req.Endpoint,
		Keys:      *req.Keys,
		Device:    req.Device,
		UserAgent: req.UserAgent,
	}

	stored, err := s.repo.Upsert(ctx, sub)
	if err != nil {
		return nil, err
	}

	logrus.Infof("Push subscription stored: %s", truncateEndpoint(stored.Endpoint))
	return stored, nil
}

// Unsubscribe deletes by endpoint when one is given, otherwise by id.
func (s *subscriptionService) Unsubscribe(ctx context.Context, endpoint string, id int64) error {
	if endpoint != "" {
		found, err := s.repo.DeleteByEndpoint(ctx, endpoint)
		if err != nil {
			return err
		}
		if !found {
			return entity.ErrSubscriptionNotFound
		}
		logrus.Infof("Push subscription deleted by endpoint: %s", truncateEndpoint(endpoint))
		return nil
	}

	if id > 0 {
		if err := s.repo.Delete(ctx, id); err != nil {
			return err
		}
		logrus.Infof("Push subscription deleted: %d", id)
		return nil
	}

	return entity.ErrMissingIdentifier
}

func (s *subscriptionService) PublicKey() (string, error) {
	return s.sender.PublicKey()
}

// Endpoints are long opaque URLs, log only a prefix.
func truncateEndpoint(endpoint string) string {
	if len(endpoint) > 50 {
		return endpoint[:50] + "..."
	}
	return endpoint
}
