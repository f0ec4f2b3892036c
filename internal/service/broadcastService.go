package service

import (
	"context"
	"fmt"
	"sync"

	repository "github.com/greenwoodcity/portal-backend/internal/database/postgres"
	"github.com/greenwoodcity/portal-backend/internal/entity"
	"github.com/greenwoodcity/portal-backend/internal/push"

	"github.com/sirupsen/logrus"
)

type broadcastService struct {
	repo   repository.SubscriptionRepository
	sender PushSender
}

func NewBroadcastService(repo repository.SubscriptionRepository, sender PushSender) Broadcaster {
	return &broadcastService{
		repo:   repo,
		sender: sender,
	}
}

// Broadcast loads every matching subscription and delivers the payload to all
// of them concurrently. One delivery failing never stops the others; the only
// error path is the subscription set itself being unloadable. Subscriptions
// whose endpoint is reported gone are pruned best-effort.
func (s *broadcastService) Broadcast(ctx context.Context, payload *entity.NotificationPayload, filter *entity.BroadcastFilter) (*entity.BroadcastResult, error) {
	subs, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	if len(subs) == 0 {
		logrus.Info("No push subscriptions found")
		return &entity.BroadcastResult{}, nil
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result entity.BroadcastResult
	)

	for _, sub := range subs {
		if sub.Endpoint == "" || sub.Keys.Incomplete() {
			logrus.Warnf("Skipping malformed subscription %d", sub.ID)
			continue
		}

		wg.Add(1)
		go func(sub *entity.PushSubscription) {
			defer wg.Done()

			err := s.sender.Send(ctx, sub, payload)
			if err == nil {
				mu.Lock()
				result.Sent++
				mu.Unlock()
				return
			}

			mu.Lock()
			result.Failed++
			mu.Unlock()
			logrus.Errorf("Failed to send push to subscription %d: %v", sub.ID, err)

			if push.IsPermanent(err) {
				s.prune(ctx, sub)
			}
		}(sub)
	}

	wg.Wait()

	logrus.Infof("Push broadcast completed: %d sent, %d failed", result.Sent, result.Failed)
	return &result, nil
}

// prune removes a subscription whose endpoint is gone. A failed delete only
// logs, the broadcast result does not depend on it.
func (s *broadcastService) prune(ctx context.Context, sub *entity.PushSubscription) {
	if err := s.repo.Delete(ctx, sub.ID); err != nil {
		logrus.Errorf("Failed to delete invalid subscription %d: %v", sub.ID, err)
		return
	}
	logrus.Infof("Removed invalid subscription %d", sub.ID)
}
