package service

import (
	"context"

	"github.com/greenwoodcity/portal-backend/internal/entity"
	"github.com/greenwoodcity/portal-backend/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
)

// queuePublisher puts content changes on the event bus; the notify worker
// consumes them and drives the broadcast.
type queuePublisher struct {
	queue rabbitmq.Queue
}

func NewQueuePublisher(queue rabbitmq.Queue) ChangePublisher {
	return &queuePublisher{queue: queue}
}

func (p *queuePublisher) PublishChange(ctx context.Context, event *entity.ContentChangeEvent) {
	if err := p.queue.Publish(ctx, event); err != nil {
		logrus.Errorf("Failed to publish content change event: %v", err)
	}
}

// directPublisher is used when no queue is configured: the notifier runs in
// the background so the content mutation does not wait on the fan-out.
type directPublisher struct {
	notifier Notifier
}

func NewDirectPublisher(notifier Notifier) ChangePublisher {
	return &directPublisher{notifier: notifier}
}

func (p *directPublisher) PublishChange(ctx context.Context, event *entity.ContentChangeEvent) {
	go p.notifier.NotifyContentChange(context.Background(), event)
}
