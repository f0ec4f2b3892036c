package worker

import (
	"context"
	"encoding/json"

	"github.com/greenwoodcity/portal-backend/internal/entity"
	"github.com/greenwoodcity/portal-backend/internal/service"
	"github.com/greenwoodcity/portal-backend/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
)

// NotifyWorker consumes content change events from the queue and turns each
// one into a push broadcast.
type NotifyWorker struct {
	queue    rabbitmq.Queue
	notifier service.Notifier
}

func NewNotifyWorker(queue rabbitmq.Queue, notifier service.Notifier) *NotifyWorker {
	return &NotifyWorker{
		queue:    queue,
		notifier: notifier,
	}
}

func (w *NotifyWorker) Start(ctx context.Context) {
	logrus.Info("Notification worker started")

	err := w.queue.Consume(ctx, func(message []byte) error {
		var event entity.ContentChangeEvent
		if err := json.Unmarshal(message, &event); err != nil {
			logrus.Errorf("Failed to decode content change event: %v", err)
			// Malformed messages are not retryable.
			return nil
		}

		w.notifier.NotifyContentChange(ctx, &event)
		return nil
	})

	if err != nil && ctx.Err() == nil {
		logrus.Errorf("Notification worker stopped with error: %v", err)
		return
	}

	logrus.Info("Notification worker stopped")
}
