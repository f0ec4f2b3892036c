package service

import (
	"context"
	"testing"

	"github.com/greenwoodcity/portal-backend/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeValidation(t *testing.T) {
	svc := NewSubscriptionService(&fakeSubscriptionRepo{}, &fakeSender{})

	tests := []struct {
		name string
		req  *entity.SubscribeRequest
	}{
		{
			name: "missing endpoint",
			req:  &entity.SubscribeRequest{Keys: &entity.SubscriptionKeys{P256dh: "p", Auth: "a"}},
		},
		{
			name: "missing keys",
			req:  &entity.SubscribeRequest{Endpoint: "https://push.example.com/x"},
		},
		{
			name: "empty keys",
			req:  &entity.SubscribeRequest{Endpoint: "https://push.example.com/x", Keys: &entity.SubscriptionKeys{}},
		},
		{
			name: "p256dh without auth",
			req:  &entity.SubscribeRequest{Endpoint: "https://push.example.com/x", Keys: &entity.SubscriptionKeys{P256dh: "p"}},
		},
		{
			name: "auth without p256dh",
			req:  &entity.SubscribeRequest{Endpoint: "https://push.example.com/x", Keys: &entity.SubscriptionKeys{Auth: "a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Subscribe(context.Background(), tt.req)
			assert.ErrorIs(t, err, entity.ErrInvalidSubscription)
		})
	}
}

func TestSubscribeUpsertsByEndpoint(t *testing.T) {
	repo := &fakeSubscriptionRepo{}
	svc := NewSubscriptionService(repo, &fakeSender{})

	first, err := svc.Subscribe(context.Background(), &entity.SubscribeRequest{
		Endpoint: "https://push.example.com/x",
		Keys:     &entity.SubscriptionKeys{P256dh: "old-p256dh", Auth: "old-auth"},
	})
	require.NoError(t, err)

	second, err := svc.Subscribe(context.Background(), &entity.SubscribeRequest{
		Endpoint: "https://push.example.com/x",
		Keys:     &entity.SubscriptionKeys{P256dh: "new-p256dh", Auth: "new-auth"},
		Device:   "mobile",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "re-subscribing the same endpoint must not create a new row")
	assert.Equal(t, "new-p256dh", second.Keys.P256dh)
	assert.Equal(t, "mobile", second.Device)

	all, err := repo.GetAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUnsubscribeByEndpoint(t *testing.T) {
	repo := &fakeSubscriptionRepo{subs: []*entity.PushSubscription{
		testSubscription(1, "https://push.example.com/x"),
	}}
	svc := NewSubscriptionService(repo, &fakeSender{})

	err := svc.Unsubscribe(context.Background(), "https://push.example.com/x", 0)
	require.NoError(t, err)

	all, err := repo.GetAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUnsubscribeUnknownEndpoint(t *testing.T) {
	svc := NewSubscriptionService(&fakeSubscriptionRepo{}, &fakeSender{})

	err := svc.Unsubscribe(context.Background(), "https://push.example.com/unknown", 0)
	assert.ErrorIs(t, err, entity.ErrSubscriptionNotFound)
}

func TestUnsubscribeByID(t *testing.T) {
	repo := &fakeSubscriptionRepo{subs: []*entity.PushSubscription{
		testSubscription(5, "https://push.example.com/x"),
	}}
	svc := NewSubscriptionService(repo, &fakeSender{})

	err := svc.Unsubscribe(context.Background(), "", 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, repo.deletedIDs())
}

func TestUnsubscribeMissingIdentifier(t *testing.T) {
	svc := NewSubscriptionService(&fakeSubscriptionRepo{}, &fakeSender{})

	err := svc.Unsubscribe(context.Background(), "", 0)
	assert.ErrorIs(t, err, entity.ErrMissingIdentifier)
}

func TestPublicKeyDelegatesToSender(t *testing.T) {
	svc := NewSubscriptionService(&fakeSubscriptionRepo{}, &fakeSender{})

	key, err := svc.PublicKey()
	require.NoError(t, err)
	assert.Equal(t, "test-public-key", key)
}
