package transport

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/greenwoodcity/portal-backend/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriptionService struct {
	subs      map[string]*entity.PushSubscription
	publicKey string
	nextID    int64
}

func newFakeSubscriptionService() *fakeSubscriptionService {
	return &fakeSubscriptionService{
		subs:      make(map[string]*entity.PushSubscription),
		publicKey: "test-public-key",
	}
}

func (s *fakeSubscriptionService) Subscribe(ctx context.Context, req *entity.SubscribeRequest) (*entity.PushSubscription, error) {
	if req.Endpoint == "" || req.Keys == nil || req.Keys.Incomplete() {
		return nil, entity.ErrInvalidSubscription
	}
	if existing, ok := s.subs[req.Endpoint]; ok {
		existing.Keys = *req.Keys
		return existing, nil
	}
	s.nextID++
	sub := &entity.PushSubscription{ID: s.nextID, Endpoint: req.Endpoint, Keys: *req.Keys}
	s.subs[req.Endpoint] = sub
	return sub, nil
}

func (s *fakeSubscriptionService) Unsubscribe(ctx context.Context, endpoint string, id int64) error {
	if endpoint != "" {
		if _, ok := s.subs[endpoint]; !ok {
			return entity.ErrSubscriptionNotFound
		}
		delete(s.subs, endpoint)
		return nil
	}
	if id > 0 {
		for key, sub := range s.subs {
			if sub.ID == id {
				delete(s.subs, key)
				return nil
			}
		}
		return entity.ErrSubscriptionNotFound
	}
	return entity.ErrMissingIdentifier
}

func (s *fakeSubscriptionService) PublicKey() (string, error) {
	if s.publicKey == "" {
		return "", entity.ErrPushNotConfigured
	}
	return s.publicKey, nil
}

func newPushRouter(svc *fakeSubscriptionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewSubscriptionHandler(svc)

	router := gin.New()
	router.POST("/api/v1/push/subscribe", handler.Subscribe)
	router.DELETE("/api/v1/push/unsubscribe", handler.Unsubscribe)
	router.DELETE("/api/v1/push/unsubscribe/:id", handler.UnsubscribeByID)
	router.GET("/api/v1/push/public-key", handler.PublicKey)
	return router
}

func TestSubscribeEndpoint(t *testing.T) {
	router := newPushRouter(newFakeSubscriptionService())

	body := `{"endpoint":"https://push.example.com/x","keys":{"p256dh":"p","auth":"a"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/push/subscribe", strings.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "https://push.example.com/x")
}

func TestSubscribeMissingFields(t *testing.T) {
	router := newPushRouter(newFakeSubscriptionService())

	tests := []struct {
		name string
		body string
	}{
		{name: "no endpoint", body: `{"keys":{"p256dh":"p","auth":"a"}}`},
		{name: "no keys", body: `{"endpoint":"https://push.example.com/x"}`},
		{name: "invalid json", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/push/subscribe", strings.NewReader(tt.body))
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUnsubscribeEndpoint(t *testing.T) {
	svc := newFakeSubscriptionService()
	_, err := svc.Subscribe(context.Background(), &entity.SubscribeRequest{
		Endpoint: "https://push.example.com/x",
		Keys:     &entity.SubscriptionKeys{P256dh: "p", Auth: "a"},
	})
	require.NoError(t, err)

	router := newPushRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/push/unsubscribe", strings.NewReader(`{"endpoint":"https://push.example.com/x"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.subs)
}

func TestUnsubscribeByIDPath(t *testing.T) {
	svc := newFakeSubscriptionService()
	sub, err := svc.Subscribe(context.Background(), &entity.SubscribeRequest{
		Endpoint: "https://push.example.com/x",
		Keys:     &entity.SubscriptionKeys{P256dh: "p", Auth: "a"},
	})
	require.NoError(t, err)

	router := newPushRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/push/unsubscribe/%d", sub.ID), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.subs)
}

func TestUnsubscribeUnknown(t *testing.T) {
	router := newPushRouter(newFakeSubscriptionService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/push/unsubscribe", strings.NewReader(`{"endpoint":"https://push.example.com/unknown"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnsubscribeNoIdentifier(t *testing.T) {
	router := newPushRouter(newFakeSubscriptionService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/push/unsubscribe", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicKeyEndpoint(t *testing.T) {
	router := newPushRouter(newFakeSubscriptionService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/push/public-key", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test-public-key")
}

func TestPublicKeyNotConfigured(t *testing.T) {
	svc := newFakeSubscriptionService()
	svc.publicKey = ""
	router := newPushRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/push/public-key", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
