package push

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/greenwoodcity/portal-backend/config"
	"github.com/greenwoodcity/portal-backend/internal/entity"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)

	return NewClient(
		&config.VAPIDConfig{
			PublicKey:  publicKey,
			PrivateKey: privateKey,
			Subscriber: "mailto:admin@greenwoodcity.gov",
		},
		&config.PushConfig{},
	)
}

// newTestSubscription builds a subscription with real client keys so the
// payload encryption in the send path succeeds.
func newTestSubscription(t *testing.T, endpoint string) *entity.PushSubscription {
	t.Helper()

	key, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)

	auth := make([]byte, 16)
	_, err = rand.Read(auth)
	require.NoError(t, err)

	return &entity.PushSubscription{
		ID:       1,
		Endpoint: endpoint,
		Keys: entity.SubscriptionKeys{
			P256dh: base64.RawURLEncoding.EncodeToString(key.PublicKey().Bytes()),
			Auth:   base64.RawURLEncoding.EncodeToString(auth),
		},
	}
}

func TestSendClassifiesResponses(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantErr       bool
		wantPermanent bool
	}{
		{name: "created", status: http.StatusCreated},
		{name: "gone prunes", status: http.StatusGone, wantErr: true, wantPermanent: true},
		{name: "not found prunes", status: http.StatusNotFound, wantErr: true, wantPermanent: true},
		{name: "server error retries later", status: http.StatusInternalServerError, wantErr: true},
		{name: "too many requests retries later", status: http.StatusTooManyRequests, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := newTestClient(t)
			sub := newTestSubscription(t, server.URL)

			err := client.Send(context.Background(), sub, &entity.NotificationPayload{Title: "hello"})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantPermanent, IsPermanent(err))
		})
	}
}

func TestSendUnreachableEndpointIsTransient(t *testing.T) {
	client := newTestClient(t)
	sub := newTestSubscription(t, "http://127.0.0.1:1/push")

	err := client.Send(context.Background(), sub, &entity.NotificationPayload{Title: "hello"})
	require.Error(t, err)
	assert.False(t, IsPermanent(err), "network errors must not prune the subscription")
}

func TestSendUnconfigured(t *testing.T) {
	client := NewClient(&config.VAPIDConfig{}, &config.PushConfig{})

	err := client.Send(context.Background(), &entity.PushSubscription{}, &entity.NotificationPayload{})
	assert.ErrorIs(t, err, entity.ErrPushNotConfigured)
}

func TestPublicKey(t *testing.T) {
	client := newTestClient(t)
	key, err := client.PublicKey()
	require.NoError(t, err)
	assert.NotEmpty(t, key)

	unconfigured := NewClient(&config.VAPIDConfig{}, &config.PushConfig{})
	_, err = unconfigured.PublicKey()
	assert.ErrorIs(t, err, entity.ErrPushNotConfigured)
}

func TestNormalizePayloadAppliesDefaults(t *testing.T) {
	client := NewClient(
		&config.VAPIDConfig{},
		&config.PushConfig{DefaultIcon: "/icons/icon.png", DefaultBadge: "/icons/badge.png"},
	)

	normalized := client.normalizePayload(&entity.NotificationPayload{Title: "t", Body: "b"})
	assert.Equal(t, "/icons/icon.png", normalized.Icon)
	assert.Equal(t, "/icons/badge.png", normalized.Badge)
	require.NotNil(t, normalized.Data, "data must never go out as null")

	wire, err := json.Marshal(normalized)
	require.NoError(t, err)
	assert.NotContains(t, string(wire), `"data":null`)
	assert.Contains(t, string(wire), `"icon":"/icons/icon.png"`)
}

func TestNormalizePayloadKeepsExplicitValues(t *testing.T) {
	client := NewClient(
		&config.VAPIDConfig{},
		&config.PushConfig{DefaultIcon: "/icons/icon.png", DefaultBadge: "/icons/badge.png"},
	)

	normalized := client.normalizePayload(&entity.NotificationPayload{
		Title: "t",
		Icon:  "/custom.png",
		Badge: "/custom-badge.png",
		Data:  map[string]interface{}{"entryId": int64(7)},
	})
	assert.Equal(t, "/custom.png", normalized.Icon)
	assert.Equal(t, "/custom-badge.png", normalized.Badge)
	assert.Equal(t, int64(7), normalized.Data["entryId"])
}

func TestIsPermanent(t *testing.T) {
	assert.True(t, IsPermanent(&DeliveryError{StatusCode: 410, Permanent: true}))
	assert.False(t, IsPermanent(&DeliveryError{StatusCode: 500}))
	assert.False(t, IsPermanent(entity.ErrPushNotConfigured))
	assert.False(t, IsPermanent(nil))
}
