package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/greenwoodcity/portal-backend/config"
	"github.com/greenwoodcity/portal-backend/internal/entity"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// DeliveryError is a failed delivery attempt. Permanent means the push
// service reported the endpoint gone (HTTP 404/410) and the subscription
// should be pruned; anything else may succeed on a later broadcast.
type DeliveryError struct {
	StatusCode int
	Permanent  bool
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("push delivery failed: %v", e.Err)
	}
	return fmt.Sprintf("push delivery failed with status %d", e.StatusCode)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// IsPermanent reports whether err marks the subscription endpoint as gone.
func IsPermanent(err error) bool {
	var de *DeliveryError
	return errors.As(err, &de) && de.Permanent
}

// Client sends VAPID-authenticated web push messages. Construct it once at
// startup; an unconfigured client fails fast without touching the network.
type Client struct {
	publicKey    string
	privateKey   string
	subscriber   string
	ttl          int
	timeout      time.Duration
	defaultIcon  string
	defaultBadge string
	httpClient   *http.Client
}

func NewClient(vapid *config.VAPIDConfig, cfg *config.PushConfig) *Client {
	timeout := cfg.DeliveryTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 86400
	}

	return &Client{
		publicKey:    vapid.PublicKey,
		privateKey:   vapid.PrivateKey,
		subscriber:   vapid.Subscriber,
		ttl:          ttl,
		timeout:      timeout,
		defaultIcon:  cfg.DefaultIcon,
		defaultBadge: cfg.DefaultBadge,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// normalizePayload fills the fields every pushed message must carry: icon and
// badge fall back to the configured defaults, data is never null on the wire.
func (c *Client) normalizePayload(payload *entity.NotificationPayload) *entity.NotificationPayload {
	normalized := *payload
	if normalized.Icon == "" {
		normalized.Icon = c.defaultIcon
	}
	if normalized.Badge == "" {
		normalized.Badge = c.defaultBadge
	}
	if normalized.Data == nil {
		normalized.Data = map[string]interface{}{}
	}
	return &normalized
}

func (c *Client) Configured() bool {
	return c.publicKey != "" && c.privateKey != ""
}

// PublicKey returns the VAPID public key handed out to browsers.
func (c *Client) PublicKey() (string, error) {
	if !c.Configured() {
		return "", entity.ErrPushNotConfigured
	}
	return c.publicKey, nil
}

// Send delivers one payload to one subscription. Each attempt runs under its
// own deadline so a stuck push service cannot hold up a whole broadcast.
func (c *Client) Send(ctx context.Context, sub *entity.PushSubscription, payload *entity.NotificationPayload) error {
	if !c.Configured() {
		return entity.ErrPushNotConfigured
	}

	body, err := json.Marshal(c.normalizePayload(payload))
	if err != nil {
		return &DeliveryError{Err: fmt.Errorf("failed to marshal payload: %w", err)}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := webpush.SendNotificationWithContext(ctx, body, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.Keys.P256dh,
			Auth:   sub.Keys.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      c.httpClient,
		Subscriber:      c.subscriber,
		VAPIDPublicKey:  c.publicKey,
		VAPIDPrivateKey: c.privateKey,
		TTL:             c.ttl,
	})
	if err != nil {
		return &DeliveryError{Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusGone || resp.StatusCode == http.StatusNotFound:
		return &DeliveryError{StatusCode: resp.StatusCode, Permanent: true}
	default:
		return &DeliveryError{StatusCode: resp.StatusCode}
	}
}
