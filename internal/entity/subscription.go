package entity

import (
	"time"
)

// PushSubscription is one registered web push endpoint. The endpoint URL is
// the natural key, at most one live row exists per endpoint.
type PushSubscription struct {
	ID        int64            `json:"id"`
	Endpoint  string           `json:"endpoint"`
	Keys      SubscriptionKeys `json:"keys"`
	Device    string           `json:"device,omitempty"`
	UserAgent string           `json:"userAgent,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// SubscriptionKeys are the client secrets needed to encrypt payloads for one
// endpoint.
type SubscriptionKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// Incomplete reports whether either client secret is missing. Both are
// required to encrypt a payload for the endpoint.
func (k SubscriptionKeys) Incomplete() bool {
	return k.P256dh == "" || k.Auth == ""
}

type SubscribeRequest struct {
	Endpoint  string            `json:"endpoint"`
	Keys      *SubscriptionKeys `json:"keys"`
	Device    string            `json:"device"`
	UserAgent string            `json:"userAgent"`
}

type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint"`
}
