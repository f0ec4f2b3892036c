package entity

import "errors"

var (
	// Subscription errors
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrInvalidSubscription  = errors.New("missing required fields: endpoint and keys")
	ErrMissingIdentifier    = errors.New("missing required field: endpoint or id")

	// Push errors
	ErrPushNotConfigured = errors.New("push transport is not configured")

	// Content errors
	ErrContentNotFound       = errors.New("content entry not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// Media errors
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// General errors
	ErrInvalidInput  = errors.New("invalid input")
	ErrDatabaseError = errors.New("database error")
	ErrUnauthorized  = errors.New("unauthorized access")
)
