// Package storage defines the key-value persistence contract used by
// onboarding state: persisted scenario orders and completion markers.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates a requested key is absent.
var ErrNotFound = errors.New("record not found")

// Store is a string key-value store. Implementations must return
// ErrNotFound from GetItem for absent keys and treat DeleteItem of an absent
// key as success.
type Store interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	DeleteItem(ctx context.Context, key string) error
}
