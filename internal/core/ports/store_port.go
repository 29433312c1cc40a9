package ports

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// DocumentStore keeps whole JSON documents under string keys.
// Every write replaces the previous document.
type DocumentStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
