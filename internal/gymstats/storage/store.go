package storage

import (
	"context"
	"errors"
)

var (
	ErrKeyNotFound  = errors.New("key not found")
	ErrCorruptState = errors.New("corrupt stored state")
)

// Store is a key-value store holding one JSON document per key.
// Get returns ErrKeyNotFound for keys never written.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
