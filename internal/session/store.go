// Package session tracks the single authenticated identity of a running
// docboard instance and mirrors it to durable storage so it survives
// restarts.
package session

import "context"

// Store is durable key-value storage for small application state.
//
// Get returns (nil, nil) when the key is absent; callers must treat a nil
// value as "no entry" rather than an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
