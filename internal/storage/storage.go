// Package storage is the persistence port used by the design store and the
// auth service: opaque JSON blobs under well-known keys.
package storage

import "context"

// Keys used by the application. Each is an independent record.
const (
	DesignKey = "design-storage"
	AuthKey   = "auth-storage"
)

// KV reads and writes whole records. Get reports ok=false when the key has
// never been written.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
