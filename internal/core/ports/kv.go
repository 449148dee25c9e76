package ports

import "context"

// KeyValueStore is the opaque persisted store used by the offline backend and
// the session cache. Values are stringified JSON. Get returns an empty string
// for absent keys; callers must treat absent or malformed values as empty
// rather than failing.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
