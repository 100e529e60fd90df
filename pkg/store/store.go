// Package store defines the contract of the realtime document store the
// dashboard is backed by.
//
// Documents are addressed by slash separated paths. The first segment is
// the collection, the second the document key and an optional third
// segment a field of the document, e.g. "users/<uid>/role".
package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// Collections used by the dashboard.
const (
	CollectionUsers = "users"
	CollectionNotes = "notas_fiscais"
)

// OrderCreatedAt is the child used to order notes.
const OrderCreatedAt = "createdAt"

var (
	ErrNotFound    = errors.New("no document at path")
	ErrInvalidPath = errors.New("invalid document path")
	ErrClosed      = errors.New("store is closed")
)

// Child is a single document of a collection snapshot.
type Child struct {
	Key   string
	Value json.RawMessage
}

// Snapshot is the complete, ordered content of a collection at one point
// in time. Every snapshot replaces the previous one.
type Snapshot struct {
	Path     string
	Children []Child
}

// Exists reports whether the collection has any documents.
func (s Snapshot) Exists() bool {
	return len(s.Children) > 0
}

// SnapshotFunc receives the snapshots of a subscription. When reading the
// collection failed, err is set and the snapshot is empty.
type SnapshotFunc func(snap Snapshot, err error)

// Subscription is a detachable listener on a collection.
type Subscription interface {
	// Close detaches the listener. After Close returns, the callback of the
	// subscription is never invoked again. Close is idempotent. It must not
	// be called from within the subscription's own callback.
	Close()
}

// Store is a realtime document store.
type Store interface {
	// Subscribe delivers the current snapshot of the collection at path and
	// a new snapshot after every change, ordered ascending by the child
	// orderBy.
	Subscribe(ctx context.Context, path, orderBy string, fn SnapshotFunc) (Subscription, error)

	// Get returns the document or field at path, ErrNotFound if absent.
	Get(ctx context.Context, path string) (json.RawMessage, error)

	// Set replaces the document or field at path. ServerTimestamp values
	// are resolved by the store.
	Set(ctx context.Context, path string, value any) error

	// Update merges fields into the document at path. A nil value removes
	// the field. With the root path "", the keys of fields are document
	// paths and all of them are written atomically.
	Update(ctx context.Context, path string, fields map[string]any) error

	// Remove deletes the document or field at path.
	Remove(ctx context.Context, path string) error

	// Push returns a new, unique child key for the collection at path.
	// Keys sort in creation order.
	Push(ctx context.Context, path string) (string, error)
}

type serverValue struct{}

// MarshalJSON encodes the placeholder the store replaces on write.
func (serverValue) MarshalJSON() ([]byte, error) {
	return []byte(`{".sv":"timestamp"}`), nil
}

// ServerTimestamp is replaced with the store's current time in
// milliseconds when written. Timestamps of one store strictly increase.
var ServerTimestamp any = serverValue{}

// IsServerTimestamp reports whether a decoded value is the placeholder
// written by ServerTimestamp.
func IsServerTimestamp(v any) bool {
	m, ok := v.(map[string]any)
	return ok && len(m) == 1 && m[".sv"] == "timestamp"
}

// Ref is a parsed document path.
type Ref struct {
	Collection string
	Key        string
	Field      string
}

// ParsePath splits a path into its segments.
func ParsePath(path string) (Ref, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for _, p := range parts {
		if p == "" || strings.ContainsAny(p, ".#$[]") {
			return Ref{}, ErrInvalidPath
		}
	}

	switch len(parts) {
	case 1:
		return Ref{Collection: parts[0]}, nil
	case 2:
		return Ref{Collection: parts[0], Key: parts[1]}, nil
	case 3:
		return Ref{Collection: parts[0], Key: parts[1], Field: parts[2]}, nil
	default:
		return Ref{}, ErrInvalidPath
	}
}

// String returns the path of the reference.
func (r Ref) String() string {
	parts := []string{r.Collection}
	if r.Key != "" {
		parts = append(parts, r.Key)
	}
	if r.Field != "" {
		parts = append(parts, r.Field)
	}
	return strings.Join(parts, "/")
}

// Join builds a path from segments.
func Join(segments ...string) string {
	return strings.Join(segments, "/")
}
