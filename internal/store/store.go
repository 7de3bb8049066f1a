// Package store provides the remote record store used as a best-effort
// durability backstop. Records are opaque JSON documents addressed by
// slash-delimited logical paths, e.g. "leads/service_requests/<id>".
package store

import (
	"context"
	"errors"
	"strings"
)

// ErrInvalidPath is returned for empty paths or paths with empty segments.
var ErrInvalidPath = errors.New("store: invalid path")

// Store reads and writes JSON documents at logical paths. Implementations
// must serialize concurrent writes to the same path; callers treat every
// operation as best-effort.
type Store interface {
	// Read returns the raw JSON at path, or nil with no error when the
	// path holds nothing.
	Read(ctx context.Context, path string) ([]byte, error)

	// Write marshals v and stores it at path, replacing any prior value.
	Write(ctx context.Context, path string, v any) error

	// Update merges fields into the JSON object at path, creating it if
	// absent. A non-object existing value is replaced.
	Update(ctx context.Context, path string, fields map[string]any) error

	// Push appends v under path with a generated child key and returns
	// the key.
	Push(ctx context.Context, path string, v any) (string, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	Close() error
}

// ValidatePath checks that a path is non-empty, slash-delimited, and has no
// empty segments.
func ValidatePath(path string) error {
	if path == "" {
		return ErrInvalidPath
	}
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			return ErrInvalidPath
		}
	}
	return nil
}
