// Package store provides a named library of archive documents.
//
// The store persists the archive format verbatim — it introduces no second
// serialization. Entries are addressed by a user-chosen name; saving under
// an existing name replaces the previous document.
//
// Two backends implement the [Store] interface:
//   - [FileStore]: a directory of archive files, for CLI usage
//   - [MongoStore]: a MongoDB collection, for shared deployments
package store

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a named archive does not exist.
	ErrNotFound = errors.New("archive not found")
)

// Entry describes one stored archive.
type Entry struct {
	ID        string    // Backend-assigned identifier
	Name      string    // User-chosen archive name
	Size      int       // Document size in bytes
	UpdatedAt time.Time // Last save time
}

// Store persists archive documents under names.
type Store interface {
	// Save stores doc under name, replacing any previous document, and
	// returns the entry's identifier.
	Save(ctx context.Context, name string, doc []byte) (string, error)

	// Load returns the document stored under name.
	// Fails with ErrNotFound when the name is unknown.
	Load(ctx context.Context, name string) ([]byte, error)

	// List returns all entries sorted by name.
	List(ctx context.Context) ([]Entry, error)

	// Delete removes the document stored under name.
	// Fails with ErrNotFound when the name is unknown.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}
