// Package cache provides caching for rendered artifacts.
//
// Rendering a grid is deterministic, so artifacts (PNG, SVG, text) can be
// cached keyed by the grid's content hash plus the render options.
// Synthesis output is stochastic and is never cached.
//
// Three backends implement the [Cache] interface:
//   - [FileCache]: directory of JSON records with TTL, for CLI usage
//   - [RedisCache]: shared cache for service deployments
//   - [NullCache]: no-op, for tests or when caching is disabled
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// TTLs for cached artifact classes.
const (
	// TTLArtifact is how long rendered artifacts stay cached.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores opaque byte payloads under string keys.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys from content hashes and render options.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(gridHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that affect artifact bytes.
type ArtifactKeyOpts struct {
	Format string
	Scale  int
}

// DefaultKeyer hashes the grid hash together with the render options, so
// any option that changes the rendered bytes also changes the key.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered artifact.
// The key format is artifact:<hash>.
func (k *DefaultKeyer) ArtifactKey(gridHash string, opts ArtifactKeyOpts) string {
	payload, _ := json.Marshal(opts)
	return "artifact:" + ContentHash(append([]byte(gridHash+"/"), payload...))
}

// ContentHash returns the full hex SHA-256 of data. Artifact keys are
// content-addressed, and the full 256 bits keep distinct grids from ever
// colliding on a key.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
