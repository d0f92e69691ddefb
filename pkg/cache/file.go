package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache keeps rendered artifacts on the local filesystem, one JSON
// record per key. It backs CLI runs, where process lifetimes are short and
// no shared Redis is around; records survive across invocations so
// re-rendering an unchanged grid costs a disk read instead of an encode.
//
// Records are sharded into subdirectories by key hash to keep any single
// directory small.
type FileCache struct {
	root string
}

// NewFileCache creates a file cache rooted at dir, creating the directory
// if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{root: dir}, nil
}

// artifactRecord is the on-disk shape of one cached artifact: the rendered
// payload plus its expiry deadline. A zero deadline means the record never
// expires.
type artifactRecord struct {
	Payload   []byte    `json:"payload"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (r artifactRecord) expired() bool {
	return !r.ExpiresAt.IsZero() && time.Now().After(r.ExpiresAt)
}

// Get returns the artifact stored under key. Corrupt and expired records
// are dropped and reported as misses, so a bad record never sticks.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.recordPath(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var rec artifactRecord
	if err := json.Unmarshal(raw, &rec); err != nil || rec.expired() {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return rec.Payload, true, nil
}

// Set stores data under key. A positive ttl sets the expiry deadline.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	rec := artifactRecord{Payload: data}
	if ttl > 0 {
		rec.ExpiresAt = time.Now().Add(ttl)
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	path := c.recordPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// Delete drops the record stored under key. Absent keys are not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	if err := os.Remove(c.recordPath(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Close is a no-op; the cache holds no open handles between calls.
func (c *FileCache) Close() error { return nil }

// recordPath maps a key to <root>/<shard>/<rest>.json. The shard is the
// first byte of the key's content hash, which also keeps arbitrary key
// strings out of file names.
func (c *FileCache) recordPath(key string) string {
	sum := ContentHash([]byte(key))
	return filepath.Join(c.root, sum[:2], sum[2:]+".json")
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
