package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores layout results as JSON files under a directory,
// typically ~/.cache/wireform. Each entry carries its own expiry, so
// stale results are dropped on read; there is no background sweeper.
type FileCache struct {
	dir string
}

// envelope is the on-disk format: the serialized layout plus expiry.
type envelope struct {
	Payload []byte    `json:"payload"`
	Expires time.Time `json:"expires,omitempty"`
}

// NewFileCache creates a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get returns the stored layout for key. Expired or unreadable entries
// are removed and reported as a miss.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.entryPath(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var e envelope
	if err := json.Unmarshal(raw, &e); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !e.Expires.IsZero() && time.Now().After(e.Expires) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return e.Payload, true, nil
}

// Set stores a layout result under key. A ttl of zero means the entry
// never expires.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := envelope{Payload: data}
	if ttl > 0 {
		e.Expires = time.Now().Add(ttl)
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

// Delete removes the entry for key. Missing entries are not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; the file cache holds no open handles.
func (c *FileCache) Close() error {
	return nil
}

// entryPath maps a key to a file, fanning out over 256 subdirectories
// so one directory never accumulates every entry.
func (c *FileCache) entryPath(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
