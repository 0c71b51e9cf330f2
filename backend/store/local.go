package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"glowup/backend/engine"
)

const cacheNamespace = "glowup"

// LocalCache is the per-user JSON file cache. It is the synchronous,
// always-attempted half of the persistence gateway: a write here must
// succeed before the remote store is even tried.
type LocalCache struct {
	mu  sync.Mutex
	dir string
}

func NewLocalCache(dir string) (*LocalCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &LocalCache{dir: dir}, nil
}

func (c *LocalCache) pathFor(ownerID string) string {
	return filepath.Join(c.dir, fmt.Sprintf("%s-%s.json", cacheNamespace, ownerID))
}

// Read returns the cached aggregate for an owner, with ok=false on a miss.
func (c *LocalCache) Read(ownerID string) (engine.UserData, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := os.ReadFile(c.pathFor(ownerID))
	if err != nil {
		if os.IsNotExist(err) {
			return engine.UserData{}, false, nil
		}
		return engine.UserData{}, false, err
	}

	var data engine.UserData
	if err := json.Unmarshal(b, &data); err != nil {
		return engine.UserData{}, false, fmt.Errorf("decode cached document: %w", err)
	}
	return data, true, nil
}

// Write stores the aggregate, replacing any previous copy atomically.
func (c *LocalCache) Write(ownerID string, data engine.UserData) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	path := c.pathFor(ownerID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Delete removes the cached copy. Used by sign-out / clear-data; the remote
// copy is untouched.
func (c *LocalCache) Delete(ownerID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := os.Remove(c.pathFor(ownerID))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
