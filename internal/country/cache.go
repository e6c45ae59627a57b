// internal/country/cache.go
//
// Local JSON cache of the last successful fetch.
// Keeps the game playable when the API is unreachable, and skips the
// network entirely while the cached copy is still fresh.

package country

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultCacheTTL is how long a cached copy counts as fresh.
const DefaultCacheTTL = 24 * time.Hour

// cacheFile is the on-disk shape: the fetched collection plus its age.
type cacheFile struct {
	FetchedAt time.Time `json:"fetchedAt"`
	Countries []Country `json:"countries"`
}

// Cache reads and writes the country cache file.
type Cache struct {
	path string
	ttl  time.Duration
}

// NewCache constructs a Cache at path. A non-positive ttl uses
// DefaultCacheTTL.
func NewCache(path string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{path: path, ttl: ttl}
}

// Load reads the cached collection. The second return reports whether the
// copy is still fresh (younger than the TTL). A missing or unreadable file
// returns an error; the caller decides whether that matters.
func (c *Cache) Load() ([]Country, bool, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, false, err
	}
	var f cacheFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, false, fmt.Errorf("decode cache %s: %w", c.path, err)
	}
	if len(f.Countries) < 2 {
		return nil, false, errors.New("cache holds fewer than 2 countries")
	}
	fresh := time.Since(f.FetchedAt) < c.ttl
	return f.Countries, fresh, nil
}

// Store overwrites the cache with a freshly fetched collection.
func (c *Cache) Store(countries []Country) error {
	dir := filepath.Dir(c.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	data, err := json.Marshal(cacheFile{FetchedAt: time.Now(), Countries: countries})
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}
