package update

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

type cacheEntry struct {
	Repository string    `json:"repository"`
	Version    string    `json:"version"`
	URL        string    `json:"url,omitempty"`
	FetchedAt  time.Time `json:"fetched_at"`
}

type releaseCache struct {
	Entries map[string]cacheEntry `json:"entries"`
}

func loadCache(path string) releaseCache {
	empty := releaseCache{Entries: map[string]cacheEntry{}}
	if path == "" {
		return empty
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return empty
	}
	var rc releaseCache
	if err := json.Unmarshal(data, &rc); err != nil {
		return empty
	}
	if rc.Entries == nil {
		rc.Entries = map[string]cacheEntry{}
	}
	return rc
}

func saveCache(path string, rc releaseCache) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(rc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// cachedRelease returns a cached entry for repo when it is younger than ttl.
func cachedRelease(path, repo string, ttl time.Duration, now time.Time) (cacheEntry, bool) {
	if ttl <= 0 {
		return cacheEntry{}, false
	}
	entry, ok := loadCache(path).Entries[repo]
	if !ok || entry.Version == "" {
		return cacheEntry{}, false
	}
	if now.Sub(entry.FetchedAt) > ttl {
		return cacheEntry{}, false
	}
	return entry, true
}

func storeRelease(path string, entry cacheEntry) error {
	rc := loadCache(path)
	rc.Entries[entry.Repository] = entry
	return saveCache(path, rc)
}
