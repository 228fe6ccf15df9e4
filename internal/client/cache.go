package client

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mhmtszr/concurrent-swiss-map"
	"github.com/patrickmn/go-cache"

	"github.com/Digital-Shane/tvdbxml/internal/archive"
)

// Cache holds response bodies keyed by URL. It can be persisted between runs.
type Cache struct {
	c    *cache.Cache
	file string
}

// NewCache keeps bodies for ttl. When file is set and exists the cache is
// preloaded from it. A file that cannot be loaded is reported, but the
// returned cache is still usable and the next Save replaces the file.
func NewCache(ttl time.Duration, file string) (*Cache, error) {
	rc := &Cache{c: cache.New(ttl, 10*time.Minute), file: file}
	if file == "" {
		return rc, nil
	}
	if _, err := os.Stat(file); err != nil {
		return rc, nil
	}
	if err := rc.c.LoadFile(file); err != nil {
		rc.c.Flush()
		return rc, fmt.Errorf("failed to load cache file %s: %w", file, err)
	}
	return rc, nil
}

// DefaultCacheFile is ~/.tvdbxml/cache/responses.gob.
func DefaultCacheFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, ".tvdbxml", "cache")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}
	return filepath.Join(dir, "responses.gob"), nil
}

func (rc *Cache) get(url string) ([]byte, bool) {
	v, found := rc.c.Get(url)
	if !found {
		return nil, false
	}
	body, ok := v.([]byte)
	return body, ok
}

func (rc *Cache) set(url string, body []byte) {
	rc.c.Set(url, body, cache.DefaultExpiration)
}

// Len is the number of unexpired entries.
func (rc *Cache) Len() int {
	return rc.c.ItemCount()
}

// Save writes the cache to its file. It is a no-op without one.
func (rc *Cache) Save() error {
	if rc.file == "" {
		return nil
	}
	rc.c.DeleteExpired()
	return rc.c.SaveFile(rc.file)
}

type docEntry struct {
	docs    archive.DocumentSet
	expires time.Time
}

// docMemo keeps unpacked bundles so seasons, episodes and banners of one
// series share a single download and unpack.
type docMemo struct {
	m   *csmap.CsMap[string, docEntry]
	ttl time.Duration
	now func() time.Time
}

func newDocMemo(ttl time.Duration) *docMemo {
	return &docMemo{m: csmap.Create[string, docEntry](), ttl: ttl, now: time.Now}
}

func (d *docMemo) load(url string) (archive.DocumentSet, bool) {
	e, ok := d.m.Load(url)
	if !ok {
		return nil, false
	}
	if d.now().After(e.expires) {
		d.m.Delete(url)
		return nil, false
	}
	return e.docs, true
}

func (d *docMemo) store(url string, docs archive.DocumentSet) {
	d.m.Store(url, docEntry{docs: docs, expires: d.now().Add(d.ttl)})
}
