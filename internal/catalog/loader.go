package catalog

import (
	"context"
	"fmt"

	"github.com/neokit-dev/nktool/internal/logging"
)

// Loader produces the plugin catalog from the cache or, failing that, from
// the remote URL.
type Loader struct {
	cache   *Cache
	fetcher Fetcher
	url     string
}

// NewLoader creates a Loader that caches documents fetched from url.
func NewLoader(cache *Cache, fetcher Fetcher, url string) *Loader {
	return &Loader{cache: cache, fetcher: fetcher, url: url}
}

// URL returns the remote catalog location.
func (l *Loader) URL() string { return l.url }

// Cache returns the cache the loader reads from and writes to.
func (l *Loader) Cache() *Cache { return l.cache }

// Load returns the catalog. An existing cache file is used as-is with no
// network access. Otherwise the catalog is fetched once and the response
// bytes are written to the cache before parsing.
func (l *Loader) Load(ctx context.Context) (Catalog, error) {
	data, ok, err := l.cache.Read()
	if err != nil {
		return nil, err
	}
	if ok {
		logging.Log.Debugf("using cached plugin catalog %s (%d bytes)", l.cache.Path, len(data))
		return Parse(data, l.cache.Path)
	}

	logging.Log.Debugf("fetching plugin catalog from %s", l.url)
	data, err = l.fetcher.Fetch(ctx, l.url)
	if err != nil {
		return nil, err
	}

	if err := l.cache.Write(data); err != nil {
		return nil, fmt.Errorf("caching plugin catalog: %w", err)
	}
	logging.Log.Debugf("cached plugin catalog at %s", l.cache.Path)

	return Parse(data, l.url)
}

// Refresh discards the cached catalog and loads a fresh copy.
func (l *Loader) Refresh(ctx context.Context) (Catalog, error) {
	if err := l.cache.Clear(); err != nil {
		return nil, err
	}
	return l.Load(ctx)
}
