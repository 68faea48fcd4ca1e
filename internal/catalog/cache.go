package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache is the on-disk copy of the remote catalog document.
// The file holds the exact bytes last fetched; it never expires.
type Cache struct {
	Path string
}

// CacheInfo describes the cache file for status reporting.
type CacheInfo struct {
	Path    string
	Exists  bool
	Size    int64
	ModTime time.Time
}

// NewCache returns a Cache backed by the file at path.
func NewCache(path string) *Cache {
	return &Cache{Path: path}
}

// Read returns the cached bytes. ok is false, with a nil error, when the
// cache file does not exist.
func (c *Cache) Read() (data []byte, ok bool, err error) {
	data, err = os.ReadFile(c.Path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading catalog cache %s: %w", c.Path, err)
	}
	return data, true, nil
}

// Write replaces the cache file with data, byte for byte.
func (c *Cache) Write(data []byte) error {
	dir := filepath.Dir(c.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".catalog-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp cache file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing catalog cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing catalog cache: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting cache permissions: %w", err)
	}
	if err := os.Rename(tmpPath, c.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing catalog cache: %w", err)
	}
	return nil
}

// Clear removes the cache file. A missing file is not an error.
func (c *Cache) Clear() error {
	if err := os.Remove(c.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing catalog cache: %w", err)
	}
	return nil
}

// Stat reports whether the cache file exists and, if so, its size and age.
func (c *Cache) Stat() (CacheInfo, error) {
	info := CacheInfo{Path: c.Path}
	fi, err := os.Stat(c.Path)
	if os.IsNotExist(err) {
		return info, nil
	}
	if err != nil {
		return info, fmt.Errorf("inspecting catalog cache: %w", err)
	}
	info.Exists = true
	info.Size = fi.Size()
	info.ModTime = fi.ModTime()
	return info, nil
}
