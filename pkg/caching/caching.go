package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache is a simple file-based cache with a TTL, used to avoid repeat
// DeepSeek API spend for the same URL and depth.
type Cache struct {
	path string
	ttl  time.Duration
}

// NewCache creates a new Cache instance.
// The cache path will be created if it doesn't exist.
// A non-positive ttl disables the cache: Get always misses, Set still writes.
func NewCache(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		path: path,
		ttl:  ttl,
	}, nil
}

// key hashes url and depth into a filename.
func (c *Cache) key(url, depth string) string {
	hash := sha256.Sum256([]byte(url + "|" + depth))
	return fmt.Sprintf("%x", hash)
}

// Get retrieves a cached result for the url/depth pair.
// It returns the data and true if the item is found and not expired.
func (c *Cache) Get(url, depth string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	filePath := filepath.Join(c.path, c.key(url, depth))

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, false
	}

	if time.Since(info.ModTime()) > c.ttl {
		return nil, false // expired
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false
	}

	return data, true
}

// Set stores a result for the url/depth pair.
func (c *Cache) Set(url, depth string, data []byte) error {
	filePath := filepath.Join(c.path, c.key(url, depth))
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
