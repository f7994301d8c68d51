package caching

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCacheSetAndGet(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	data := []byte(`{"url": "https://example.com"}`)
	if err := cache.Set("https://example.com", "advanced", data); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok := cache.Get("https://example.com", "advanced")
	if !ok {
		t.Fatal("Get() ok = false, want cache hit")
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Get() = %q, want %q", got, data)
	}
}

func TestCacheMissOnUnknownKey(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if _, ok := cache.Get("https://never-stored.example", "basic"); ok {
		t.Error("Get() ok = true, want miss for unknown key")
	}
}

func TestCacheDepthIsPartOfKey(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if err := cache.Set("https://example.com", "basic", []byte("basic-data")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if _, ok := cache.Get("https://example.com", "deep"); ok {
		t.Error("Get() with different depth hit cache, want miss")
	}
}

func TestCacheMissOnUnreadableDir(t *testing.T) {
	// A regular file where the cache directory should be makes stat fail
	// with an error other than not-exist; Get must miss, not panic.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create blocker file: %v", err)
	}

	cache := &Cache{path: blocker, ttl: time.Hour}
	if _, ok := cache.Get("https://example.com", "basic"); ok {
		t.Error("Get() ok = true, want miss when the cache path is unreadable")
	}
}

func TestCacheExpiry(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Nanosecond)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if err := cache.Set("https://example.com", "basic", []byte("data")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, ok := cache.Get("https://example.com", "basic"); ok {
		t.Error("Get() ok = true, want miss for expired entry")
	}
}

func TestCacheDisabledWithZeroTTL(t *testing.T) {
	cache, err := NewCache(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if err := cache.Set("https://example.com", "basic", []byte("data")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if _, ok := cache.Get("https://example.com", "basic"); ok {
		t.Error("Get() ok = true, want miss when TTL disables the cache")
	}
}
