package storage

import (
	"context"
	"path"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/craftbench/internal/logger"
)

// CachedStore keeps recent reads of another FileStore. Writes go through
// and refresh the cached copy.
type CachedStore struct {
	inner FileStore
	cache *expirable.LRU[string, []byte]
}

// NewCachedStore wraps inner with an LRU of size entries that expire after ttl.
func NewCachedStore(inner FileStore, size int, ttl time.Duration) *CachedStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &CachedStore{
		inner: inner,
		cache: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

func cacheKey(folder, name string) string {
	return path.Join(folder, name)
}

func (c *CachedStore) EnsureFolder(ctx context.Context, folder string) error {
	return c.inner.EnsureFolder(ctx, folder)
}

func (c *CachedStore) List(ctx context.Context, folder string) ([]string, error) {
	return c.inner.List(ctx, folder)
}

func (c *CachedStore) Read(ctx context.Context, folder, name string) ([]byte, error) {
	key := cacheKey(folder, name)
	if data, ok := c.cache.Get(key); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "path", key)
		return slices.Clone(data), nil
	}
	data, err := c.inner.Read(ctx, folder, name)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, slices.Clone(data))
	return data, nil
}

func (c *CachedStore) Write(ctx context.Context, folder, name string, data []byte) (string, error) {
	key := cacheKey(folder, name)
	c.cache.Remove(key)
	p, err := c.inner.Write(ctx, folder, name, data)
	if err != nil {
		return "", err
	}
	c.cache.Add(key, slices.Clone(data))
	return p, nil
}

// Invalidate drops every cached document.
func (c *CachedStore) Invalidate() {
	c.cache.Purge()
}
