package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// ReconcileCache holds pre-built indices for fast targeted reconciliation.
type ReconcileCache struct {
	// DBIndex is the indexed map of live rows by entity key.
	DBIndex map[string]DBItem

	// LedgerIndex is the indexed map of ledger aggregates by entity key.
	LedgerIndex map[string]LedgerItem

	// SnapshotIndex is the indexed map of snapshot rows by entity key.
	SnapshotIndex map[string]SnapshotItem

	// Built is the timestamp when this cache was built.
	Built time.Time

	// TTL is the time-to-live for this cache.
	TTL time.Duration
}

// IsExpired returns true if this cache has expired based on its TTL.
func (c *ReconcileCache) IsExpired() bool {
	if c.TTL == 0 {
		return true // No caching
	}
	return time.Since(c.Built) > c.TTL
}

// cacheStore holds all reconcile caches keyed by spec cache key.
type cacheStore struct {
	mu     sync.RWMutex
	caches map[string]*ReconcileCache
	sf     singleflight.Group
}

// globalCacheStore is the singleton cache store for all reconcile operations.
var globalCacheStore = &cacheStore{
	caches: make(map[string]*ReconcileCache),
}

// BuildCache loads the three indices concurrently. The first failure cancels the
// other loads. The result is not stored; use GetOrBuildCache for that.
func BuildCache(ctx context.Context, spec *Spec) (*ReconcileCache, error) {
	cache := &ReconcileCache{TTL: spec.CacheTTL}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cache.DBIndex, err = spec.Adapter.LoadDBIndex(gctx)
		return err
	})
	g.Go(func() (err error) {
		cache.LedgerIndex, err = spec.Adapter.LoadLedgerIndex(gctx)
		return err
	})
	g.Go(func() (err error) {
		cache.SnapshotIndex, err = spec.Adapter.LoadSnapshotIndex(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cache.Built = time.Now()
	return cache, nil
}

// GetOrBuildCache returns the stored cache for spec while it is fresh, and builds a
// new one otherwise. Concurrent builds for the same spec share one load. Only specs
// with a positive CacheTTL are stored.
func GetOrBuildCache(ctx context.Context, spec *Spec) (*ReconcileCache, error) {
	key := spec.CacheKey()
	if cache := globalCacheStore.fresh(key); cache != nil {
		return cache, nil
	}

	result, err, _ := globalCacheStore.sf.Do(key, func() (any, error) {
		// Another caller may have stored it while this one waited.
		if cache := globalCacheStore.fresh(key); cache != nil {
			return cache, nil
		}
		cache, err := BuildCache(ctx, spec)
		if err != nil {
			return nil, err
		}
		if spec.CacheTTL > 0 {
			globalCacheStore.mu.Lock()
			globalCacheStore.caches[key] = cache
			globalCacheStore.mu.Unlock()
		}
		return cache, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*ReconcileCache), nil
}

func (s *cacheStore) fresh(key string) *ReconcileCache {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cache, ok := s.caches[key]; ok && !cache.IsExpired() {
		return cache
	}
	return nil
}

// InvalidateCache removes the cache for the given spec from the store.
// Repairs call it so the next report sees their effect.
func InvalidateCache(spec *Spec) {
	cacheKey := spec.CacheKey()
	globalCacheStore.mu.Lock()
	delete(globalCacheStore.caches, cacheKey)
	globalCacheStore.mu.Unlock()
}
