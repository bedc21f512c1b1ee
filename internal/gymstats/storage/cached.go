package storage

import (
	"context"

	"github.com/2beens/workouttracker/internal/telemetry/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

var _ Store = (*CachedStore)(nil)

// CachedStore is a write-through cache in front of another store.
// Reads are served from memory once a key has been seen, writes always
// hit the underlying store first.
type CachedStore struct {
	next           Store
	cache          *freecache.Cache
	metricsManager *metrics.Manager
}

func NewCachedStore(next Store, cacheSizeMB int, metricsManager *metrics.Manager) *CachedStore {
	return &CachedStore{
		next:           next,
		cache:          freecache.NewCache(cacheSizeMB * 1024 * 1024),
		metricsManager: metricsManager,
	}
}

func (s *CachedStore) Get(ctx context.Context, key string) ([]byte, error) {
	if value, err := s.cache.Get([]byte(key)); err == nil {
		s.countLookup("hit")
		return value, nil
	}
	s.countLookup("miss")

	value, err := s.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	s.put(key, value)
	return value, nil
}

func (s *CachedStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.next.Set(ctx, key, value); err != nil {
		// the underlying write may or may not have happened
		s.cache.Del([]byte(key))
		return err
	}
	s.put(key, value)
	return nil
}

func (s *CachedStore) Close() error {
	return s.next.Close()
}

// Unwrap returns the underlying store.
func (s *CachedStore) Unwrap() Store {
	return s.next
}

func (s *CachedStore) put(key string, value []byte) {
	if err := s.cache.Set([]byte(key), value, 0); err != nil {
		// e.g. entry larger than 1/1024 of the cache, keep serving from the store
		log.Debugf("store cache skip [%s]: %s", key, err)
		s.cache.Del([]byte(key))
	}
}

func (s *CachedStore) countLookup(result string) {
	if s.metricsManager != nil {
		s.metricsManager.CounterStoreCache.WithLabelValues(result).Inc()
	}
}
