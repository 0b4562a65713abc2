package store

import (
	"context"
	"net/http"
	"sync"

	"naturalize/internal/profile/models"
)

type cacheKey struct{}

// requestCache memoizes profile reads for a single request.
type requestCache struct {
	mu      sync.Mutex
	entries map[string]cachedValue
}

type cachedValue struct {
	value string
	ok    bool
}

// WithRequestCache installs a fresh, empty memo into ctx. Nothing survives
// past the request that created it.
func WithRequestCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, cacheKey{}, &requestCache{entries: make(map[string]cachedValue)})
}

// RequestCacheMiddleware scopes one memo to each HTTP request.
func RequestCacheMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithRequestCache(r.Context())))
	})
}

func cacheFrom(ctx context.Context) *requestCache {
	c, _ := ctx.Value(cacheKey{}).(*requestCache)
	return c
}

// CachedStore decorates a Store with the request-scoped memo. Without a memo
// in the context it is a plain pass-through.
type CachedStore struct {
	next Store
}

func NewCached(next Store) *CachedStore {
	return &CachedStore{next: next}
}

func memoKey(userID, key string) string {
	return userID + "\x00" + key
}

func (s *CachedStore) Get(ctx context.Context, userID, key string) (string, bool, error) {
	c := cacheFrom(ctx)
	if c != nil {
		c.mu.Lock()
		hit, found := c.entries[memoKey(userID, key)]
		c.mu.Unlock()
		if found {
			return hit.value, hit.ok, nil
		}
	}
	v, ok, err := s.next.Get(ctx, userID, key)
	if err != nil {
		return "", false, err
	}
	if c != nil {
		c.mu.Lock()
		c.entries[memoKey(userID, key)] = cachedValue{value: v, ok: ok}
		c.mu.Unlock()
	}
	return v, ok, nil
}

func (s *CachedStore) Set(ctx context.Context, userID, key, value string) error {
	return s.Apply(ctx, userID, []models.Mutation{models.SetOp(key, value)})
}

func (s *CachedStore) Delete(ctx context.Context, userID, key string) error {
	return s.Apply(ctx, userID, []models.Mutation{models.DeleteOp(key)})
}

// Apply writes through and then drops the touched keys from the memo, so a
// failed write never leaves a cached value that the store does not hold.
func (s *CachedStore) Apply(ctx context.Context, userID string, mutations []models.Mutation) error {
	err := s.next.Apply(ctx, userID, mutations)
	if c := cacheFrom(ctx); c != nil {
		c.mu.Lock()
		for _, m := range mutations {
			delete(c.entries, memoKey(userID, m.Key))
		}
		c.mu.Unlock()
	}
	return err
}
