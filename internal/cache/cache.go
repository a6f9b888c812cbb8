package cache

import (
	"context"
	"sync"
	"time"
)

// Cache is a TTL cache with in-flight coalescing. Concurrent Resolve calls
// for the same key share one producer invocation; the value store and the
// in-flight slots live behind a single mutex so both are consulted
// atomically before a new producer is started.
//
// Keys are caller-constructed strings that must encode every input that
// affects the result (e.g. "plan|GENERAL|2024-01-01|OX"); the cache has no
// knowledge of key semantics.
type Cache struct {
	mu       sync.Mutex
	values   map[string]entry
	inflight map[string]*call

	defaultTTL time.Duration

	// now can be overridden in tests.
	now func() time.Time
}

type entry struct {
	val     any
	expires time.Time
}

// call is one in-flight producer shared by every waiter for its key.
type call struct {
	done chan struct{}
	val  any
	err  error
}

// New creates a Cache whose Resolve stores successful values with
// defaultTTL.
func New(defaultTTL time.Duration) *Cache {
	return &Cache{
		values:     make(map[string]entry),
		inflight:   make(map[string]*call),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Get returns the live value for key, or ok=false if the key is absent or
// expired. Expiry is lazy: the expired entry is dropped on access.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(key)
}

func (c *Cache) getLocked(key string) (any, bool) {
	e, ok := c.values[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expires) {
		delete(c.values, key)
		return nil, false
	}
	return e.val, true
}

// Put stores val under key with the given TTL. A non-positive ttl falls
// back to the cache default.
func (c *Cache) Put(key string, val any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = entry{val: val, expires: c.now().Add(ttl)}
}

// Drop removes key from the value store.
func (c *Cache) Drop(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
}

// Reset clears all cached values. In-flight producers are left to settle.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = make(map[string]entry)
}

// Resolve returns the live cached value for key if one exists. Otherwise,
// if a producer for key is already in flight, it waits for that producer's
// outcome instead of starting another. Otherwise it invokes producer once:
// on success the value is stored with the default TTL, on failure the error
// is delivered to every waiter and nothing is cached.
//
// The producer runs detached from any single waiter's context: a caller
// whose ctx is cancelled gets ctx.Err() back, but the producer keeps
// running and its value may still satisfy other callers.
func (c *Cache) Resolve(ctx context.Context, key string, producer func(ctx context.Context) (any, error)) (any, error) {
	c.mu.Lock()
	if v, ok := c.getLocked(key); ok {
		c.mu.Unlock()
		return v, nil
	}
	if cl, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		return c.wait(ctx, cl)
	}

	cl := &call{done: make(chan struct{})}
	c.inflight[key] = cl
	c.mu.Unlock()

	go func() {
		val, err := producer(context.WithoutCancel(ctx))

		c.mu.Lock()
		cl.val, cl.err = val, err
		if err == nil {
			c.values[key] = entry{val: val, expires: c.now().Add(c.defaultTTL)}
		}
		delete(c.inflight, key)
		c.mu.Unlock()

		close(cl.done)
	}()

	return c.wait(ctx, cl)
}

func (c *Cache) wait(ctx context.Context, cl *call) (any, error) {
	select {
	case <-cl.done:
		return cl.val, cl.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Resolve is the typed variant of Cache.Resolve for callers that know the
// value type behind a key.
func Resolve[T any](ctx context.Context, c *Cache, key string, producer func(ctx context.Context) (T, error)) (T, error) {
	v, err := c.Resolve(ctx, key, func(ctx context.Context) (any, error) {
		return producer(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
