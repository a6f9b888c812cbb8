package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGet_Missing(t *testing.T) {
	c := New(time.Minute)

	if _, ok := c.Get("nope"); ok {
		t.Error("expected miss for absent key")
	}
}

func TestPutGet_WithinTTL(t *testing.T) {
	c := New(time.Minute)
	c.Put("k", 42, time.Minute)

	v, ok := c.Get("k")
	if !ok {
		t.Fatal("expected hit within TTL")
	}
	if v.(int) != 42 {
		t.Errorf("value = %v, want 42", v)
	}
}

func TestGet_Expired(t *testing.T) {
	c := New(time.Minute)
	base := time.Now()
	c.now = func() time.Time { return base }
	c.Put("k", "v", 10*time.Second)

	// Exactly at TTL the entry is treated as absent.
	c.now = func() time.Time { return base.Add(10 * time.Second) }
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss at TTL boundary")
	}
}

func TestResolve_CachedValueSkipsProducer(t *testing.T) {
	c := New(time.Minute)
	c.Put("k", "cached", time.Minute)

	v, err := c.Resolve(context.Background(), "k", func(context.Context) (any, error) {
		t.Fatal("producer must not run for a live value")
		return nil, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if v.(string) != "cached" {
		t.Errorf("value = %v, want cached", v)
	}
}

func TestResolve_Coalescing(t *testing.T) {
	c := New(time.Minute)

	var calls atomic.Int32
	release := make(chan struct{})
	producer := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "shared", nil
	}

	const n = 8
	var wg sync.WaitGroup
	results := make([]any, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.Resolve(context.Background(), "k", producer)
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = v
		}(i)
	}

	// Let all goroutines reach the in-flight slot, then release.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("producer invocations = %d, want 1", got)
	}
	for i, v := range results {
		if v.(string) != "shared" {
			t.Errorf("result[%d] = %v, want shared", i, v)
		}
	}
}

func TestResolve_ErrorNotCached(t *testing.T) {
	c := New(time.Minute)

	boom := errors.New("boom")
	var calls atomic.Int32
	producer := func(context.Context) (any, error) {
		calls.Add(1)
		return nil, boom
	}

	if _, err := c.Resolve(context.Background(), "k", producer); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	// Failure cleared the in-flight slot and cached nothing, so the next
	// Resolve runs the producer again.
	if _, err := c.Resolve(context.Background(), "k", producer); !errors.Is(err, boom) {
		t.Fatalf("second err = %v, want boom", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("producer invocations = %d, want 2", got)
	}
}

func TestResolve_CancelledWaiterDoesNotPoison(t *testing.T) {
	c := New(time.Minute)

	release := make(chan struct{})
	producer := func(context.Context) (any, error) {
		<-release
		return "late", nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := c.Resolve(ctx, "k", producer)
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled waiter err = %v, want context.Canceled", err)
	}

	// The producer keeps running and its value lands in the cache for
	// everyone else.
	close(release)
	v, err := c.Resolve(context.Background(), "k", func(context.Context) (any, error) {
		return nil, errors.New("must not run")
	})
	if err != nil {
		t.Fatal(err)
	}
	if v.(string) != "late" {
		t.Errorf("value = %v, want late", v)
	}
}

func TestResolve_Typed(t *testing.T) {
	c := New(time.Minute)

	v, err := Resolve(context.Background(), c, "k", func(context.Context) ([]int, error) {
		return []int{1, 2, 3}, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(v) != 3 {
		t.Errorf("len = %d, want 3", len(v))
	}
}
