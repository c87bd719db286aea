package resources

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

// gatedFetcher blocks each fetch until the test releases its path.
type gatedFetcher struct {
	mu    sync.Mutex
	gates map[string]chan struct{}
	fail  map[string]bool
	calls atomic.Int32
}

func newGatedFetcher() *gatedFetcher {
	return &gatedFetcher{
		gates: make(map[string]chan struct{}),
		fail:  make(map[string]bool),
	}
}

func (f *gatedFetcher) gate(path string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()

	g, ok := f.gates[path]
	if !ok {
		g = make(chan struct{})
		f.gates[path] = g
	}
	return g
}

func (f *gatedFetcher) release(path string) {
	close(f.gate(path))
}

func (f *gatedFetcher) Fetch(path string) (*Sprite, error) {
	f.calls.Add(1)
	<-f.gate(path)

	f.mu.Lock()
	fail := f.fail[path]
	f.mu.Unlock()
	if fail {
		return nil, errors.New("not found")
	}
	return &Sprite{Name: path, Rows: []string{"#"}, Width: 1, Height: 1}, nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// waitFor polls cond until it holds or a second passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestCacheReadyGate(t *testing.T) {
	f := newGatedFetcher()
	c := NewCache(f, quietLogger())

	fired := make(chan struct{}, 4)
	var count atomic.Int32
	c.OnReady(func() {
		count.Add(1)
		fired <- struct{}{}
	})

	c.Load("a.yaml", "b.yaml")

	if c.IsReady() {
		t.Fatal("cache should not be ready before any load completes")
	}
	if _, ok := c.Get("a.yaml"); ok {
		t.Error("Get should report pending sprite as not loaded")
	}

	f.release("a.yaml")
	waitFor(t, "first load", func() bool {
		loaded, _ := c.Progress()
		return loaded == 1
	})

	if c.IsReady() {
		t.Error("cache should not be ready with one load pending")
	}
	if count.Load() != 0 {
		t.Error("ready callback fired before the last load completed")
	}
	if s, ok := c.Get("a.yaml"); !ok || s.Name != "a.yaml" {
		t.Errorf("Get(a.yaml) = %v, %v; expected loaded sprite", s, ok)
	}

	f.release("b.yaml")
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("ready callback did not fire")
	}

	if !c.IsReady() {
		t.Error("cache should be ready after all loads complete")
	}

	// Give any stray second invocation a chance to show up
	time.Sleep(10 * time.Millisecond)
	if count.Load() != 1 {
		t.Errorf("ready callback fired %d times, expected 1", count.Load())
	}
}

func TestCacheCallbackOrder(t *testing.T) {
	f := newGatedFetcher()
	c := NewCache(f, quietLogger())

	var mu sync.Mutex
	var order []int
	done := make(chan struct{})
	for i := 1; i <= 3; i++ {
		c.OnReady(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			if i == 3 {
				close(done)
			}
		})
	}

	c.Load("only.yaml")
	f.release("only.yaml")

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callbacks did not fire")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("callbacks ran in order %v, expected [1 2 3]", order)
	}
}

func TestCacheDuplicateLoads(t *testing.T) {
	f := newGatedFetcher()
	c := NewCache(f, quietLogger())

	c.Load("a.yaml")
	c.Load("a.yaml", "a.yaml")
	f.release("a.yaml")

	if err := c.WaitReady(context.Background()); err != nil {
		t.Fatalf("WaitReady() failed: %v", err)
	}

	// Loading an already loaded path is also a no-op
	c.Load("a.yaml")

	if calls := f.calls.Load(); calls != 1 {
		t.Errorf("fetcher called %d times, expected 1", calls)
	}
	if _, total := c.Progress(); total != 1 {
		t.Errorf("tracked %d paths, expected 1", total)
	}
	if !c.IsReady() {
		t.Error("reloading a loaded path should not make the cache pending")
	}
}

func TestCacheGetDoesNotLoad(t *testing.T) {
	f := newGatedFetcher()
	c := NewCache(f, quietLogger())

	if _, ok := c.Get("never.yaml"); ok {
		t.Error("Get of an unknown path should report not loaded")
	}
	if f.calls.Load() != 0 {
		t.Error("Get should not start a fetch")
	}
	if !c.IsReady() {
		t.Error("an empty cache is ready")
	}
}

func TestCacheFailedFetchStaysPending(t *testing.T) {
	f := newGatedFetcher()
	f.fail["missing.yaml"] = true
	c := NewCache(f, quietLogger())

	c.Load("ok.yaml", "missing.yaml")
	f.release("ok.yaml")
	f.release("missing.yaml")

	waitFor(t, "both fetches", func() bool { return f.calls.Load() == 2 })
	waitFor(t, "ok.yaml", func() bool {
		_, ok := c.Get("ok.yaml")
		return ok
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := c.WaitReady(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("WaitReady() = %v, expected deadline exceeded", err)
	}
	if c.IsReady() {
		t.Error("cache should stay pending after a failed fetch")
	}
	if loaded, total := c.Progress(); loaded != 1 || total != 2 {
		t.Errorf("Progress() = (%d, %d), expected (1, 2)", loaded, total)
	}
}

func TestCacheOnReadyNotRetroactive(t *testing.T) {
	f := newGatedFetcher()
	c := NewCache(f, quietLogger())

	c.Load("a.yaml")
	f.release("a.yaml")
	if err := c.WaitReady(context.Background()); err != nil {
		t.Fatalf("WaitReady() failed: %v", err)
	}

	var called atomic.Bool
	c.OnReady(func() { called.Store(true) })
	time.Sleep(10 * time.Millisecond)

	if called.Load() {
		t.Error("OnReady after ready should not invoke the callback")
	}
}

func TestCachePaths(t *testing.T) {
	f := newGatedFetcher()
	c := NewCache(f, quietLogger())

	c.Load("b.yaml", "a.yaml", "b.yaml")
	paths := c.Paths()

	if len(paths) != 2 || paths[0] != "b.yaml" || paths[1] != "a.yaml" {
		t.Errorf("Paths() = %v, expected [b.yaml a.yaml]", paths)
	}

	f.release("a.yaml")
	f.release("b.yaml")
}
