package resources

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
)

// Cache memoizes sprites by path.
//
// A path becomes tracked the first time it is passed to Load and stays
// pending until its fetch succeeds. A failed fetch is logged and the path
// stays pending, so the cache never becomes ready.
type Cache struct {
	fetcher Fetcher
	logger  *log.Logger

	mu             sync.Mutex
	entries        map[string]*Sprite // nil value marks a pending load
	order          []string
	pending        int
	readyCallbacks []func()
}

// NewCache creates a cache that loads through fetcher.
// A nil logger uses log.Default().
func NewCache(fetcher Fetcher, logger *log.Logger) *Cache {
	if logger == nil {
		logger = log.Default()
	}
	return &Cache{
		fetcher: fetcher,
		logger:  logger,
		entries: make(map[string]*Sprite),
	}
}

// Load starts fetching every path that is not already tracked.
// Paths that are pending or loaded are ignored. Load never blocks.
func (c *Cache) Load(paths ...string) {
	for _, path := range paths {
		c.load(path)
	}
}

func (c *Cache) load(path string) {
	c.mu.Lock()
	if _, tracked := c.entries[path]; tracked {
		c.mu.Unlock()
		return
	}
	c.entries[path] = nil
	c.order = append(c.order, path)
	c.pending++
	c.mu.Unlock()

	go c.fetch(path)
}

// fetch runs on its own goroutine and fires the ready callbacks when it
// completes the last pending load.
func (c *Cache) fetch(path string) {
	sprite, err := c.fetcher.Fetch(path)
	if err != nil {
		c.logger.Warn("sprite load failed, left pending", "path", path, "error", err)
		return
	}

	c.mu.Lock()
	c.entries[path] = sprite
	c.pending--
	var callbacks []func()
	if c.pending == 0 {
		callbacks = c.readyCallbacks
		c.readyCallbacks = nil
	}
	total := len(c.order)
	c.mu.Unlock()

	c.logger.Debug("sprite loaded", "path", path)
	if c.IsReady() {
		c.logger.Info("sprites ready", "count", total, "callbacks", len(callbacks))
	}

	for _, fn := range callbacks {
		fn()
	}
}

// Get returns the loaded sprite for path. The boolean is false while the
// path is pending or was never requested. Get never starts a load.
func (c *Cache) Get(path string) (*Sprite, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sprite := c.entries[path]
	return sprite, sprite != nil
}

// IsReady reports whether every path ever passed to Load has loaded.
func (c *Cache) IsReady() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pending == 0
}

// OnReady registers fn to run when the last pending load completes.
// Callbacks run once, in registration order, on the goroutine that
// finished the load. Registering after the cache is ready does not
// invoke fn; use WaitReady when that matters.
func (c *Cache) OnReady(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.readyCallbacks = append(c.readyCallbacks, fn)
}

// WaitReady blocks until the cache is ready or ctx is done.
func (c *Cache) WaitReady(ctx context.Context) error {
	done := make(chan struct{})
	c.OnReady(func() { close(done) })

	if c.IsReady() {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Progress returns how many tracked paths have loaded and how many are tracked.
func (c *Cache) Progress() (loaded, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.order) - c.pending, len(c.order)
}

// Paths returns every tracked path in the order it was first requested.
func (c *Cache) Paths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	paths := make([]string, len(c.order))
	copy(paths, c.order)
	return paths
}
