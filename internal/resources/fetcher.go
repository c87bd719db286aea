package resources

import (
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"
)

// Fetcher retrieves and decodes a single sprite. Fetch may block; the
// cache always calls it from its own goroutine.
type Fetcher interface {
	Fetch(path string) (*Sprite, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(path string) (*Sprite, error)

// Fetch calls f(path).
func (f FetcherFunc) Fetch(path string) (*Sprite, error) {
	return f(path)
}

// FSFetcher reads sprite files from a file system.
// Concurrent fetches of the same path share a single read and the same
// *Sprite, so several caches can share one fetcher.
type FSFetcher struct {
	fsys   fs.FS
	group  singleflight.Group
	logger *log.Logger
}

// NewFSFetcher creates a fetcher over fsys. A nil logger uses log.Default().
func NewFSFetcher(fsys fs.FS, logger *log.Logger) *FSFetcher {
	if logger == nil {
		logger = log.Default()
	}
	return &FSFetcher{
		fsys:   fsys,
		logger: logger,
	}
}

// Fetch reads and parses the sprite at path.
func (f *FSFetcher) Fetch(path string) (*Sprite, error) {
	v, err, shared := f.group.Do(path, func() (any, error) {
		data, err := fs.ReadFile(f.fsys, path)
		if err != nil {
			return nil, fmt.Errorf("resources: cannot read %s: %w", path, err)
		}
		sprite, err := ParseSprite(data)
		if err != nil {
			return nil, fmt.Errorf("resources: cannot parse %s: %w", path, err)
		}
		return sprite, nil
	})
	if err != nil {
		return nil, err
	}

	f.logger.Debug("sprite fetched", "path", path, "shared", shared)
	return v.(*Sprite), nil
}
