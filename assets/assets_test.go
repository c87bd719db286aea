package assets

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/resources"
)

func TestSpritesParse(t *testing.T) {
	paths, err := fs.Glob(FS, "images/*.yaml")
	if err != nil {
		t.Fatalf("Glob() failed: %v", err)
	}
	if len(paths) != 6 {
		t.Errorf("found %d sprites, expected 6", len(paths))
	}

	for _, path := range paths {
		data, err := fs.ReadFile(FS, path)
		if err != nil {
			t.Fatalf("ReadFile(%s) failed: %v", path, err)
		}
		s, err := resources.ParseSprite(data)
		if err != nil {
			t.Errorf("%s: %v", path, err)
			continue
		}

		// Art is sized for a 7x3 board cell.
		if s.Width != 7 {
			t.Errorf("%s: width %d, expected 7", path, s.Width)
		}
		if strings.HasSuffix(path, "-block.yaml") && (s.Height != 3 || s.OffsetY != 0) {
			t.Errorf("%s: tile is %d lines with offset %v, expected 3 and 0", path, s.Height, s.OffsetY)
		}
	}
}
