package crossing

import (
	"math"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/resources"
)

// Terminal cells used for one board cell.
const (
	CellsPerColumn = 7
	LinesPerRow    = 3
)

// Canvas is the drawing surface the world renders onto.
// Coordinates are board pixels.
type Canvas interface {
	DrawImage(img *resources.Sprite, x, y float64)
	FillText(text string, x, y float64)
	ClearRect(x, y, w, h float64)
}

// ScreenCanvas projects board pixels onto a core.Screen.
// One board column maps to CellsPerColumn cells and one row to LinesPerRow lines.
type ScreenCanvas struct {
	dst    *core.Screen
	board  core.Rect // Board area on the screen; images are clipped to it
	scaleX float64
	scaleY float64

	TextColor core.Color
}

// NewScreenCanvas creates a canvas whose pixel origin is the top-left corner
// of board. colWidth and rowHeight are the board cell size in pixels.
func NewScreenCanvas(dst *core.Screen, board core.Rect, colWidth, rowHeight float64) *ScreenCanvas {
	return &ScreenCanvas{
		dst:       dst,
		board:     board,
		scaleX:    CellsPerColumn / colWidth,
		scaleY:    LinesPerRow / rowHeight,
		TextColor: core.ColorBrightWhite,
	}
}

// Cell converts a pixel position to a screen cell.
func (c *ScreenCanvas) Cell(x, y float64) (int, int) {
	return c.board.X + int(math.Round(x*c.scaleX)), c.board.Y + int(math.Round(y*c.scaleY))
}

// DrawImage draws img with its top-left corner at (x, y+img.OffsetY).
// Spaces are transparent.
func (c *ScreenCanvas) DrawImage(img *resources.Sprite, x, y float64) {
	cx, cy := c.Cell(x, y+img.OffsetY)
	if !core.NewRect(cx, cy, img.Width, img.Height).Intersects(c.board) {
		return
	}

	for dy, row := range img.Rows {
		dx := 0
		for _, r := range row {
			px, py := cx+dx, cy+dy
			if r != ' ' && c.board.Contains(px, py) {
				c.dst.SetColored(px, py, r, img.Color)
			}
			dx++
		}
	}
}

// FillText writes text starting at (x, y). Text is not clipped to the
// board, so the HUD can sit above it at negative y.
func (c *ScreenCanvas) FillText(text string, x, y float64) {
	cx, cy := c.Cell(x, y)
	c.dst.DrawTextColored(cx, cy, text, c.TextColor)
}

// ClearRect blanks the cells covering the pixel rectangle.
func (c *ScreenCanvas) ClearRect(x, y, w, h float64) {
	x0, y0 := c.Cell(x, y)
	x1, y1 := c.Cell(x+w, y+h)
	c.dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), ' ')
}
