package crossing

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/resources"
)

func TestScreenCanvasCell(t *testing.T) {
	screen := core.NewScreen(40, 20)
	c := NewScreenCanvas(screen, core.NewRect(2, 1, 35, 18), 101, 83)

	tests := []struct {
		x, y         float64
		wantX, wantY int
	}{
		{0, 0, 2, 1},
		{101, 83, 9, 4},
		{404, 415, 30, 16},
		{200, 440, 16, 17},
		{0, -20, 2, 0},
	}

	for _, tc := range tests {
		gotX, gotY := c.Cell(tc.x, tc.y)
		if gotX != tc.wantX || gotY != tc.wantY {
			t.Errorf("Cell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, gotX, gotY, tc.wantX, tc.wantY)
		}
	}
}

func TestScreenCanvasDrawImage(t *testing.T) {
	screen := core.NewScreen(40, 20)
	c := NewScreenCanvas(screen, core.NewRect(0, 0, 35, 18), 101, 83)
	screen.Set(1, 0, '~')

	img := &resources.Sprite{Rows: []string{"a b", "ccc"}, Width: 3, Height: 2, Color: core.ColorRed, OffsetY: 83}
	c.DrawImage(img, 0, -83)

	if screen.Get(0, 0) != 'a' || screen.Get(2, 0) != 'b' {
		t.Errorf("row 0 = %q, expected sprite art", screen.Row(0))
	}
	if screen.Get(1, 0) != '~' {
		t.Error("space in sprite should be transparent")
	}
	if cell := screen.GetCell(0, 1); cell.Rune != 'c' || cell.Color != core.ColorRed {
		t.Errorf("GetCell(0,1) = %+v, expected red 'c'", cell)
	}
}

func TestScreenCanvasClipsImages(t *testing.T) {
	screen := core.NewScreen(40, 20)
	c := NewScreenCanvas(screen, core.NewRect(5, 1, 35, 18), 101, 83)

	img := &resources.Sprite{Rows: []string{"#######"}, Width: 7, Height: 1}
	c.DrawImage(img, -50, 0)

	for x := 0; x < 5; x++ {
		if screen.Get(x, 1) != ' ' {
			t.Errorf("drew outside the board at x=%d", x)
		}
	}
	if screen.Get(5, 1) != '#' {
		t.Error("visible part of the sprite was not drawn")
	}
}

func TestScreenCanvasSkipsOffBoardImages(t *testing.T) {
	screen := core.NewScreen(60, 20)
	c := NewScreenCanvas(screen, core.NewRect(5, 1, 35, 18), 101, 83)

	img := &resources.Sprite{Rows: []string{"#######"}, Width: 7, Height: 1}
	tests := []struct {
		name string
		x, y float64
	}{
		{"left of board", -101, 0},
		{"right of board", 505, 0},
		{"above board", 0, -83},
		{"below board", 0, 498},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			screen.Clear()
			c.DrawImage(img, tc.x, tc.y)
			if got := screen.String(); strings.ContainsRune(got, '#') {
				t.Errorf("DrawImage(%v, %v) drew outside the board:\n%s", tc.x, tc.y, got)
			}
		})
	}
}

func TestScreenCanvasText(t *testing.T) {
	screen := core.NewScreen(40, 20)
	c := NewScreenCanvas(screen, core.NewRect(2, 1, 35, 18), 101, 83)
	screen.DrawText(0, 0, "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx")

	c.ClearRect(0, -40, 505, 40)
	c.FillText("Score 5", 10, -20)

	if got := screen.Row(0); got[:2] != "xx" || got[2:12] != " Score 5  " {
		t.Errorf("row 0 = %q", got)
	}
	if screen.GetCell(3, 0).Color != core.ColorBrightWhite {
		t.Error("HUD text should use the canvas text color")
	}
}
