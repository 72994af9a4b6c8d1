package scene

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"overworld/internal/config"
	"overworld/internal/worlds"
)

// viewport maps logical canvas pixels onto terminal cells.
type viewport struct {
	w, h int
}

func (v viewport) cellX(x float64) int { return int(x * float64(v.w) / config.CanvasWidth) }
func (v viewport) cellY(y float64) int { return int(y * float64(v.h) / config.CanvasHeight) }

// cellRect returns the inclusive-exclusive cell span covered by r, at least
// one cell in each direction.
func (v viewport) cellRect(r worlds.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = v.cellX(r.Left()), v.cellY(r.Top())
	x1, y1 = v.cellX(r.Right()), v.cellY(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return
}

func fillRect(s tcell.Screen, x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.SetContent(x, y, ch, nil, style)
		}
	}
}

func putString(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func putCentered(s tcell.Screen, y int, text string, style tcell.Style) (int, int) {
	w, _ := s.Size()
	x := (w - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	return x, putString(s, x, y, text, style)
}

// hitBox is a clickable screen region.
type hitBox struct {
	x0, y0, x1, y1 int
}

func (b hitBox) contains(x, y int) bool {
	return x >= b.x0 && x < b.x1 && y >= b.y0 && y < b.y1
}

func worldColor(w worlds.PortfolioWorld) tcell.Color {
	return tcell.NewHexColor(int32(w.Color))
}
