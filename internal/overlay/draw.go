package overlay

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const closeHint = "[Enter] close"

// Draw renders the open modal centred on screen.
func (h *Host) Draw(s tcell.Screen) {
	m, ok := h.Active()
	if !ok {
		return
	}
	sw, sh := s.Size()

	body := []string{m.Summary, ""}
	for _, l := range m.Lines {
		body = append(body, "• "+l)
	}

	w := sw * 2 / 3
	if w < 30 {
		w = sw
	}
	inner := w - 4
	var lines []string
	for _, l := range body {
		lines = append(lines, wrap(l, inner)...)
	}
	ht := len(lines) + 5
	if ht > sh {
		ht = sh
	}
	x0 := (sw - w) / 2
	y0 := (sh - ht) / 2

	bg := tcell.StyleDefault.Background(tcell.NewRGBColor(15, 23, 42)).Foreground(tcell.ColorWhite)
	border := bg.Foreground(m.Color)
	for y := y0; y < y0+ht; y++ {
		for x := x0; x < x0+w; x++ {
			s.SetContent(x, y, ' ', nil, bg)
		}
	}
	for x := x0; x < x0+w; x++ {
		s.SetContent(x, y0, '─', nil, border)
		s.SetContent(x, y0+ht-1, '─', nil, border)
	}
	for y := y0; y < y0+ht; y++ {
		s.SetContent(x0, y, '│', nil, border)
		s.SetContent(x0+w-1, y, '│', nil, border)
	}
	s.SetContent(x0, y0, '┌', nil, border)
	s.SetContent(x0+w-1, y0, '┐', nil, border)
	s.SetContent(x0, y0+ht-1, '└', nil, border)
	s.SetContent(x0+w-1, y0+ht-1, '┘', nil, border)

	end := putString(s, x0+2, y0+1, m.Title, border.Bold(true))
	for x := x0 + 2; x < end && x < x0+w-2; x++ {
		s.SetContent(x, y0+2, '┄', nil, border)
	}
	for i, l := range lines {
		if y0+3+i >= y0+ht-1 {
			break
		}
		putString(s, x0+2, y0+3+i, l, bg)
	}
	putString(s, x0+w-2-len(closeHint), y0+ht-1, closeHint, border)
}

func putString(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// wrap breaks text into lines no wider than width cells.
func wrap(text string, width int) []string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return []string{text}
	}
	var out []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && runewidth.StringWidth(line.String())+1+runewidth.StringWidth(word) > width {
			out = append(out, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		out = append(out, line.String())
	}
	return out
}
