package scene

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"overworld/internal/audio"
	"overworld/internal/input"
	"overworld/internal/worlds"
)

const (
	menuTitle    = "Portfolio Overworld"
	menuSubtitle = "A playable CV built in the terminal"
	menuStart    = " PRESS ENTER OR CLICK TO PLAY "
)

// MenuScene lists the worlds and launches the selected one.
type MenuScene struct {
	g        *Game
	worlds   []worlds.PortfolioWorld
	selected int
	mouse    input.MouseTracker
}

type menuLayout struct {
	titleY, subtitleY int
	rows              []hitBox
	start             hitBox
}

func (m *MenuScene) Name() Name { return Menu }

func (m *MenuScene) Enter(g *Game) {
	m.g = g
	m.mouse.Sync(g.ButtonHeld())
	m.worlds = g.Registry.Worlds()
	m.selected = 0
	if i := worlds.IndexOf(m.worlds, g.Registry.SelectedWorldID()); i >= 0 {
		m.selected = i
	}
}

func (m *MenuScene) Exit() {}

// Selected returns the highlighted world.
func (m *MenuScene) Selected() (worlds.PortfolioWorld, bool) {
	if m.selected < 0 || m.selected >= len(m.worlds) {
		return worlds.PortfolioWorld{}, false
	}
	return m.worlds[m.selected], true
}

// SelectID highlights the world with the given id and records it in the
// registry. Unknown ids are ignored.
func (m *MenuScene) SelectID(id string) bool {
	i := worlds.IndexOf(m.worlds, id)
	if i < 0 {
		return false
	}
	m.selectIndex(i)
	return true
}

func (m *MenuScene) selectIndex(i int) {
	if len(m.worlds) == 0 {
		return
	}
	i = (i%len(m.worlds) + len(m.worlds)) % len(m.worlds)
	if i != m.selected {
		m.g.Sound.Play(audio.CueSelect)
	}
	m.selected = i
	m.g.Registry.Set(worlds.KeySelectedWorldID, m.worlds[i].ID)
}

// Launch starts the world scene with the current selection.
func (m *MenuScene) Launch() {
	if w, ok := m.Selected(); ok {
		m.g.Registry.Set(worlds.KeySelectedWorldID, w.ID)
	}
	m.g.Start(World)
}

func (m *MenuScene) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune && ev.Rune() >= '1' && ev.Rune() <= '9' {
			if i := int(ev.Rune() - '1'); i < len(m.worlds) {
				m.selectIndex(i)
			}
			return
		}
		if ev.Key() == tcell.KeyEscape {
			if !m.g.EscapeRepeated() {
				m.g.Start(Landing)
			}
			return
		}
		a, ok := input.ActionFor(ev)
		if !ok {
			return
		}
		switch a {
		case input.ActionUp:
			m.selectIndex(m.selected - 1)
		case input.ActionDown:
			m.selectIndex(m.selected + 1)
		case input.ActionConfirm:
			m.Launch()
		}
	case *tcell.EventMouse:
		if m.mouse.Track(ev) != input.EdgeDown {
			return
		}
		x, y := m.mouse.Position()
		w, h := m.g.Size()
		lay := m.layout(w, h)
		if lay.start.contains(x, y) {
			m.Launch()
			return
		}
		for i, r := range lay.rows {
			if r.contains(x, y) {
				m.selectIndex(i)
				return
			}
		}
	}
}

func (m *MenuScene) Update(float64) {}

func (m *MenuScene) layout(w, h int) menuLayout {
	lay := menuLayout{
		titleY:    h * 22 / 100,
		subtitleY: h*22/100 + 2,
	}
	startY := h * 82 / 100
	rowsY := lay.subtitleY + 3
	if free := startY - 1 - rowsY; free < len(m.worlds) && free >= 0 {
		rowsY -= len(m.worlds) - free
		if rowsY < lay.subtitleY+1 {
			rowsY = lay.subtitleY + 1
		}
	}
	x0 := w / 6
	for i := range m.worlds {
		lay.rows = append(lay.rows, hitBox{x0: x0, y0: rowsY + i, x1: w - x0, y1: rowsY + i + 1})
	}
	sx := (w - len(menuStart)) / 2
	lay.start = hitBox{x0: sx, y0: startY, x1: sx + len(menuStart), y1: startY + 1}
	return lay
}

func (m *MenuScene) Draw(s tcell.Screen) {
	w, h := s.Size()
	lay := m.layout(w, h)

	putCentered(s, lay.titleY, menuTitle, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	putCentered(s, lay.subtitleY, menuSubtitle, tcell.StyleDefault.Foreground(tcell.NewHexColor(0xcbd5f5)))

	label := tcell.StyleDefault.Foreground(tcell.NewHexColor(0xf1f5f9))
	summary := tcell.StyleDefault.Foreground(tcell.NewHexColor(0x94a3b8))
	for i, world := range m.worlds {
		r := lay.rows[i]
		style := label
		marker := "  "
		if i == m.selected {
			style = style.Reverse(true)
			marker = "▶ "
		}
		x := putString(s, r.x0, r.y0, marker, label)
		x = putString(s, x, r.y0, "■ ", tcell.StyleDefault.Foreground(worldColor(world)))
		x = putString(s, x, r.y0, fmt.Sprintf("%d. %-12s", i+1, world.Title), style)
		text := " " + world.Summary
		if room := r.x1 - x; room > 0 && len([]rune(text)) > room {
			text = string([]rune(text)[:room])
		}
		putString(s, x, r.y0, text, summary)
	}

	button := tcell.StyleDefault.Background(tcell.NewHexColor(0x14b8a6)).Foreground(tcell.NewHexColor(0x031522))
	putString(s, lay.start.x0, lay.start.y0, menuStart, button)
	putCentered(s, h-1, "↑↓ or 1-9 select · ENTER play · ESC leave", summary)
}
