package scene

import (
	"github.com/gdamore/tcell/v2"

	"overworld/internal/input"
	"overworld/internal/worlds"
)

// LandingScene is the splash shown before the game is mounted.
type LandingScene struct {
	g     *Game
	mouse input.MouseTracker
}

func (l *LandingScene) Name() Name { return Landing }

func (l *LandingScene) Enter(g *Game) {
	l.g = g
	l.mouse.Sync(g.ButtonHeld())
}

func (l *LandingScene) Exit()          {}
func (l *LandingScene) Update(float64) {}

func (l *LandingScene) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEnter:
			l.g.Start(Boot)
		case ev.Key() == tcell.KeyEscape:
			if !l.g.EscapeRepeated() {
				l.g.Quit()
			}
		case ev.Key() == tcell.KeyCtrlC,
			ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			l.g.Quit()
		}
	case *tcell.EventMouse:
		if l.mouse.Track(ev) == input.EdgeDown {
			l.g.Start(Boot)
		}
	}
}

func (l *LandingScene) Draw(s tcell.Screen) {
	_, h := s.Size()
	title := tcell.StyleDefault.Foreground(tcell.NewHexColor(0x14b8a6)).Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.NewHexColor(0x94a3b8))
	putCentered(s, h/2-2, "PORTFOLIO OVERWORLD", title)
	putCentered(s, h/2, "A résumé you can play", dim)
	putCentered(s, h/2+2, "Press ENTER to play   ·   ESC to quit", tcell.StyleDefault)
}

// BootScene mounts a fresh game, publishes the world list and hands over to
// the menu.
type BootScene struct{}

func (b *BootScene) Name() Name { return Boot }

func (b *BootScene) Enter(g *Game) {
	g.mount()
	g.Registry.Set(worlds.KeyPortfolioWorlds, g.worlds)
	g.Modals.RegisterWorlds(g.worlds)
	if g.preselect != "" && worlds.IndexOf(g.worlds, g.preselect) >= 0 {
		g.Registry.Set(worlds.KeySelectedWorldID, g.preselect)
	}
	g.Log.Printf("boot: %d worlds registered", len(g.worlds))
	g.Start(Menu)
}

func (b *BootScene) Exit()                  {}
func (b *BootScene) HandleEvent(tcell.Event) {}
func (b *BootScene) Update(float64)         {}
func (b *BootScene) Draw(tcell.Screen)      {}
