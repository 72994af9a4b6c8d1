// Package scene runs the scene lifecycle: Landing → Boot → Menu ⇄ World.
package scene

import (
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"overworld/internal/audio"
	"overworld/internal/clock"
	"overworld/internal/config"
	"overworld/internal/overlay"
	"overworld/internal/worlds"
)

type Name string

const (
	Landing Name = "LandingScene"
	Boot    Name = "BootScene"
	Menu    Name = "MenuScene"
	World   Name = "WorldScene"
)

// Scene is one screen of the game. A scene instance lives from Enter to
// Exit and is never reused.
type Scene interface {
	Name() Name
	Enter(g *Game)
	// Exit releases everything the scene registered: timers, gesture state,
	// open modals.
	Exit()
	HandleEvent(ev tcell.Event)
	Update(dt float64)
	Draw(s tcell.Screen)
}

// Options configure a Game.
type Options struct {
	Worlds         []worlds.PortfolioWorld
	Tuning         config.Tuning
	Clock          clock.Clock
	Sound          *audio.SoundManager
	Logger         *log.Logger
	PreselectWorld string
	StartScene     Name
}

// Game owns the active scene and the state shared across scenes.
type Game struct {
	Clock    clock.Clock
	Tuning   config.Tuning
	Registry *worlds.Registry
	Modals   *overlay.Host
	Sound    *audio.SoundManager
	Log      *log.Logger

	worlds    []worlds.PortfolioWorld
	preselect string

	factories map[Name]func() Scene
	active    Scene
	pending   Name
	quit      bool
	width     int
	height    int

	// button 1 level as of the last mouse event
	buttonDown bool
	lastEscape time.Time
	escRepeat  bool

	suspended atomic.Bool
}

func NewGame(opts Options) *Game {
	if opts.Clock == nil {
		opts.Clock = clock.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.Tuning.FPS == 0 {
		opts.Tuning = config.Defaults()
	}
	g := &Game{
		Clock:     opts.Clock,
		Tuning:    opts.Tuning,
		Sound:     opts.Sound,
		Log:       opts.Logger,
		worlds:    append([]worlds.PortfolioWorld(nil), opts.Worlds...),
		preselect: opts.PreselectWorld,
		width:     80,
		height:    24,
	}
	g.factories = map[Name]func() Scene{
		Landing: func() Scene { return &LandingScene{} },
		Boot:    func() Scene { return &BootScene{} },
		Menu:    func() Scene { return &MenuScene{} },
		World:   func() Scene { return &WorldScene{} },
	}
	g.mount()
	start := opts.StartScene
	if start == "" {
		start = Landing
	}
	g.Start(start)
	g.flush()
	return g
}

// mount creates fresh cross-scene state, as if a new game instance had
// been constructed.
func (g *Game) mount() {
	g.Registry = worlds.NewRegistry()
	g.Modals = overlay.NewHost()
	g.Modals.OnOpen = func(id string) {
		g.Log.Printf("modal open: %s", id)
		g.Sound.Play(audio.CueOpen)
	}
}

// Start requests a transition. It takes effect at the next frame boundary,
// after the current scene finishes its update.
func (g *Game) Start(name Name) {
	if _, ok := g.factories[name]; !ok {
		g.Log.Printf("unknown scene %q", name)
		return
	}
	g.pending = name
}

func (g *Game) flush() {
	for g.pending != "" {
		next := g.pending
		g.pending = ""
		if g.active != nil {
			g.active.Exit()
			g.Log.Printf("scene exit: %s", g.active.Name())
		}
		g.active = g.factories[next]()
		g.Log.Printf("scene enter: %s", next)
		g.active.Enter(g)
	}
}

func (g *Game) Active() Scene { return g.active }

// ButtonHeld reports whether mouse button 1 was down at the last mouse event.
// Scenes seed their trackers with it so a click that caused a transition does
// not count as a new press.
func (g *Game) ButtonHeld() bool { return g.buttonDown }

// EscapeRepeated reports whether the Escape being handled followed the
// previous one within the auto-repeat window. Held Escape must not unwind
// more than one scene.
func (g *Game) EscapeRepeated() bool { return g.escRepeat }

func (g *Game) Quit()      { g.quit = true }
func (g *Game) Done() bool { return g.quit }

// Size is the terminal size in cells.
func (g *Game) Size() (int, int) { return g.width, g.height }

func (g *Game) SetSize(w, h int) {
	if w > 0 {
		g.width = w
	}
	if h > 0 {
		g.height = h
	}
}

// SetInputSuspended toggles the external input lock, e.g. while the
// terminal window has lost focus.
func (g *Game) SetInputSuspended(v bool) { g.suspended.Store(v) }

// InputBlocked reports whether gameplay input is currently suspended.
func (g *Game) InputBlocked() bool {
	return g.suspended.Load() || g.Modals.InputBlocked()
}

func (g *Game) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.SetSize(ev.Size())
	case *tcell.EventFocus:
		g.SetInputSuspended(!ev.Focused)
	case *tcell.EventMouse:
		g.buttonDown = ev.Buttons()&tcell.Button1 != 0
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape {
			now := g.Clock.Now()
			g.escRepeat = !g.lastEscape.IsZero() && now.Sub(g.lastEscape) < g.Tuning.WaveHold()
			g.lastEscape = now
		}
	}
	if g.active != nil {
		g.active.HandleEvent(ev)
	}
	g.flush()
}

func (g *Game) Update(dt float64) {
	g.flush()
	if g.active != nil {
		g.active.Update(dt)
	}
	g.flush()
}

func (g *Game) Draw(s tcell.Screen) {
	s.Clear()
	if g.active != nil {
		g.active.Draw(s)
	}
	g.Modals.Draw(s)
	s.Show()
}
