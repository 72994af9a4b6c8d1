package scene

import (
	"github.com/gdamore/tcell/v2"

	"overworld/internal/audio"
	"overworld/internal/clock"
	"overworld/internal/config"
	"overworld/internal/input"
	"overworld/internal/overlay"
	"overworld/internal/player"
	"overworld/internal/worlds"
)

const backLabel = "[← BACK]"

// Block is an interactive block. Bumping it from below opens the world's
// modal and puts the block on cooldown.
type Block struct {
	Rect  worlds.Rect
	Hit   bool
	Bumps int
}

// WorldScene is the playable area for one world.
type WorldScene struct {
	g     *Game
	world worlds.PortfolioWorld
	ok    bool

	sched  *clock.Scheduler
	kb     *input.Keyboard
	touch  *input.TouchClassifier
	mouse  input.MouseTracker
	player *player.Player

	ground worlds.Rect
	pipe   *worlds.Rect
	blocks []*Block
	solids []worlds.Rect
	// solids index → block
	blockAt map[int]*Block
}

func (w *WorldScene) Name() Name { return World }

func (w *WorldScene) Enter(g *Game) {
	w.g = g
	w.world, w.ok = worlds.Select(g.Registry.Worlds(), g.Registry.SelectedWorldID())

	tn := g.Tuning
	w.sched = clock.NewScheduler(g.Clock)
	w.kb = input.NewKeyboard(g.Clock, tn.KeyHold(), tn.WaveHold())
	w.touch = input.NewTouchClassifier(g.Clock, w.sched, tn.WaveDelay(), tn.Input.TouchSlop)
	w.touch.OnWave = func() { g.Log.Printf("world: touch hold became a wave") }
	w.mouse.Sync(g.ButtonHeld())

	canvas := worlds.FromEdges(0, 0, config.CanvasWidth, config.CanvasHeight)
	w.player = player.New(tn.Physics, canvas)
	w.setupSolids()

	if w.ok {
		g.Log.Printf("world: entered %s (bg %s)", w.world.ID, w.world.Background.Key)
	} else {
		g.Log.Printf("world: no worlds registered")
	}
}

func (w *WorldScene) setupSolids() {
	gh := w.g.Tuning.Physics.GroundHeight
	w.ground = worlds.FromEdges(0, config.CanvasHeight-gh, config.CanvasWidth, gh)
	w.solids = []worlds.Rect{w.ground}
	w.blockAt = make(map[int]*Block)
	if !w.ok || w.world.Structures == nil {
		return
	}
	pipe := w.world.Structures.Pipe
	w.pipe = &pipe
	w.solids = append(w.solids, pipe)
	for _, r := range w.world.Structures.Blocks {
		b := &Block{Rect: r}
		w.blockAt[len(w.solids)] = b
		w.blocks = append(w.blocks, b)
		w.solids = append(w.solids, r)
	}
}

func (w *WorldScene) Exit() {
	w.sched.CancelAll()
	w.touch.Reset()
	w.kb.Reset()
	w.g.Modals.Close()
}

// ActiveWorld returns the world this scene is showing.
func (w *WorldScene) ActiveWorld() (worlds.PortfolioWorld, bool) { return w.world, w.ok }

// Tint is the world's declared colour.
func (w *WorldScene) Tint() tcell.Color {
	if !w.ok {
		return tcell.ColorBlack
	}
	return worldColor(w.world)
}

func (w *WorldScene) BackgroundKey() string { return w.world.Background.Key }

func (w *WorldScene) Player() *player.Player        { return w.player }
func (w *WorldScene) Blocks() []*Block              { return w.blocks }
func (w *WorldScene) Touch() *input.TouchClassifier { return w.touch }
func (w *WorldScene) Keyboard() *input.Keyboard     { return w.kb }
func (w *WorldScene) Scheduler() *clock.Scheduler   { return w.sched }

func (w *WorldScene) backButton() hitBox {
	return hitBox{x0: 1, y0: 0, x1: 1 + len([]rune(backLabel)), y1: 1}
}

func (w *WorldScene) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if w.g.Modals.HandleKey(ev) {
			return
		}
		w.kb.HandleKey(ev)
	case *tcell.EventMouse:
		if w.g.Modals.InputBlocked() {
			if w.mouse.Track(ev) == input.EdgeDown {
				w.g.Modals.Close()
			}
			return
		}
		if !w.mouse.Pressed() && ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			if w.backButton().contains(x, y) {
				w.mouse.Track(ev)
				w.g.Start(Menu)
				return
			}
		}
		sw, _ := w.g.Size()
		w.mouse.Feed(ev, w.touch, sw)
	}
}

func (w *WorldScene) Update(dt float64) {
	w.sched.Advance()

	blocked := w.g.InputBlocked()
	w.touch.SetLocked(blocked)
	var in input.Intent
	if blocked {
		w.kb.Reset()
	} else {
		w.kb.Poll()
		in = input.Combine(w.kb, w.touch)
	}

	if in.Back {
		w.g.Start(Menu)
		return
	}

	res := w.player.Step(in, dt, w.solids)
	if res.Jumped {
		w.g.Sound.Play(audio.CueJump)
	}
	if res.WaveStarted {
		w.g.Sound.Play(audio.CueWave)
	}
	for _, idx := range res.HitFromBelow {
		if b, ok := w.blockAt[idx]; ok {
			w.bump(b)
		}
	}
}

// bump handles a hit from below. A block already on cooldown ignores it.
func (w *WorldScene) bump(b *Block) {
	if b.Hit {
		return
	}
	b.Hit = true
	b.Bumps++
	w.g.Sound.Play(audio.CueBump)
	w.g.Modals.Open(overlay.ModalID(w.world.ID))
	w.sched.After(w.g.Tuning.BlockCooldown(), func() {
		b.Hit = false
	})
}

func (w *WorldScene) Draw(s tcell.Screen) {
	sw, sh := s.Size()
	vp := viewport{w: sw, h: sh}
	tint := w.Tint()

	if !w.ok {
		putCentered(s, sh/2, "No worlds to explore. Press BACKSPACE.", tcell.StyleDefault)
		return
	}

	// dotted backdrop in the world colour
	sky := tcell.StyleDefault.Foreground(tint).Dim(true)
	for y := 2; y < vp.cellY(w.ground.Top()); y += 4 {
		for x := (y / 2) % 7; x < sw; x += 7 {
			s.SetContent(x, y, '·', nil, sky)
		}
	}

	gx0, gy0, gx1, gy1 := vp.cellRect(w.ground)
	fillRect(s, gx0, gy0, gx1, gy0+1, '━', tcell.StyleDefault.Foreground(tint))
	fillRect(s, gx0, gy0+1, gx1, gy1, '░', tcell.StyleDefault.Foreground(tcell.NewHexColor(0x262b44)))

	if w.pipe != nil {
		px0, py0, px1, py1 := vp.cellRect(*w.pipe)
		pipe := tcell.StyleDefault.Foreground(tcell.NewHexColor(0x22c55e))
		fillRect(s, px0, py0, px1, py1, '║', pipe)
		fillRect(s, px0, py0, px1, py0+1, '▀', pipe)
	}

	for _, b := range w.blocks {
		bx0, by0, bx1, by1 := vp.cellRect(b.Rect)
		ch, style := '▓', tcell.StyleDefault.Foreground(tint)
		if b.Hit {
			ch, style = '▒', style.Bold(true)
		}
		fillRect(s, bx0, by0, bx1, by1, ch, style)
		if bx1-bx0 >= 3 && !b.Hit {
			s.SetContent((bx0+bx1)/2, (by0+by1)/2, '?', nil, style.Reverse(true))
		}
	}

	w.drawPlayer(s, vp)

	hud := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	putString(s, 1, 0, backLabel, hud.Background(tcell.NewHexColor(0x334155)))
	putCentered(s, 0, w.world.Title, tcell.StyleDefault.Foreground(tint).Bold(true))
	hint := "←→ move · ↑ jump · b wave · ⌫ back"
	putString(s, sw-len([]rune(hint))-1, 0, hint, tcell.StyleDefault.Foreground(tcell.NewHexColor(0x94a3b8)))
}

func (w *WorldScene) drawPlayer(s tcell.Screen, vp viewport) {
	p := w.player
	rows := player.Frame(p.Anim, p.Facing, p.Tick)
	r := p.Rect()
	cx := vp.cellX(r.X)
	bottom := vp.cellY(r.Bottom())
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	for i, row := range rows {
		y := bottom - len(rows) + i
		x := cx - 1
		for _, ch := range row {
			if ch != ' ' {
				s.SetContent(x, y, ch, nil, style)
			}
			x++
		}
	}
}
