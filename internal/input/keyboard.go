// Package input turns raw terminal events into per-frame player intent.
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"overworld/internal/clock"
)

type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionUp
	ActionDown
	ActionJump
	ActionWave
	ActionBack
	ActionConfirm
	actionCount
)

var actionNames = [actionCount]string{
	"left", "right", "up", "down", "jump", "wave", "back", "confirm",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionFor maps a key event to an action.
func ActionFor(ev *tcell.EventKey) (Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionLeft, true
	case tcell.KeyRight:
		return ActionRight, true
	case tcell.KeyUp:
		return ActionUp, true
	case tcell.KeyDown:
		return ActionDown, true
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyEscape:
		return ActionBack, true
	case tcell.KeyEnter:
		return ActionConfirm, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return ActionLeft, true
		case 'd', 'D':
			return ActionRight, true
		case 'w', 'W':
			return ActionUp, true
		case 's', 'S':
			return ActionDown, true
		case ' ':
			return ActionJump, true
		case 'b', 'B':
			return ActionWave, true
		}
	}
	return 0, false
}

// Keyboard polls key state once per frame. Terminals only report key
// presses, so an action stays held while its last press is younger than
// the hold window; auto-repeat keeps refreshing it.
type Keyboard struct {
	clock    clock.Clock
	hold     time.Duration
	waveHold time.Duration

	pressed [actionCount]time.Time
	held    [actionCount]bool
	prev    [actionCount]bool
}

func NewKeyboard(c clock.Clock, hold, waveHold time.Duration) *Keyboard {
	return &Keyboard{clock: c, hold: hold, waveHold: waveHold}
}

// HandleKey records a key event. Returns false for unbound keys.
func (k *Keyboard) HandleKey(ev *tcell.EventKey) bool {
	a, ok := ActionFor(ev)
	if !ok {
		return false
	}
	k.Press(a)
	return true
}

func (k *Keyboard) Press(a Action) {
	k.pressed[a] = k.clock.Now()
}

// Poll samples key state for the current frame.
func (k *Keyboard) Poll() {
	now := k.clock.Now()
	k.prev = k.held
	for a := Action(0); a < actionCount; a++ {
		at := k.pressed[a]
		if at.IsZero() {
			k.held[a] = false
			continue
		}
		window := k.hold
		if a == ActionWave {
			window = k.waveHold
		}
		k.held[a] = now.Sub(at) < window
	}
}

func (k *Keyboard) Held(a Action) bool { return k.held[a] }

// JustPressed is true only on the first polled frame an action is held.
func (k *Keyboard) JustPressed(a Action) bool { return k.held[a] && !k.prev[a] }

// Reset forgets every press.
func (k *Keyboard) Reset() {
	k.pressed = [actionCount]time.Time{}
	k.held = [actionCount]bool{}
	k.prev = [actionCount]bool{}
}
