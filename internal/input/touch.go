package input

import (
	"time"

	"overworld/internal/clock"
)

// Zone is one of three horizontal screen bands used to classify a pointer.
type Zone int

const (
	ZoneLeft Zone = iota
	ZoneCenter
	ZoneRight
)

func (z Zone) String() string {
	switch z {
	case ZoneLeft:
		return "left"
	case ZoneCenter:
		return "center"
	case ZoneRight:
		return "right"
	}
	return "unknown"
}

// ZoneOf buckets x into thirds of width.
func ZoneOf(x, width int) Zone {
	if width <= 0 {
		return ZoneCenter
	}
	switch {
	case x*3 < width:
		return ZoneLeft
	case x*3 < width*2:
		return ZoneCenter
	default:
		return ZoneRight
	}
}

type PointerID int

type pointer struct {
	zone          Zone
	pressedAt     time.Time
	x             int
	moved         bool
	waveTriggered bool
	timer         clock.Handle
}

// TouchClassifier decides between move, tap-to-jump and hold-to-wave on a
// pointer stream. Only one pointer owns the directional/gesture state at a
// time; a new press takes over from the previous owner.
type TouchClassifier struct {
	clock     clock.Clock
	sched     *clock.Scheduler
	waveDelay time.Duration
	slop      int

	pointers map[PointerID]*pointer
	owner    PointerID
	hasOwner bool

	dir        int
	waving     bool
	jumpQueued bool
	locked     bool

	// OnWave, when set, is called each time a hold turns into a wave.
	OnWave func()
}

func NewTouchClassifier(c clock.Clock, s *clock.Scheduler, waveDelay time.Duration, slop int) *TouchClassifier {
	return &TouchClassifier{
		clock:     c,
		sched:     s,
		waveDelay: waveDelay,
		slop:      slop,
		pointers:  make(map[PointerID]*pointer),
	}
}

func (t *TouchClassifier) Direction() int { return t.dir }
func (t *TouchClassifier) Waving() bool   { return t.waving }
func (t *TouchClassifier) Locked() bool   { return t.locked }

// TakeJump consumes the queued tap jump, if any.
func (t *TouchClassifier) TakeJump() bool {
	q := t.jumpQueued
	t.jumpQueued = false
	return q
}

// Down registers a press at cell column x on a screen width cells wide.
func (t *TouchClassifier) Down(id PointerID, x, width int) {
	if t.locked {
		return
	}
	if t.hasOwner && t.owner != id {
		t.releaseOwner()
	}
	if old, ok := t.pointers[id]; ok {
		t.sched.Cancel(old.timer)
	}
	p := &pointer{
		zone:      ZoneOf(x, width),
		pressedAt: t.clock.Now(),
		x:         x,
	}
	t.pointers[id] = p
	t.owner, t.hasOwner = id, true
	t.waving = false
	t.classify(id, p)
}

// Move registers pointer motion while pressed.
func (t *TouchClassifier) Move(id PointerID, x, width int) {
	if t.locked || !t.owns(id) {
		return
	}
	p := t.pointers[id]
	zone := ZoneOf(x, width)
	if zone != p.zone {
		t.sched.Cancel(p.timer)
		p.timer = 0
		if p.waveTriggered {
			p.waveTriggered = false
			t.waving = false
		}
		p.zone = zone
		p.x = x
		p.moved = true
		p.pressedAt = t.clock.Now()
		t.classify(id, p)
		return
	}
	if abs(x-p.x) > t.slop {
		p.moved = true
	}
}

// Up registers a release.
func (t *TouchClassifier) Up(id PointerID) {
	p, ok := t.pointers[id]
	if !ok {
		return
	}
	delete(t.pointers, id)
	t.sched.Cancel(p.timer)
	if t.locked || !t.hasOwner || t.owner != id {
		return
	}
	t.hasOwner = false

	switch {
	case p.waveTriggered:
		t.waving = false
	case p.zone == ZoneCenter && !p.moved && t.clock.Now().Sub(p.pressedAt) < t.waveDelay:
		t.jumpQueued = true
	}
	t.dir = 0
}

// SetLocked asserts or clears the external input lock. Locking cancels
// every pending gesture and forgets all pointers.
func (t *TouchClassifier) SetLocked(locked bool) {
	if locked == t.locked {
		return
	}
	if locked {
		t.Reset()
	}
	t.locked = locked
}

// Reset cancels pending timers and clears all gesture state.
func (t *TouchClassifier) Reset() {
	for _, p := range t.pointers {
		t.sched.Cancel(p.timer)
	}
	t.pointers = make(map[PointerID]*pointer)
	t.hasOwner = false
	t.dir = 0
	t.waving = false
	t.jumpQueued = false
}

func (t *TouchClassifier) owns(id PointerID) bool {
	_, ok := t.pointers[id]
	return ok && t.hasOwner && t.owner == id
}

func (t *TouchClassifier) releaseOwner() {
	if p, ok := t.pointers[t.owner]; ok {
		t.sched.Cancel(p.timer)
		p.timer = 0
		p.waveTriggered = false
	}
	t.hasOwner = false
	t.dir = 0
	t.waving = false
}

func (t *TouchClassifier) classify(id PointerID, p *pointer) {
	switch p.zone {
	case ZoneLeft:
		t.dir = -1
	case ZoneRight:
		t.dir = 1
	case ZoneCenter:
		t.dir = 0
		p.timer = t.sched.After(t.waveDelay, func() {
			p.timer = 0
			if t.locked || !t.owns(id) || t.pointers[id] != p || p.zone != ZoneCenter {
				return
			}
			p.waveTriggered = true
			t.waving = true
			if t.OnWave != nil {
				t.OnWave()
			}
		})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
