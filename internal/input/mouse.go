package input

import "github.com/gdamore/tcell/v2"

// MousePointer is the pointer id the mouse reports under.
const MousePointer PointerID = 0

// MouseTracker turns tcell's level-triggered mouse events into pointer
// down/move/up edges.
type MouseTracker struct {
	down bool
	x, y int
}

// Edge is a pointer transition derived from a mouse event.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeDown
	EdgeMove
	EdgeUp
)

// Track classifies ev against the previous button state.
func (m *MouseTracker) Track(ev *tcell.EventMouse) Edge {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0
	moved := x != m.x || y != m.y
	m.x, m.y = x, y

	switch {
	case pressed && !m.down:
		m.down = true
		return EdgeDown
	case !pressed && m.down:
		m.down = false
		return EdgeUp
	case pressed && moved:
		return EdgeMove
	}
	return EdgeNone
}

// Sync sets the button level without reporting an edge, so a press that
// started elsewhere is only seen once it is released.
func (m *MouseTracker) Sync(pressed bool) { m.down = pressed }

func (m *MouseTracker) Position() (int, int) { return m.x, m.y }
func (m *MouseTracker) Pressed() bool        { return m.down }

// Feed forwards a mouse event into the classifier.
func (m *MouseTracker) Feed(ev *tcell.EventMouse, t *TouchClassifier, width int) Edge {
	e := m.Track(ev)
	switch e {
	case EdgeDown:
		t.Down(MousePointer, m.x, width)
	case EdgeMove:
		t.Move(MousePointer, m.x, width)
	case EdgeUp:
		t.Up(MousePointer)
	}
	return e
}
