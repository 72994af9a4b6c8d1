// Package overlay draws the résumé panels shown over the game and exposes
// the input-lock flag the world scene polls each frame.
package overlay

import (
	"github.com/gdamore/tcell/v2"

	"overworld/internal/worlds"
)

// OpenClass marks a modal as visible.
const OpenClass = "is-open"

// ModalID returns the modal id for a world, e.g. "aboutModal".
func ModalID(worldID string) string { return worldID + "Modal" }

type Modal struct {
	ID      string
	Title   string
	Summary string
	Lines   []string
	Color   tcell.Color

	classes map[string]bool
}

func (m *Modal) HasClass(c string) bool { return m.classes[c] }

func (m *Modal) addClass(c string)    { m.classes[c] = true }
func (m *Modal) removeClass(c string) { delete(m.classes, c) }

// Host owns every modal. At most one is open at a time.
type Host struct {
	modals map[string]*Modal
	active *Modal

	// OnOpen, when set, is called after a modal opens.
	OnOpen func(id string)
}

func NewHost() *Host {
	return &Host{modals: make(map[string]*Modal)}
}

// Register adds or replaces a modal.
func (h *Host) Register(m *Modal) {
	if m.classes == nil {
		m.classes = make(map[string]bool)
	}
	h.modals[m.ID] = m
}

// RegisterWorlds builds one modal per world.
func (h *Host) RegisterWorlds(list []worlds.PortfolioWorld) {
	for _, w := range list {
		h.Register(&Modal{
			ID:      ModalID(w.ID),
			Title:   w.Title,
			Summary: w.Summary,
			Lines:   append([]string(nil), w.Details...),
			Color:   tcell.NewHexColor(int32(w.Color)),
		})
	}
}

func (h *Host) Lookup(id string) (*Modal, bool) {
	m, ok := h.modals[id]
	return m, ok
}

// Open shows the modal with the given id. Unknown ids are ignored.
func (h *Host) Open(id string) bool {
	m, ok := h.modals[id]
	if !ok {
		return false
	}
	if h.active != nil && h.active != m {
		h.active.removeClass(OpenClass)
	}
	m.addClass(OpenClass)
	h.active = m
	if h.OnOpen != nil {
		h.OnOpen(id)
	}
	return true
}

// Close hides the open modal, if any.
func (h *Host) Close() {
	if h.active == nil {
		return
	}
	h.active.removeClass(OpenClass)
	h.active = nil
}

func (h *Host) Active() (*Modal, bool) {
	return h.active, h.active != nil
}

// InputBlocked reports whether game input should be suspended.
func (h *Host) InputBlocked() bool { return h.active != nil }

// HandleKey closes the open modal on Enter, Escape, Backspace or space.
// Returns true when the event was consumed.
func (h *Host) HandleKey(ev *tcell.EventKey) bool {
	if h.active == nil {
		return false
	}
	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		h.Close()
	case tcell.KeyRune:
		if ev.Rune() == ' ' || ev.Rune() == 'x' {
			h.Close()
		}
	}
	return true
}
