package clock

import (
	"sort"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

type pending struct {
	id  Handle
	due time.Time
	fn  func()
}

// Scheduler holds delayed callbacks that run on the frame that first
// observes them as due. It is driven from the game loop and is not safe for
// concurrent use.
type Scheduler struct {
	clock   Clock
	nextID  Handle
	pending []pending

	// callbacks already pulled out for the current Advance
	batch map[Handle]bool
}

func NewScheduler(c Clock) *Scheduler {
	return &Scheduler{clock: c}
}

// After schedules fn to run once delay has elapsed.
func (s *Scheduler) After(delay time.Duration, fn func()) Handle {
	s.nextID++
	s.pending = append(s.pending, pending{
		id:  s.nextID,
		due: s.clock.Now().Add(delay),
		fn:  fn,
	})
	return s.nextID
}

// Cancel drops a callback that has not run yet. Reports whether it was found.
func (s *Scheduler) Cancel(h Handle) bool {
	if h == 0 {
		return false
	}
	if s.batch[h] {
		delete(s.batch, h)
		return true
	}
	for i, p := range s.pending {
		if p.id == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending callback, including the rest of a batch
// that is currently running.
func (s *Scheduler) CancelAll() {
	s.pending = nil
	for h := range s.batch {
		delete(s.batch, h)
	}
}

// waiting reports whether h is still waiting to run.
func (s *Scheduler) waiting(h Handle) bool {
	if s.batch[h] {
		return true
	}
	for _, p := range s.pending {
		if p.id == h {
			return true
		}
	}
	return false
}

// Len returns the number of pending callbacks.
func (s *Scheduler) Len() int { return len(s.pending) + len(s.batch) }

// Advance runs every callback due at the clock's current time, earliest
// first, and returns how many ran. Callbacks scheduled while running wait
// for the next Advance.
func (s *Scheduler) Advance() int {
	now := s.clock.Now()
	var due, rest []pending
	for _, p := range s.pending {
		if !p.due.After(now) {
			due = append(due, p)
		} else {
			rest = append(rest, p)
		}
	}
	if len(due) == 0 {
		return 0
	}
	s.pending = rest
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}
		return due[i].due.Before(due[j].due)
	})

	s.batch = make(map[Handle]bool, len(due))
	for _, p := range due {
		s.batch[p.id] = true
	}
	ran := 0
	for _, p := range due {
		if !s.batch[p.id] {
			continue
		}
		delete(s.batch, p.id)
		p.fn()
		ran++
	}
	s.batch = nil
	return ran
}
