package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestScheduler_RunsWhenDue(t *testing.T) {
	mc := NewManualClock(epoch)
	s := NewScheduler(mc)

	fired := 0
	s.After(250*time.Millisecond, func() { fired++ })

	mc.Advance(249 * time.Millisecond)
	if n := s.Advance(); n != 0 || fired != 0 {
		t.Fatalf("fired early: n=%d fired=%d", n, fired)
	}

	mc.Advance(time.Millisecond)
	if n := s.Advance(); n != 1 || fired != 1 {
		t.Fatalf("expected one run at deadline, n=%d fired=%d", n, fired)
	}

	mc.Advance(time.Second)
	s.Advance()
	if fired != 1 {
		t.Fatalf("callback ran twice")
	}
}

func TestScheduler_OrderAndCancel(t *testing.T) {
	mc := NewManualClock(epoch)
	s := NewScheduler(mc)

	var order []string
	s.After(30*time.Millisecond, func() { order = append(order, "c") })
	h := s.After(20*time.Millisecond, func() { order = append(order, "b") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(30*time.Millisecond, func() { order = append(order, "d") })

	if !s.Cancel(h) {
		t.Fatal("Cancel returned false for pending handle")
	}
	if s.Cancel(h) {
		t.Fatal("second Cancel should report false")
	}
	if s.waiting(h) {
		t.Fatal("cancelled handle still pending")
	}

	mc.Advance(time.Second)
	s.Advance()

	want := []string{"a", "c", "d"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestScheduler_CancelInsideBatch(t *testing.T) {
	mc := NewManualClock(epoch)
	s := NewScheduler(mc)

	var second Handle
	ran := false
	s.After(10*time.Millisecond, func() { s.Cancel(second) })
	second = s.After(20*time.Millisecond, func() { ran = true })

	mc.Advance(50 * time.Millisecond)
	if n := s.Advance(); n != 1 {
		t.Fatalf("ran %d callbacks, want 1", n)
	}
	if ran {
		t.Fatal("callback cancelled by an earlier one in the same frame still ran")
	}
}

func TestScheduler_RescheduleWaitsForNextFrame(t *testing.T) {
	mc := NewManualClock(epoch)
	s := NewScheduler(mc)

	count := 0
	var tick func()
	tick = func() {
		count++
		s.After(0, tick)
	}
	s.After(0, tick)

	s.Advance()
	if count != 1 {
		t.Fatalf("count = %d after first frame", count)
	}
	s.Advance()
	if count != 2 {
		t.Fatalf("count = %d after second frame", count)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d", s.Len())
	}
	s.CancelAll()
	if s.Len() != 0 {
		t.Fatal("CancelAll left callbacks")
	}
}
