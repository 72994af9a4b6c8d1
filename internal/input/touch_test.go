package input

import (
	"testing"
	"time"

	"overworld/internal/clock"
)

const screenW = 90 // zones: [0,30) left, [30,60) center, [60,90) right

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type touchRig struct {
	clk   *clock.ManualClock
	sched *clock.Scheduler
	tc    *TouchClassifier
	waves int
}

func newTouchRig() *touchRig {
	clk := clock.NewManualClock(epoch)
	sched := clock.NewScheduler(clk)
	r := &touchRig{clk: clk, sched: sched}
	r.tc = NewTouchClassifier(clk, sched, 250*time.Millisecond, 1)
	r.tc.OnWave = func() { r.waves++ }
	return r
}

// step advances time in frame-sized steps, resolving timers on each frame.
func (r *touchRig) step(d time.Duration) {
	const frame = 33 * time.Millisecond
	for d > 0 {
		s := frame
		if d < s {
			s = d
		}
		r.clk.Advance(s)
		r.sched.Advance()
		d -= s
	}
}

func TestZoneOf(t *testing.T) {
	cases := []struct {
		x    int
		want Zone
	}{
		{0, ZoneLeft}, {29, ZoneLeft}, {30, ZoneCenter}, {59, ZoneCenter}, {60, ZoneRight}, {89, ZoneRight},
	}
	for _, tc := range cases {
		if got := ZoneOf(tc.x, screenW); got != tc.want {
			t.Errorf("ZoneOf(%d) = %v, want %v", tc.x, got, tc.want)
		}
	}
	if ZoneOf(5, 0) != ZoneCenter {
		t.Error("zero width should classify as center")
	}
}

func TestTouch_CenterTapQueuesOneJump(t *testing.T) {
	for _, hold := range []time.Duration{0, 50 * time.Millisecond, 199 * time.Millisecond} {
		r := newTouchRig()
		r.tc.Down(1, 45, screenW)
		r.step(hold)
		r.tc.Up(1)
		r.step(time.Second)

		if r.waves != 0 || r.tc.Waving() {
			t.Fatalf("hold %v: tap produced a wave", hold)
		}
		if !r.tc.TakeJump() {
			t.Fatalf("hold %v: tap did not queue a jump", hold)
		}
		if r.tc.TakeJump() {
			t.Fatalf("hold %v: tap queued more than one jump", hold)
		}
	}
}

func TestTouch_HoldCenterWavesOnce(t *testing.T) {
	r := newTouchRig()
	r.tc.Down(1, 45, screenW)

	r.step(240 * time.Millisecond)
	if r.tc.Waving() {
		t.Fatal("wave started before the delay")
	}
	r.step(20 * time.Millisecond)
	if !r.tc.Waving() || r.waves != 1 {
		t.Fatalf("expected wave after 250ms, waving=%v waves=%d", r.tc.Waving(), r.waves)
	}

	r.step(2 * time.Second)
	if r.waves != 1 {
		t.Fatalf("wave fired %d times while held", r.waves)
	}

	r.tc.Up(1)
	if r.tc.Waving() {
		t.Fatal("release did not end the wave")
	}
	if r.tc.TakeJump() {
		t.Fatal("releasing a wave must not queue a jump")
	}
}

func TestTouch_ZoneChangeCancelsWave(t *testing.T) {
	r := newTouchRig()
	r.tc.Down(1, 45, screenW)
	r.step(100 * time.Millisecond)
	pendingBefore := r.sched.Len()

	r.tc.Move(1, 75, screenW)
	if r.sched.Len() != pendingBefore-1 {
		t.Fatalf("zone change left the wave timer pending (%d -> %d)", pendingBefore, r.sched.Len())
	}
	if r.tc.Direction() != 1 {
		t.Fatalf("direction = %d, want 1 after moving into right zone", r.tc.Direction())
	}

	r.step(time.Second)
	if r.waves != 0 || r.tc.Waving() {
		t.Fatal("wave fired after leaving center")
	}

	r.tc.Up(1)
	if r.tc.Direction() != 0 {
		t.Fatal("release should clear direction")
	}
	if r.tc.TakeJump() {
		t.Fatal("release outside center must not jump")
	}
}

func TestTouch_ZoneChangeEndsActiveWave(t *testing.T) {
	r := newTouchRig()
	r.tc.Down(1, 45, screenW)
	r.step(300 * time.Millisecond)
	if !r.tc.Waving() {
		t.Fatal("expected wave")
	}
	r.tc.Move(1, 5, screenW)
	if r.tc.Waving() {
		t.Fatal("zone change should end the wave")
	}
	if r.tc.Direction() != -1 {
		t.Fatalf("direction = %d, want -1", r.tc.Direction())
	}
}

func TestTouch_ReturnToCenterRestartsClassification(t *testing.T) {
	r := newTouchRig()
	r.tc.Down(1, 45, screenW)
	r.step(200 * time.Millisecond)
	r.tc.Move(1, 5, screenW)
	r.step(100 * time.Millisecond)
	r.tc.Move(1, 40, screenW)

	r.step(200 * time.Millisecond)
	if r.tc.Waving() {
		t.Fatal("restarted timer fired early")
	}
	r.step(100 * time.Millisecond)
	if !r.tc.Waving() || r.waves != 1 {
		t.Fatalf("expected one wave after re-entering center, waves=%d", r.waves)
	}

	r.tc.Up(1)
	if r.tc.TakeJump() {
		t.Fatal("a pointer that moved should not tap-jump")
	}
}

func TestTouch_MovementInsideCenterSuppressesTap(t *testing.T) {
	r := newTouchRig()
	r.tc.Down(1, 40, screenW)
	r.tc.Move(1, 41, screenW) // within slop
	r.tc.Move(1, 44, screenW)
	r.tc.Up(1)
	if r.tc.TakeJump() {
		t.Fatal("dragged pointer should not queue a jump")
	}
}

func TestTouch_SideZonesSetDirection(t *testing.T) {
	r := newTouchRig()
	r.tc.Down(1, 3, screenW)
	if r.tc.Direction() != -1 {
		t.Fatalf("left zone direction = %d", r.tc.Direction())
	}
	r.tc.Up(1)
	r.tc.Down(1, 80, screenW)
	if r.tc.Direction() != 1 {
		t.Fatalf("right zone direction = %d", r.tc.Direction())
	}
	r.step(time.Second)
	if r.tc.Waving() {
		t.Fatal("side zone hold must not wave")
	}
}

func TestTouch_LockCancelsEverything(t *testing.T) {
	r := newTouchRig()
	r.tc.Down(1, 45, screenW)
	r.step(100 * time.Millisecond)

	r.tc.SetLocked(true)
	if r.sched.Len() != 0 {
		t.Fatal("lock left timers pending")
	}
	r.step(time.Second)
	if r.tc.Waving() || r.waves != 0 {
		t.Fatal("wave fired while locked")
	}

	r.tc.Up(1)
	if r.tc.TakeJump() {
		t.Fatal("release during lock queued a jump")
	}

	r.tc.Down(2, 10, screenW)
	if r.tc.Direction() != 0 {
		t.Fatal("presses are ignored while locked")
	}

	r.tc.SetLocked(false)
	r.tc.Down(2, 10, screenW)
	if r.tc.Direction() != -1 {
		t.Fatal("input should resume after unlock")
	}
}

func TestTouch_LockDropsQueuedJump(t *testing.T) {
	r := newTouchRig()
	r.tc.Down(1, 45, screenW)
	r.tc.Up(1)
	if !r.tc.jumpQueued {
		t.Fatal("expected queued jump")
	}
	r.tc.SetLocked(true)
	if r.tc.TakeJump() {
		t.Fatal("lock should drop the queued jump")
	}
}

func TestTouch_SecondPointerTakesOver(t *testing.T) {
	r := newTouchRig()
	r.tc.Down(1, 45, screenW)
	r.step(100 * time.Millisecond)
	r.tc.Down(2, 80, screenW)

	r.step(time.Second)
	if r.waves != 0 {
		t.Fatal("first pointer's wave timer survived the takeover")
	}
	if r.tc.Direction() != 1 {
		t.Fatalf("direction = %d, want 1", r.tc.Direction())
	}

	// releasing the superseded pointer does not disturb the owner
	r.tc.Up(1)
	if r.tc.Direction() != 1 {
		t.Fatal("stale pointer release changed the owner's state")
	}
	r.tc.Move(1, 10, screenW)
	if r.tc.Direction() != 1 {
		t.Fatal("unknown pointer move changed state")
	}
}

func TestTouch_LateReleaseNeitherJumpsNorWaves(t *testing.T) {
	r := newTouchRig()
	r.tc.Down(1, 45, screenW)
	// time passes without a frame resolving the timer
	r.clk.Advance(260 * time.Millisecond)
	r.tc.Up(1)
	r.sched.Advance()

	if r.tc.TakeJump() {
		t.Fatal("a press longer than the wave delay is not a tap")
	}
	if r.tc.Waving() || r.waves != 0 {
		t.Fatal("timer of a released pointer fired")
	}
}
