// Package player holds the player's arcade physics and animation state.
package player

import (
	"math"

	"overworld/internal/config"
	"overworld/internal/input"
	"overworld/internal/worlds"
)

// bounces slower than this settle instead of hopping
const minBounceSpeed = 100.0

type Vec2 struct {
	X, Y float64
}

type Player struct {
	Pos      Vec2 // top-left, logical pixels
	Vel      Vec2
	AccelX   float64
	Width    float64
	Height   float64
	Facing   int // -1 left, 1 right
	Grounded bool
	Anim     Anim
	Tick     int

	waving bool
	phys   config.Physics
	bounds worlds.Rect
}

// StepResult reports what happened during one Step.
type StepResult struct {
	Jumped      bool
	WaveStarted bool
	WaveEnded   bool
	// HitFromBelow lists indexes of solids the player's head struck.
	HitFromBelow []int
}

// New places a player centred on the configured spawn point inside bounds.
func New(phys config.Physics, bounds worlds.Rect) *Player {
	return &Player{
		Pos: Vec2{
			X: phys.SpawnX - phys.PlayerWidth/2,
			Y: phys.SpawnY - phys.PlayerHeight/2,
		},
		Width:  phys.PlayerWidth,
		Height: phys.PlayerHeight,
		Facing: 1,
		Anim:   AnimIdle,
		phys:   phys,
		bounds: bounds,
	}
}

func (p *Player) Rect() worlds.Rect {
	return worlds.FromEdges(p.Pos.X, p.Pos.Y, p.Width, p.Height)
}

func (p *Player) Waving() bool { return p.waving }

// Step advances the player by dt seconds.
func (p *Player) Step(in input.Intent, dt float64, solids []worlds.Rect) StepResult {
	var res StepResult
	p.Tick++

	if in.Wave && !p.waving {
		p.waving = true
		p.Vel.X = 0
		p.AccelX = 0
		res.WaveStarted = true
	} else if !in.Wave && p.waving {
		p.waving = false
		res.WaveEnded = true
	}

	moving := false
	if p.waving {
		p.AccelX = 0
		p.Vel.X = 0
	} else {
		switch {
		case in.Dir < 0:
			p.AccelX = -p.phys.Acceleration
			p.Facing = -1
			moving = true
		case in.Dir > 0:
			p.AccelX = p.phys.Acceleration
			p.Facing = 1
			moving = true
		default:
			p.AccelX = 0
		}
		if in.Jump && p.Grounded {
			p.Vel.Y = p.phys.JumpVelocity
			p.Grounded = false
			res.Jumped = true
		}
	}

	p.stepX(dt, solids)
	res.HitFromBelow = p.stepY(dt, solids)

	p.Anim = SelectAnim(p.waving, !p.Grounded || res.Jumped, moving)
	return res
}

func (p *Player) stepX(dt float64, solids []worlds.Rect) {
	if p.AccelX != 0 {
		p.Vel.X += p.AccelX * dt
	} else if p.Vel.X != 0 {
		d := p.phys.Drag * dt
		if math.Abs(p.Vel.X) <= d {
			p.Vel.X = 0
		} else {
			p.Vel.X -= math.Copysign(d, p.Vel.X)
		}
	}
	p.Vel.X = clamp(p.Vel.X, -p.phys.MaxVelX, p.phys.MaxVelX)
	p.Pos.X += p.Vel.X * dt

	for _, s := range solids {
		if !p.Rect().Intersects(s) {
			continue
		}
		switch {
		case p.Vel.X > 0:
			p.Pos.X = s.Left() - p.Width
		case p.Vel.X < 0:
			p.Pos.X = s.Right()
		default:
			continue
		}
		p.Vel.X = 0
	}

	if p.Pos.X < p.bounds.Left() {
		p.Pos.X = p.bounds.Left()
		p.Vel.X = 0
	}
	if p.Pos.X+p.Width > p.bounds.Right() {
		p.Pos.X = p.bounds.Right() - p.Width
		p.Vel.X = 0
	}
}

func (p *Player) stepY(dt float64, solids []worlds.Rect) []int {
	var hits []int
	p.Vel.Y += p.phys.Gravity * dt
	p.Vel.Y = clamp(p.Vel.Y, -p.phys.MaxVelY, p.phys.MaxVelY)
	p.Pos.Y += p.Vel.Y * dt

	grounded := false
	for i, s := range solids {
		if !p.Rect().Intersects(s) {
			continue
		}
		switch {
		case p.Vel.Y > 0:
			p.Pos.Y = s.Top() - p.Height
			p.land()
			grounded = true
		case p.Vel.Y < 0:
			p.Pos.Y = s.Bottom()
			p.Vel.Y = 0
			hits = append(hits, i)
		}
	}

	if p.Pos.Y < p.bounds.Top() {
		p.Pos.Y = p.bounds.Top()
		p.Vel.Y = 0
	}
	if p.Pos.Y+p.Height >= p.bounds.Bottom() {
		p.Pos.Y = p.bounds.Bottom() - p.Height
		p.land()
		grounded = true
	}
	p.Grounded = grounded
	return hits
}

func (p *Player) land() {
	if rebound := p.Vel.Y * p.phys.Bounce; rebound > minBounceSpeed {
		p.Vel.Y = -rebound
		return
	}
	p.Vel.Y = 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
