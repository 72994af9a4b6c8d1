// Package config holds the physics and input tuning knobs.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Canvas size in logical pixels. Everything in the world is laid out on
// this canvas and scaled to the terminal when drawn.
const (
	CanvasWidth  = 1280
	CanvasHeight = 720
)

type Tuning struct {
	FPS int `yaml:"fps"`

	Physics Physics `yaml:"physics"`
	Input   Input   `yaml:"input"`

	// BlockCooldownMs is how long an interactive block stays "hit".
	BlockCooldownMs int `yaml:"block_cooldown_ms"`
}

type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	Acceleration float64 `yaml:"acceleration"`
	Drag         float64 `yaml:"drag"`
	MaxVelX      float64 `yaml:"max_vel_x"`
	MaxVelY      float64 `yaml:"max_vel_y"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	Bounce       float64 `yaml:"bounce"`

	PlayerWidth  float64 `yaml:"player_width"`
	PlayerHeight float64 `yaml:"player_height"`
	SpawnX       float64 `yaml:"spawn_x"`
	SpawnY       float64 `yaml:"spawn_y"`
	GroundHeight float64 `yaml:"ground_height"`
}

type Input struct {
	KeyHoldMs  int `yaml:"key_hold_ms"`
	WaveHoldMs int `yaml:"wave_hold_ms"`
	WaveDelay  int `yaml:"wave_delay_ms"`
	// TouchSlop is the horizontal distance, in cells, a held pointer may drift
	// before it counts as moved.
	TouchSlop int `yaml:"touch_slop"`
}

// Defaults mirrors the feel of the browser build.
func Defaults() Tuning {
	return Tuning{
		FPS: 30,
		Physics: Physics{
			Gravity:      1000,
			Acceleration: 900,
			Drag:         650,
			MaxVelX:      320,
			MaxVelY:      800,
			JumpVelocity: -560,
			Bounce:       0.15,
			PlayerWidth:  24,
			PlayerHeight: 48,
			SpawnX:       120,
			SpawnY:       520,
			GroundHeight: 58,
		},
		Input: Input{
			KeyHoldMs:  150,
			WaveHoldMs: 550,
			WaveDelay:  250,
			TouchSlop:  1,
		},
		BlockCooldownMs: 1000,
	}
}

// LoadTuning overlays the YAML file at path on the defaults. An empty path
// returns the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := Defaults()
	if strings.TrimSpace(path) == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}

func (t Tuning) Validate() error {
	if t.FPS <= 0 || t.FPS > 240 {
		return fmt.Errorf("fps must be in (0, 240]")
	}
	if t.Physics.Gravity <= 0 {
		return fmt.Errorf("physics.gravity must be > 0")
	}
	if t.Physics.JumpVelocity >= 0 {
		return fmt.Errorf("physics.jump_velocity must be negative (up)")
	}
	if t.Physics.MaxVelX <= 0 || t.Physics.MaxVelY <= 0 {
		return fmt.Errorf("physics.max_vel_x/max_vel_y must be > 0")
	}
	if t.Physics.Bounce < 0 || t.Physics.Bounce >= 1 {
		return fmt.Errorf("physics.bounce must be in [0, 1)")
	}
	if t.Physics.PlayerWidth <= 0 || t.Physics.PlayerHeight <= 0 {
		return fmt.Errorf("physics.player_width/player_height must be > 0")
	}
	if t.Input.KeyHoldMs <= 0 || t.Input.WaveHoldMs <= 0 || t.Input.WaveDelay <= 0 {
		return fmt.Errorf("input timings must be > 0")
	}
	if t.Input.TouchSlop < 0 {
		return fmt.Errorf("input.touch_slop must be >= 0")
	}
	if t.BlockCooldownMs < 0 {
		return fmt.Errorf("block_cooldown_ms must be >= 0")
	}
	return nil
}

func (t Tuning) FrameDuration() time.Duration { return time.Second / time.Duration(t.FPS) }
func (t Tuning) KeyHold() time.Duration       { return time.Duration(t.Input.KeyHoldMs) * time.Millisecond }
func (t Tuning) WaveHold() time.Duration      { return time.Duration(t.Input.WaveHoldMs) * time.Millisecond }
func (t Tuning) WaveDelay() time.Duration     { return time.Duration(t.Input.WaveDelay) * time.Millisecond }
func (t Tuning) BlockCooldown() time.Duration { return time.Duration(t.BlockCooldownMs) * time.Millisecond }
