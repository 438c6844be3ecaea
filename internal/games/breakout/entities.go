// Package breakout implements a paddle-and-ball brick breaker: a frame-stepped
// simulation core plus the registry-facing Game that draws it on a terminal screen.
package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Status is the round state. It decides which systems run each frame.
type Status int

const (
	StatusRunning Status = iota // Ball in play
	StatusWon                   // Every brick destroyed
	StatusLost                  // Ball crossed the bottom boundary
)

// String returns the lowercase state name used in logs.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Paddle is the player's paddle. Y is fixed; X is clamped to the arena.
type Paddle struct {
	X, Y          float64 // Center
	Width, Height float64
}

// Pos returns the paddle center.
func (p *Paddle) Pos() core.Vec2 {
	return core.V(p.X, p.Y)
}

// Ball is the single ball of a round, treated as a square of side Size.
type Ball struct {
	Pos  core.Vec2 // Center
	Vel  core.Vec2 // Units per second
	Size float64
}

// Brick is one destructible block. Bricks are kept in spawn order.
type Brick struct {
	ID            int // Spawn index, stable for the round
	Row, Col      int
	Pos           core.Vec2 // Center
	Width, Height float64
	Health        int
	MaxHealth     int
	Special       bool
}

// Points returns the score awarded when the brick is destroyed.
func (b *Brick) Points() int {
	if b.Special {
		return 2
	}
	return 1
}

// Damaged reports whether the brick has taken a hit but is still alive.
func (b *Brick) Damaged() bool {
	return b.Health > 0 && b.Health < b.MaxHealth
}
