package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Intent combines the two movement keys into -1, 0 or +1.
// Holding both cancels out.
func Intent(left, right bool) float64 {
	var dir float64
	if left {
		dir--
	}
	if right {
		dir++
	}
	return dir
}

// MovePaddle returns the paddle center after one frame of movement,
// clamped so the paddle stays fully inside an arena of width arenaW.
func MovePaddle(x, intent, width, arenaW, speed, dt float64) float64 {
	half := arenaW/2 - width/2
	return core.ClampF(x+intent*speed*dt, -half, half)
}

// IntegrateBall advances the ball by its velocity. It knows nothing about collisions.
func IntegrateBall(b *Ball, dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}
