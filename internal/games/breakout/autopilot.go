package breakout

// Autopilot produces paddle input that chases the ball.
// While the ball falls the paddle tracks its x; while it rises the paddle
// drifts back toward the center. No input is produced within deadZone of the target.
func Autopilot(v View, deadZone float64) Input {
	if v.Status != StatusRunning {
		return Input{}
	}

	target := 0.0
	if v.BallVel.Y < 0 {
		target = v.Ball.Pos.X
	}

	diff := target - v.Paddle.Pos.X
	switch {
	case diff > deadZone:
		return Input{Right: true}
	case diff < -deadZone:
		return Input{Left: true}
	default:
		return Input{}
	}
}
