package breakout

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// resolveCollisions runs once per Running frame. The order of the checks is
// fixed and decides ties between coincident collisions:
// side walls, top wall, bottom (loss, ends the pass), paddle, first brick, win.
func (s *Simulation) resolveCollisions() {
	if s.paddle == nil || s.ball == nil {
		panic("breakout: collision resolution needs exactly one paddle and one ball")
	}

	ball := s.ball
	half := ball.Size / 2
	halfW := s.cfg.Arena.Width / 2
	halfH := s.cfg.Arena.Height / 2

	// Walls bounce without positional correction.
	if ball.Pos.X-half <= -halfW || ball.Pos.X+half >= halfW {
		ball.Vel.X = -ball.Vel.X
	}
	if ball.Pos.Y+half >= halfH {
		ball.Vel.Y = -ball.Vel.Y
	}

	if ball.Pos.Y-half <= -halfH {
		ball.Vel = core.Vec2{}
		s.status = StatusLost
		s.emit(Event{Kind: EventRoundLost, Score: s.score})
		return
	}

	// Always send the ball upward so it cannot stick inside the paddle.
	if core.Overlaps(ball.Pos, ball.Size, s.paddle.Pos(), s.paddle.Width, s.paddle.Height) {
		ball.Vel.Y = math.Abs(ball.Vel.Y)
	}

	hit := -1
	for i := range s.bricks {
		b := &s.bricks[i]
		if core.Overlaps(ball.Pos, ball.Size, b.Pos, b.Width, b.Height) {
			hit = i
			break
		}
	}
	if hit < 0 {
		return
	}

	ball.Vel.Y = -ball.Vel.Y
	brick := &s.bricks[hit]
	brick.Health--

	if brick.Health > 0 {
		s.emit(Event{Kind: EventBrickDamaged, Brick: brick.ID, Health: brick.Health, Score: s.score})
		return
	}

	s.score += brick.Points()
	id := brick.ID
	s.bricks = slices.Delete(s.bricks, hit, hit+1)
	s.emit(Event{Kind: EventBrickDestroyed, Brick: id, Score: s.score})

	if len(s.bricks) == 0 {
		ball.Vel = core.Vec2{}
		s.status = StatusWon
		s.emit(Event{Kind: EventRoundWon, Score: s.score})
	}
}
