package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Input is the per-frame key snapshot the simulation consumes.
type Input struct {
	Left    bool
	Right   bool
	Restart bool // Held state; the simulation detects the press edge itself
}

// Simulation owns all mutable round state. It is stepped once per frame from a
// single goroutine and is not safe for concurrent use.
type Simulation struct {
	cfg config.BreakoutConfig

	paddle *Paddle
	ball   *Ball
	bricks []Brick

	score        int
	lastScore    int
	hasLastScore bool

	status      Status
	prevStatus  Status
	panel       *Panel
	prevRestart bool

	frame  uint64
	events []Event
}

// NewSimulation creates a simulation with a fresh round already spawned.
// cfg is assumed valid (see config.BreakoutConfig.Validate).
func NewSimulation(cfg config.BreakoutConfig) *Simulation {
	s := &Simulation{cfg: cfg}
	s.spawn()
	return s
}

// spawn creates the paddle, ball and brick grid exactly as at initial setup.
func (s *Simulation) spawn() {
	s.paddle = spawnPaddle(s.cfg)
	s.ball = spawnBall(s.cfg)
	s.bricks = SpawnBricks(s.cfg)
}

func (s *Simulation) emit(e Event) {
	s.events = append(s.events, e)
}

// Step advances the simulation by dt seconds and returns the events of this
// frame. dt must already be sanitized (see core.SanitizeDelta).
//
// Paddle movement, ball integration and collision resolution run only while the
// round is Running. The state machine runs every frame: it raises the
// end-of-round panel on the Running->Won/Lost edge and restarts on a fresh
// restart press once the round is over.
func (s *Simulation) Step(in Input, dt float64) []Event {
	s.events = nil
	s.frame++

	if s.status == StatusRunning {
		s.paddle.X = MovePaddle(s.paddle.X, Intent(in.Left, in.Right), s.paddle.Width,
			s.cfg.Arena.Width, s.cfg.Paddle.Speed, dt)
		IntegrateBall(s.ball, dt)
		s.resolveCollisions()
	}

	s.updateState(in)
	return s.events
}

// updateState handles the end-of-round edge and restart input.
func (s *Simulation) updateState(in Input) {
	if s.status != s.prevStatus && s.status != StatusRunning && s.panel == nil {
		s.panel = newPanel(s.status, s.score, s.lastScore, s.hasLastScore)
		s.emit(Event{Kind: EventShowPanel, Score: s.score, Panel: s.panel})
	}
	s.prevStatus = s.status

	pressed := in.Restart && !s.prevRestart
	s.prevRestart = in.Restart

	if pressed && s.status != StatusRunning {
		s.restart()
	}
}

// restart tears the round down and spawns a new one, remembering the score.
func (s *Simulation) restart() {
	s.paddle, s.ball, s.bricks = nil, nil, nil
	if s.panel != nil {
		s.panel = nil
		s.emit(Event{Kind: EventClearPanel})
	}

	s.lastScore = s.score
	s.hasLastScore = true
	s.score = 0
	s.status = StatusRunning
	s.prevStatus = StatusRunning

	s.spawn()
	s.emit(Event{Kind: EventRestarted, Score: s.lastScore})
}

// Status returns the round state.
func (s *Simulation) Status() Status {
	return s.status
}

// Score returns the score of the current round.
func (s *Simulation) Score() int {
	return s.score
}

// LastScore returns the previous round's final score, if a restart has happened.
func (s *Simulation) LastScore() (int, bool) {
	return s.lastScore, s.hasLastScore
}

// Panel returns the end-of-round panel, or nil while none is shown.
func (s *Simulation) Panel() *Panel {
	return s.panel
}

// BricksRemaining returns the number of live bricks.
func (s *Simulation) BricksRemaining() int {
	return len(s.bricks)
}

// Frame returns the number of steps taken since creation.
func (s *Simulation) Frame() uint64 {
	return s.frame
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.BreakoutConfig {
	return s.cfg
}

// Transform is the position and size of a drawable entity.
type Transform struct {
	Pos           core.Vec2
	Width, Height float64
}

// BrickView is a live brick as seen by the renderer.
type BrickView struct {
	Transform
	ID      int
	Health  int
	Special bool
	Damaged bool // Hit but alive; drawn faded
}

// View is a read-only copy of everything the renderer needs for one frame.
type View struct {
	Arena        core.Vec2 // Width, height
	Paddle       Transform
	Ball         Transform
	BallVel      core.Vec2
	Bricks       []BrickView
	Score        int
	LastScore    int
	HasLastScore bool
	Status       Status
	Panel        *Panel
}

// View returns the current frame for rendering.
func (s *Simulation) View() View {
	v := View{
		Arena:        core.V(s.cfg.Arena.Width, s.cfg.Arena.Height),
		Paddle:       Transform{Pos: s.paddle.Pos(), Width: s.paddle.Width, Height: s.paddle.Height},
		Ball:         Transform{Pos: s.ball.Pos, Width: s.ball.Size, Height: s.ball.Size},
		BallVel:      s.ball.Vel,
		Bricks:       make([]BrickView, len(s.bricks)),
		Score:        s.score,
		LastScore:    s.lastScore,
		HasLastScore: s.hasLastScore,
		Status:       s.status,
	}
	if s.panel != nil {
		p := *s.panel
		v.Panel = &p
	}
	for i := range s.bricks {
		b := &s.bricks[i]
		v.Bricks[i] = BrickView{
			Transform: Transform{Pos: b.Pos, Width: b.Width, Height: b.Height},
			ID:        b.ID,
			Health:    b.Health,
			Special:   b.Special,
			Damaged:   b.Damaged(),
		}
	}
	return v
}
