package breakout

import "math"

// Snapshot contains the complete simulation state for replay and determinism checks.
// Floats are stored as their IEEE-754 bits for a stable, exact comparison.
type Snapshot struct {
	Frame        uint64
	Status       int
	PrevStatus   int
	Score        int
	LastScore    int
	HasLastScore bool
	PanelShown   bool
	PrevRestart  bool

	PaddleX uint64

	// Ball is 4 values: X, Y, VX, VY
	BallData []uint64

	// Each live brick is 3 ints: ID, Health, Special
	BrickData []int
}

// Snapshot returns the current simulation state as a Snapshot.
func (s *Simulation) Snapshot() Snapshot {
	brickData := make([]int, 0, len(s.bricks)*3)
	for _, b := range s.bricks {
		special := 0
		if b.Special {
			special = 1
		}
		brickData = append(brickData, b.ID, b.Health, special)
	}

	return Snapshot{
		Frame:        s.frame,
		Status:       int(s.status),
		PrevStatus:   int(s.prevStatus),
		Score:        s.score,
		LastScore:    s.lastScore,
		HasLastScore: s.hasLastScore,
		PanelShown:   s.panel != nil,
		PrevRestart:  s.prevRestart,

		PaddleX: math.Float64bits(s.paddle.X),
		BallData: []uint64{
			math.Float64bits(s.ball.Pos.X),
			math.Float64bits(s.ball.Pos.Y),
			math.Float64bits(s.ball.Vel.X),
			math.Float64bits(s.ball.Vel.Y),
		},
		BrickData: brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Status)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PrevStatus) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LastScore)  //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.HasLastScore)
	h = h*31 + boolBit(snap.PanelShown)
	h = h*31 + boolBit(snap.PrevRestart)
	h = h*31 + snap.PaddleX

	for _, v := range snap.BallData {
		h = h*31 + v
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
