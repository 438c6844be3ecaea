package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// IsSpecial reports whether the brick at (row, col) is a two-hit brick.
// The pattern is a pure function of grid position so every round is identical.
func IsSpecial(row, col, every int) bool {
	if every <= 0 {
		return false
	}
	return (row+col)%every == 0
}

// SpawnBricks lays out the brick grid for a round. Bricks are returned row by
// row, left to right; that order is the collision scan order.
func SpawnBricks(cfg config.BreakoutConfig) []Brick {
	bc := cfg.Bricks
	cols := bc.ColumnCount(cfg.Arena.Width)
	if cols <= 0 || bc.Rows <= 0 {
		return nil
	}

	bricks := make([]Brick, 0, bc.Rows*cols)
	for row := range bc.Rows {
		for col := range cols {
			x := -cfg.Arena.Width/2 + bc.Width/2 + float64(col)*(bc.Width+bc.Spacing)
			y := cfg.Arena.Height/2 - bc.Height - float64(row)*(bc.Height+bc.Spacing)

			special := IsSpecial(row, col, bc.SpecialEvery)
			health := 1
			if special {
				health = 2
			}

			bricks = append(bricks, Brick{
				ID:        len(bricks),
				Row:       row,
				Col:       col,
				Pos:       core.V(x, y),
				Width:     bc.Width,
				Height:    bc.Height,
				Health:    health,
				MaxHealth: health,
				Special:   special,
			})
		}
	}
	return bricks
}

// spawnPaddle places the paddle at its fixed row, centered.
func spawnPaddle(cfg config.BreakoutConfig) *Paddle {
	return &Paddle{
		X:      0,
		Y:      cfg.Paddle.Y,
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
	}
}

// spawnBall places the ball at its start position with the launch velocity.
func spawnBall(cfg config.BreakoutConfig) *Ball {
	dir := core.V(cfg.Ball.DirX, cfg.Ball.DirY).Normalize()
	return &Ball{
		Pos:  core.V(cfg.Ball.StartX, cfg.Ball.StartY),
		Vel:  dir.Scale(cfg.Ball.Speed),
		Size: cfg.Ball.Size,
	}
}
