package breakout

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar       = '='
	BallChar         = '●'
	BrickChar        = '█'
	SpecialBrickChar = '▓'
	DamagedBrickChar = '▒'
)

// Minimum terminal size the game will draw into.
const (
	MinScreenW = 30
	MinScreenH = 15
)

// configPath stores the custom config path set via CLI
var configPath string

// layoutOverride is set via CLI and wins over the per-game layout.
var layoutOverride config.LayoutPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLayoutPreset forces a brick layout for every Breakout variant,
// overriding bricks.columns from the config file. An empty preset
// restores the per-variant default.
func SetLayoutPreset(preset config.LayoutPreset) {
	layoutOverride = preset
}

// SetLogger sets the logger used by Game. A nil logger discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts Simulation to the registry and draws it on a character screen.
type Game struct {
	id     string
	title  string
	layout config.LayoutPreset

	sim     *Simulation
	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig
	paused  bool

	screenTooSmall bool
}

// New creates the default Breakout, with as many columns as fit the arena.
func New() *Game {
	return &Game{id: "breakout", title: "Breakout", layout: config.LayoutFitted}
}

// NewClassic creates Breakout with the fixed ten-column layout, unless the
// config file sets bricks.columns itself.
func NewClassic() *Game {
	return &Game{id: "breakout_classic", title: "Breakout (Classic)", layout: config.LayoutClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new session: config is reloaded and all scores are cleared.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "err", err)
		cfg = config.DefaultBreakoutConfig()
	}

	layout := g.layout
	switch {
	case layoutOverride != "":
		layout = layoutOverride
		config.ApplyLayoutPreset(&cfg, layout)
	case layout == config.LayoutClassic && cfg.Bricks.Columns == 0:
		config.ApplyLayoutPreset(&cfg, layout)
	}

	g.cfg = cfg
	g.sim = NewSimulation(cfg)
	g.paused = false
	g.runtime = runtime
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	logger.Info("round started", "game", g.id, "layout", layout,
		"bricks", g.sim.BricksRemaining(), "columns", cfg.Bricks.ColumnCount(cfg.Arena.Width))
}

// Resize updates the drawing area without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.sim.Status() == StatusRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := core.SanitizeDelta(g.runtime.FrameDelta())
	events := g.sim.Step(Input{
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Restart: in.Has(core.ActionRestart),
	}, dt)
	g.logEvents(events)

	return core.StepResult{State: g.State()}
}

func (g *Game) logEvents(events []Event) {
	for _, e := range events {
		switch e.Kind {
		case EventBrickDamaged:
			logger.Debug("brick damaged", "brick", e.Brick, "health", e.Health)
		case EventBrickDestroyed:
			logger.Debug("brick destroyed", "brick", e.Brick, "score", e.Score)
		case EventRoundWon:
			logger.Info("round won", "score", e.Score)
		case EventRoundLost:
			logger.Info("round lost", "score", e.Score)
		case EventRestarted:
			logger.Info("round restarted", "last_score", e.Score)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.Status() != StatusRunning,
		Paused:   g.paused,
	}
}

// Simulation exposes the underlying simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall || dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	v := g.sim.View()
	g.renderHUD(dst, v)

	frame := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	dst.DrawBox(frame)
	p := newProjection(v.Arena, core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2))

	for _, b := range v.Bricks {
		glyph, color := BrickChar, core.ColorRed
		switch {
		case b.Damaged:
			glyph, color = DamagedBrickChar, core.ColorGray
		case b.Special:
			glyph, color = SpecialBrickChar, core.ColorOrange
		}
		r := p.rect(b.Transform)
		if r.W > 1 {
			r.W-- // Leave a gap so neighbours stay distinct
		}
		dst.FillRect(r, glyph, color)
	}

	dst.FillRect(p.rect(v.Paddle), PaddleChar, core.ColorWhite)

	bx, by := p.point(v.Ball.Pos)
	dst.SetColored(bx, by, BallChar, core.ColorYellow)

	switch {
	case v.Panel != nil && v.Status == StatusLost:
		drawPanel(dst, v.Panel, core.ColorBrightRed)
	case v.Panel != nil:
		drawPanel(dst, v.Panel, core.ColorBrightYellow)
	case g.paused:
		drawPanel(dst, &Panel{Headline: "Paused", Hint: "Press P to resume"}, core.ColorBrightYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen, v View) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", v.Score), core.ColorCyan)

	if v.HasLastScore {
		last := fmt.Sprintf("Last: %d", v.LastScore)
		dst.DrawTextColored((dst.Width()-len(last))/2, 0, last, core.ColorDim)
	}

	bricks := fmt.Sprintf("Bricks: %d", len(v.Bricks))
	dst.DrawText(dst.Width()-len(bricks)-1, 0, bricks)
}

// drawPanel draws the end-of-round message in a centered box.
// The headline takes color; the other lines stay bright yellow.
func drawPanel(dst *core.Screen, p *Panel, color core.Color) {
	lines := []string{p.Headline}
	if p.Comparison != "" {
		lines = append(lines, p.Comparison)
	}
	lines = append(lines, "", p.Hint)

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	boxW := core.Clamp(width+4, 0, dst.Width())
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	for i, l := range lines {
		c := core.ColorBrightYellow
		if i == 0 {
			c = color
		}
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, c)
	}
}

// projection maps y-up arena coordinates centered at the origin onto screen cells.
type projection struct {
	arena  core.Vec2
	area   core.Rect
	sx, sy float64 // cells per arena unit
}

func newProjection(arena core.Vec2, area core.Rect) projection {
	return projection{
		arena: arena,
		area:  area,
		sx:    float64(area.W) / arena.X,
		sy:    float64(area.H) / arena.Y,
	}
}

// cell converts arena coordinates to fractional screen coordinates.
func (p projection) cell(x, y float64) (float64, float64) {
	cx := float64(p.area.X) + (x+p.arena.X/2)*p.sx
	cy := float64(p.area.Y) + (p.arena.Y/2-y)*p.sy
	return cx, cy
}

// point returns the cell containing an arena point, clamped to the area.
func (p projection) point(pos core.Vec2) (int, int) {
	cx, cy := p.cell(pos.X, pos.Y)
	x := core.Clamp(int(math.Floor(cx)), p.area.X, p.area.Right()-1)
	y := core.Clamp(int(math.Floor(cy)), p.area.Y, p.area.Bottom()-1)
	return x, y
}

// rect returns the cells covered by an entity, at least one cell in each direction.
func (p projection) rect(t Transform) core.Rect {
	left, top := p.cell(t.Pos.X-t.Width/2, t.Pos.Y+t.Height/2)
	right, bottom := p.cell(t.Pos.X+t.Width/2, t.Pos.Y-t.Height/2)

	x0, y0 := int(math.Round(left)), int(math.Round(top))
	x1, y1 := int(math.Round(right)), int(math.Round(bottom))
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	x0 = core.Clamp(x0, p.area.X, p.area.Right()-1)
	y0 = core.Clamp(y0, p.area.Y, p.area.Bottom()-1)
	x1 = core.Clamp(x1, x0+1, p.area.Right())
	y1 = core.Clamp(y1, y0+1, p.area.Bottom())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_classic", func() registry.Game {
		return NewClassic()
	})
}
