//go:build ebiten

package app

import (
	"image/color"

	"life-lab/internal/core"
	"life-lab/internal/life"
	"life-lab/internal/render"
	"life-lab/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the simulation controller to the ebiten.Game interface. The
// controller is driven only from Update, so the core's single-thread
// contract holds.
type Game struct {
	ctrl    *life.Controller
	cfg     *Config
	painter *render.GridPainter
	hud     *ui.HUD
	chart   *ui.Chart
	timer   *core.FixedStep

	aliveColor color.Color
	deadColor  color.Color

	running  bool
	tickOnce bool
}

// New constructs a Game around the provided controller.
func New(ctrl *life.Controller, cfg *Config) *Game {
	board := ctrl.Grid()
	return &Game{
		ctrl:       ctrl,
		cfg:        cfg,
		painter:    render.NewGridPainter(board.Width(), board.Height()),
		hud:        ui.NewHUD(cfg.PanelWidth),
		chart:      ui.NewChart(),
		timer:      core.NewFixedStep(cfg.Speed),
		aliveColor: color.Black,
		deadColor:  color.White,
	}
}

func (g *Game) gridPixelWidth() int  { return g.ctrl.Grid().Width() * g.cfg.Scale }
func (g *Game) gridPixelHeight() int { return g.ctrl.Grid().Height() * g.cfg.Scale }

// Update handles input and advances the simulation at the configured
// cadence.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.toggleRun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.randomize()
	}

	switch g.hud.Update(g.gridPixelWidth()) {
	case ui.ActionToggleRun:
		g.toggleRun()
	case ui.ActionStep:
		g.tickOnce = true
	case ui.ActionClear:
		g.ctrl.Clear()
	case ui.ActionRandomize:
		g.randomize()
	case ui.ActionSlower:
		g.timer.SetTPS(g.timer.TPS() / 2)
	case ui.ActionFaster:
		g.timer.SetTPS(g.timer.TPS() * 2)
	default:
		g.handleGridClick()
	}

	if (g.running && g.timer.ShouldStep()) || g.tickOnce {
		g.ctrl.Advance()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) toggleRun() {
	g.running = !g.running
	g.timer.Pause()
}

func (g *Game) randomize() {
	// Construction already validated the density, so this cannot fail.
	_ = g.ctrl.Randomize(g.cfg.Density)
}

func (g *Game) handleGridClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.gridPixelWidth() || my >= g.gridPixelHeight() {
		return
	}
	// In bounds by the check above.
	_ = g.ctrl.ToggleCell(mx/g.cfg.Scale, my/g.cfg.Scale)
}

// Draw renders the board, the control panel, and the metrics chart.
func (g *Game) Draw(screen *ebiten.Image) {
	board := g.ctrl.Grid()
	g.painter.Blit(screen, board.Cells(), g.aliveColor, g.deadColor, g.cfg.Scale)

	metrics := g.ctrl.Metrics()
	stats := ui.Stats{
		Generation: g.ctrl.Generation(),
		LiveCells:  board.LiveCount(),
		Running:    g.running,
		TPS:        g.timer.TPS(),
	}
	if occ := metrics.OccupancySeries(); len(occ) > 0 {
		stats.Occupancy = occ[len(occ)-1]
	}
	if growth := metrics.GrowthSeries(); len(growth) > 0 {
		stats.Growth = growth[len(growth)-1]
	}

	offsetX := g.gridPixelWidth()
	height := g.gridPixelHeight()
	g.hud.Draw(screen, offsetX, height, stats)

	const chartPad = 10
	chartTop := g.hud.ChartTop()
	g.chart.Draw(screen, offsetX+chartPad, chartTop, g.cfg.PanelWidth-2*chartPad, height-chartTop-chartPad,
		metrics.LiveHistory(), metrics.OccupancySeries(), metrics.GrowthSeries())
}

// Layout returns the logical screen size: the scaled board plus the panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridPixelWidth() + g.cfg.PanelWidth, g.gridPixelHeight()
}
