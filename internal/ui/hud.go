//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 10
	headerBaseline = 14
	readoutSpacing = 16
	readoutCount   = 5
	buttonHeight   = 22
	buttonGap      = 8
)

type hudButton struct {
	action Action
	label  string
	rect   image.Rectangle
}

// HUD renders the control panel to the right of the grid view and reports
// button presses back to the app.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	pixel      *ebiten.Image
	buttons    []hudButton
	chartTop   int
}

// NewHUD constructs a HUD with the provided panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.layoutButtons()
	return h
}

func (h *HUD) layoutButtons() {
	defs := []struct {
		action Action
		label  string
	}{
		{ActionToggleRun, "Start"},
		{ActionStep, "Step"},
		{ActionClear, "Clear"},
		{ActionRandomize, "Randomize"},
		{ActionSlower, "Slower"},
		{ActionFaster, "Faster"},
	}
	const cols = 2
	bw := (h.width - panelPadding*(cols+1)) / cols
	top := panelPadding + headerBaseline + readoutSpacing*readoutCount + buttonGap
	rows := 0
	for i, def := range defs {
		col := i % cols
		row := i / cols
		x0 := panelPadding + col*(bw+panelPadding)
		y0 := top + row*(buttonHeight+buttonGap)
		h.buttons = append(h.buttons, hudButton{
			action: def.action,
			label:  def.label,
			rect:   image.Rect(x0, y0, x0+bw, y0+buttonHeight),
		})
		if row+1 > rows {
			rows = row + 1
		}
	}
	h.chartTop = top + rows*(buttonHeight+buttonGap) + buttonGap
}

// ChartTop returns the panel-local y coordinate below the buttons where the
// chart may start.
func (h *HUD) ChartTop() int {
	if h == nil {
		return 0
	}
	return h.chartTop
}

// Update hit-tests a mouse press against the buttons. panelOffsetX is the
// screen x where the panel begins; clicks left of it belong to the grid.
func (h *HUD) Update(panelOffsetX int) Action {
	if h == nil || h.width <= 0 {
		return ActionNone
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ActionNone
	}
	mx, my := ebiten.CursorPosition()
	if mx < panelOffsetX {
		return ActionNone
	}
	px := mx - panelOffsetX
	for _, btn := range h.buttons {
		if pointInRect(px, my, btn.rect) {
			return btn.action
		}
	}
	return ActionNone
}

func pointInRect(x, y int, r image.Rectangle) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

// Draw paints the panel anchored at offsetX with the given pixel height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, stats Stats) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, "Game of Life", face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	readouts := []string{
		fmt.Sprintf("Generation %d", stats.Generation),
		fmt.Sprintf("Live cells %d", stats.LiveCells),
		fmt.Sprintf("Occupancy  %.1f%%", stats.Occupancy),
		fmt.Sprintf("Growth     %+d", stats.Growth),
		fmt.Sprintf("Speed      %d gen/s", stats.TPS),
	}
	for i, line := range readouts {
		y := headerY + readoutSpacing*(i+1)
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}

	for _, btn := range h.buttons {
		label := btn.label
		if btn.action == ActionToggleRun && stats.Running {
			label = "Stop"
		}
		h.drawButton(btn.rect, label)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(r image.Rectangle, label string) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorM.Scale(0.22, 0.24, 0.30, 1)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	tx := r.Min.X + (r.Dx()-bounds.Dx())/2
	ty := r.Min.Y + (r.Dy()+face.Ascent)/2 - 1
	text.Draw(h.panel, label, face, tx, ty, color.RGBA{R: 230, G: 230, B: 235, A: 255})
}
