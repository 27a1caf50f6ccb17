//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Series colors follow the original metrics view: live cells blue,
// occupancy orange, growth green.
var (
	chartLiveColor      = color.RGBA{R: 90, G: 140, B: 255, A: 255}
	chartOccupancyColor = color.RGBA{R: 255, G: 165, B: 60, A: 255}
	chartGrowthColor    = color.RGBA{R: 90, G: 200, B: 110, A: 255}
	chartFrameColor     = color.RGBA{R: 70, G: 70, B: 80, A: 255}
)

// Chart draws the three metric series as polylines over a shared value axis.
type Chart struct {
	pixel *ebiten.Image
}

// NewChart constructs a chart renderer.
func NewChart() *Chart {
	c := &Chart{pixel: ebiten.NewImage(1, 1)}
	c.pixel.Fill(color.White)
	return c
}

// Draw renders the chart into the rectangle (x, y, w, h) on screen. It
// no-ops when the rectangle is too small to be legible.
func (c *Chart) Draw(screen *ebiten.Image, x, y, w, h int, live []int, occupancy []float64, growth []int) {
	if c == nil || w < 60 || h < 60 {
		return
	}

	face := basicfont.Face7x13
	const legendH = 16
	legendX := x
	for _, entry := range []struct {
		label string
		col   color.RGBA
	}{
		{"live", chartLiveColor},
		{"occ%", chartOccupancyColor},
		{"growth", chartGrowthColor},
	} {
		text.Draw(screen, entry.label, face, legendX, y+11, entry.col)
		legendX += text.BoundString(face, entry.label).Dx() + 12
	}

	plotX := float64(x)
	plotY := float64(y + legendH)
	plotW := float64(w)
	plotH := float64(h - legendH)

	c.line(screen, plotX, plotY, plotX+plotW, plotY, 1, chartFrameColor)
	c.line(screen, plotX, plotY+plotH, plotX+plotW, plotY+plotH, 1, chartFrameColor)
	c.line(screen, plotX, plotY, plotX, plotY+plotH, 1, chartFrameColor)
	c.line(screen, plotX+plotW, plotY, plotX+plotW, plotY+plotH, 1, chartFrameColor)

	liveF := intsToFloats(live)
	growthF := intsToFloats(growth)
	min, max := chartBounds(liveF, occupancy, growthF)

	const inset = 4
	for _, s := range []struct {
		values []float64
		col    color.RGBA
	}{
		{liveF, chartLiveColor},
		{occupancy, chartOccupancyColor},
		{growthF, chartGrowthColor},
	} {
		pts := chartPolyline(s.values, plotX+inset, plotY+inset, plotW-2*inset, plotH-2*inset, min, max)
		for i := 1; i < len(pts); i++ {
			c.line(screen, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, 1, s.col)
		}
	}
}

func (c *Chart) line(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if c.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(c.pixel, op)
}
