//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"galton/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the board.
type Overlay struct {
	sim          core.Sim
	scale        int
	showVelocity bool
	pixel        *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showVelocity = !o.showVelocity
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showVelocity {
		return
	}
	provider, ok := o.sim.(core.BodyProvider)
	if !ok {
		return
	}
	const (
		calmThreshold    = 0.05
		maxSpeedEstimate = 3.0
		headAngle        = math.Pi / 6
	)
	scale := float64(o.scale)
	if scale <= 0 {
		scale = 1
	}
	for _, body := range provider.Bodies() {
		a, moving := velocityArrow(body, o.scale, calmThreshold)
		if !moving {
			o.drawPoint(screen, a.tailX, a.tailY, scale*0.75, color.RGBA{R: 90, G: 130, B: 170, A: 120})
			continue
		}
		normalized := clamp01(a.speed / maxSpeedEstimate)
		col := interpolateColor(normalized)
		thickness := math.Max(1, scale*0.4)
		o.drawLine(screen, a.tailX, a.tailY, a.tipX, a.tipY, thickness, col)

		headLength := math.Min(math.Hypot(a.tipX-a.tailX, a.tipY-a.tailY)*0.35, scale*3)
		angle := math.Atan2(a.tipY-a.tailY, a.tipX-a.tailX)
		o.drawLine(screen, a.tipX, a.tipY, a.tipX-math.Cos(angle+headAngle)*headLength, a.tipY-math.Sin(angle+headAngle)*headLength, thickness, col)
		o.drawLine(screen, a.tipX, a.tipY, a.tipX-math.Cos(angle-headAngle)*headLength, a.tipY-math.Sin(angle-headAngle)*headLength, thickness, col)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
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
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
