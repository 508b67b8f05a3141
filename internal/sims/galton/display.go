package galton

import (
	"image/color"
	"math"
)

// Frame cell values, used as palette indices.
const (
	CellEmpty uint8 = iota
	CellFrame
	CellPin
	CellBall
	CellBar
)

var galtonPalette = []color.RGBA{
	CellEmpty: {R: 8, G: 10, B: 14, A: 255},
	CellFrame: {R: 110, G: 118, B: 130, A: 255},
	CellPin:   {R: 220, G: 220, B: 225, A: 255},
	CellBall:  {R: 255, G: 200, B: 60, A: 255},
	CellBar:   {R: 80, G: 170, B: 255, A: 255},
}

// Palette exposes the colors used to render the board.
func (b *Board) Palette() []color.RGBA {
	return galtonPalette
}

// rasterize redraws the frame: chute, walls, bin dividers, pins, balls and
// finally the histogram bars.
func (b *Board) rasterize() {
	g := b.frame
	geo := b.geo
	p := b.cfg.Params
	g.Clear()

	if p.ChuteWidth > 0 {
		g.FillRect(geo.ChuteLeft, 0, geo.ChuteRight, p.SpawnY-1, CellFrame)
	}

	g.FillRect(geo.WallLeft, 0, geo.WallLeft, g.H-1, CellFrame)
	g.FillRect(geo.WallRight, 0, geo.WallRight, g.H-1, CellFrame)

	top := geo.HistogramBaseY - p.MaxHistogramHeight
	for i := 0; i <= geo.NumBins; i++ {
		x := geo.BinEdge(i)
		g.FillRect(x, top, x, g.H-1, CellFrame)
	}

	for _, pin := range geo.Pins {
		g.FillDisc(pin.X, pin.Y, p.PinDiameter/2, CellPin)
	}

	for _, pt := range b.pool.slots {
		if !pt.Active {
			continue
		}
		g.FillDisc(int(math.Floor(pt.X)), int(math.Floor(pt.Y)), p.BallDiameter/2, CellBall)
	}

	for i, h := range b.hist.counts {
		x0 := geo.BinEdge(i) + 2
		x1 := geo.BinEdge(i) + geo.BinWidth - 1
		if x1 < x0 {
			continue
		}
		for hh := 0; hh < h; hh++ {
			g.FillRect(x0, geo.HistogramBaseY-hh, x1, geo.HistogramBaseY-hh, CellBar)
		}
	}
}
