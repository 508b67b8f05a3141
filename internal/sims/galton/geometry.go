package galton

import "math"

// Pin is a static obstacle centre. All pins share Params.PinDiameter.
type Pin struct {
	X, Y int
}

// Geometry is the read-only layout derived from a Config.
type Geometry struct {
	Width  int
	Height int

	WallLeft  int
	WallRight int
	BinsLeft  int

	ChuteLeft  int
	ChuteRight int

	HistogramBaseY int

	NumBins  int
	BinWidth int

	Pins []Pin
}

// PinCount returns the number of pins in a triangle of the given rows.
func PinCount(rows int) int {
	if rows <= 0 {
		return 0
	}
	return rows * (rows + 1) / 2
}

// BuildGeometry computes walls, chute, histogram base and the pin table.
func BuildGeometry(cfg Config) Geometry {
	p := cfg.Params
	total := p.NumBins * p.BinWidth
	g := Geometry{
		Width:          cfg.Width,
		Height:         cfg.Height,
		NumBins:        p.NumBins,
		BinWidth:       p.BinWidth,
		HistogramBaseY: cfg.Height - p.BaseMargin,
	}
	g.WallLeft = (cfg.Width-total)/2 - p.WallOffset
	g.WallRight = g.WallLeft + total + 2*p.WallOffset
	g.BinsLeft = g.WallLeft + p.WallOffset
	g.ChuteLeft = cfg.Width/2 - p.ChuteWidth/2
	g.ChuteRight = cfg.Width/2 + p.ChuteWidth/2

	g.Pins = make([]Pin, 0, PinCount(p.PinRows))
	for row := 0; row < p.PinRows; row++ {
		inRow := row + 1
		startX := cfg.Width/2 - (inRow-1)*p.PinSpacingH/2
		for col := 0; col < inRow; col++ {
			g.Pins = append(g.Pins, Pin{
				X: startX + col*p.PinSpacingH,
				Y: p.PinTop + row*p.PinSpacingV,
			})
		}
	}
	return g
}

// BinFor maps a horizontal position to a bin index. Each bin covers the
// half-open interval [edge(i), edge(i+1)); indices outside [0, NumBins) are
// clamped to the nearest edge bin.
func (g Geometry) BinFor(x float64) int {
	if g.NumBins <= 0 || g.BinWidth <= 0 {
		return 0
	}
	bin := int(math.Floor((x - float64(g.BinsLeft)) / float64(g.BinWidth)))
	if bin < 0 {
		return 0
	}
	if bin >= g.NumBins {
		return g.NumBins - 1
	}
	return bin
}

// BinEdge returns the left edge x of bin i. BinEdge(NumBins) is the right
// edge of the last bin.
func (g Geometry) BinEdge(i int) int {
	return g.BinsLeft + i*g.BinWidth
}

func (g Geometry) clone() Geometry {
	out := g
	out.Pins = append([]Pin(nil), g.Pins...)
	return out
}
