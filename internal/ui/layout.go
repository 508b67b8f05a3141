package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"galton/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 18
	controlsTop    = panelPadding + headerBaseline + 14
)

type hudControlState struct {
	control  core.ParameterControl
	value    string
	hasValue bool

	top        int
	buttonRect image.Rectangle
}

func newControlStates(controls []core.ParameterControl, width int) []hudControlState {
	states := make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		states[i] = hudControlState{
			control:    ctrl,
			value:      "--",
			top:        top,
			buttonRect: image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize),
		}
	}
	return states
}

// refreshControlValues copies current values from snapshot into states.
func refreshControlValues(states []hudControlState, snapshot core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.value, state.hasValue = formatValue(state.control.Type, param.Value)
	}
}

func formatValue(kind core.ParamType, raw string) (string, bool) {
	switch kind {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return "--", false
		}
		return strconv.Itoa(parsed), true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "--", false
		}
		precision := 0
		if parsed != math.Trunc(parsed) {
			precision = 2
		}
		return strconv.FormatFloat(parsed, 'f', precision, 64), true
	default:
		return "--", false
	}
}

// hitControl returns the input of the control whose button contains (x, y).
func hitControl(states []hudControlState, x, y int) (core.Input, bool) {
	for _, state := range states {
		if state.hasValue && pointInRect(x, y, state.buttonRect) {
			return state.control.Input, true
		}
	}
	return 0, false
}

// infoLines renders the read-only groups of snapshot as "Label: value" lines.
func infoLines(snapshot core.ParameterSnapshot, groups ...string) []string {
	var lines []string
	for _, name := range groups {
		for _, group := range snapshot.Groups {
			if group.Name != name {
				continue
			}
			for _, param := range group.Params {
				lines = append(lines, param.Label+": "+param.Value)
			}
		}
	}
	return lines
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// arrow is a velocity vector in screen space.
type arrow struct {
	tailX, tailY float64
	tipX, tipY   float64
	speed        float64
}

// velocityArrow scales a body's velocity into a screen-space arrow starting
// at the body's pixel centre. Bodies slower than calm yield ok == false.
func velocityArrow(b core.Body, scale int, calm float64) (arrow, bool) {
	if scale <= 0 {
		scale = 1
	}
	s := float64(scale)
	a := arrow{
		tailX: (b.X + 0.5) * s,
		tailY: (b.Y + 0.5) * s,
		speed: math.Hypot(b.VX, b.VY),
	}
	if a.speed < calm {
		a.tipX, a.tipY = a.tailX, a.tailY
		return a, false
	}
	const ticksShown = 4
	a.tipX = a.tailX + b.VX*ticksShown*s
	a.tipY = a.tailY + b.VY*ticksShown*s
	return a, true
}

func interpolateColor(t float64) color.RGBA {
	t = clamp01(t)
	r := uint8(math.Round(80 + 170*t))
	g := uint8(math.Round(170 + 40*t))
	b := uint8(math.Round(230 - 170*t))
	a := uint8(math.Round(150 + 90*t))
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
