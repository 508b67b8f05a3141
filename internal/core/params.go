package core

import "image/color"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter with the given key from any group.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, group := range s.Groups {
		for _, param := range group.Params {
			if param.Key == key {
				return param, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes a HUD control that cycles a parameter by
// delivering a discrete Input to the simulation.
type ParameterControl struct {
	Key      string
	Label    string
	Type     ParamType
	Input    Input
	Shortcut string
}

// ParameterProvider exposes the current parameter snapshot.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// StatusProvider exposes a one-line status string for on-screen text.
type StatusProvider interface {
	StatusLine() string
}

// Body is a moving point exposed for debug overlays.
type Body struct {
	X, Y   float64
	VX, VY float64
}

// BodyProvider exposes the moving bodies of a simulation.
type BodyProvider interface {
	Bodies() []Body
}

// PaletteProvider exposes the colors for a simulation's cell values.
type PaletteProvider interface {
	Palette() []color.RGBA
}
