//go:build ebiten

package app

import (
	"image/color"

	"galton/internal/core"
	"galton/internal/render"
	"galton/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyActions = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeyA, ActionBallsPerDrop},
	{ebiten.KeyB, ActionBias},
	{ebiten.KeySpace, ActionPause},
	{ebiten.KeyN, ActionStep},
	{ebiten.KeyR, ActionReset},
	{ebiten.KeyS, ActionReseed},
	{ebiten.KeyQ, ActionQuit},
	{ebiten.KeyEscape, ActionQuit},
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	palette []color.RGBA

	scale    int
	hudWidth int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		ctrl:     NewController(sim, core.NewSystemClock(), cfg.TickDelay, cfg.Seed),
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
	}
	if provider, ok := sim.(core.PaletteProvider); ok {
		g.palette = provider.Palette()
	}
	if cfg.Paused {
		g.ctrl.Press(ActionPause)
	}
	return g
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			g.ctrl.Press(ka.action)
		}
	}
	if g.ctrl.Quit() {
		return ebiten.Termination
	}
	if in, ok := g.hud.Update(g.boardWidth()); ok {
		g.ctrl.Input(in)
	}
	g.overlay.Update()
	g.ctrl.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctrl.Sim().Cells(), g.palette, color.White, color.Black, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.boardWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctrl.Sim().Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}

func (g *Game) boardWidth() int {
	return g.ctrl.Sim().Size().W * g.scale
}
