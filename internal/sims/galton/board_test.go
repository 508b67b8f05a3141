package galton

import (
	"math"
	"slices"
	"testing"
	"time"

	"galton/internal/core"
	rngcore "galton/pkg/core"
)

const epsilon = 1e-9

// dropAndSettle releases n particles one per interval and then ticks with a
// frozen clock until every particle has landed.
func dropAndSettle(t *testing.T, b *Board, n int) {
	t.Helper()
	var now time.Duration
	for guard := 0; b.TotalSpawned() < n; guard++ {
		if guard > 100000 {
			t.Fatalf("only %d of %d particles spawned", b.TotalSpawned(), n)
		}
		now += core.DefaultTickDelay
		b.Tick(now)
	}
	for guard := 0; b.ActiveCount() > 0; guard++ {
		if guard > 100000 {
			t.Fatalf("%d particles never landed", b.ActiveCount())
		}
		b.Tick(now)
	}
}

func tallBoardConfig() Config {
	cfg := DefaultConfig()
	cfg.Params.MaxHistogramHeight = 100
	return cfg
}

func nonZeroBins(bins []int) []int {
	var idx []int
	for i, c := range bins {
		if c > 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

func TestAlwaysRightFillsRightmostBin(t *testing.T) {
	b := NewWithSource(tallBoardConfig(), rngcore.Fixed(0))
	dropAndSettle(t, b, 20)

	if b.TotalSpawned() != 20 {
		t.Fatalf("total spawned = %d, want 20", b.TotalSpawned())
	}
	bins := b.Bins()
	filled := nonZeroBins(bins)
	if len(filled) != 1 {
		t.Fatalf("expected a single filled bin, got %v", bins)
	}
	if filled[0] != len(bins)-1 {
		t.Fatalf("filled bin %d, want rightmost %d", filled[0], len(bins)-1)
	}
	if bins[filled[0]] != 20 {
		t.Fatalf("bin holds %d, want 20", bins[filled[0]])
	}
}

func TestAlwaysLeftFillsLeftmostBin(t *testing.T) {
	b := NewWithSource(tallBoardConfig(), rngcore.Fixed(99))
	dropAndSettle(t, b, 20)

	bins := b.Bins()
	filled := nonZeroBins(bins)
	if len(filled) != 1 {
		t.Fatalf("expected a single filled bin, got %v", bins)
	}
	if filled[0] != 0 {
		t.Fatalf("filled bin %d, want leftmost 0", filled[0])
	}
	if b.Landed() != 20 {
		t.Fatalf("landed = %d, want 20", b.Landed())
	}
}

func TestSpawnJitterStaysInChute(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.ChuteWidth = 8
	cases := []struct {
		src  rngcore.Fixed
		want float64
	}{
		{src: 0, want: 60},
		{src: 3, want: 63},
		{src: 99, want: 67},
	}
	for _, tc := range cases {
		b := NewWithSource(cfg, tc.src)
		b.releaseBatch()

		if b.TotalSpawned() != 1 {
			t.Fatalf("source %d: total spawned = %d", tc.src, b.TotalSpawned())
		}
		p := b.pool.At(0)
		if !p.Active || p.Bin != -1 {
			t.Fatalf("source %d: spawned particle not in flight: %+v", tc.src, p)
		}
		if p.X != tc.want {
			t.Fatalf("source %d: x = %v, want %v", tc.src, p.X, tc.want)
		}
		if p.X < float64(b.geo.ChuteLeft) || p.X > float64(b.geo.ChuteRight) {
			t.Fatalf("source %d: x = %v outside chute [%d, %d]", tc.src, p.X, b.geo.ChuteLeft, b.geo.ChuteRight)
		}
		if p.Y != float64(cfg.Params.SpawnY) || p.VX != 0 || p.VY != 0 {
			t.Fatalf("source %d: unexpected spawn state %+v", tc.src, p)
		}
	}
}

type countingSource struct {
	draws int
}

func (c *countingSource) IntN(int) int {
	c.draws++
	return 0
}

func TestOnlyFirstTouchedPinDeflects(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.PinSpacingH = 2
	cfg.Params.PinRows = 2
	src := &countingSource{}
	b := NewWithSource(cfg, src)

	left, right := b.geo.Pins[1], b.geo.Pins[2]
	if left.Y != right.Y || right.X-left.X != 2 {
		t.Fatalf("unexpected second pin row: %+v %+v", left, right)
	}
	x := float64(left.X+right.X) / 2
	y := float64(left.Y) - cfg.Params.Gravity
	b.pool.slots[0] = Particle{X: x, Y: y, Active: true, Bin: -1}

	b.Tick(0)

	if src.draws != 1 {
		t.Fatalf("draws = %d, want exactly one decision per tick", src.draws)
	}
	if p := b.pool.At(0); math.Abs(p.VX-cfg.DeflectSpeed()) > epsilon {
		t.Fatalf("vx = %v, want %v", p.VX, cfg.DeflectSpeed())
	}
}

func TestSpawnGateIsStrict(t *testing.T) {
	b := NewWithConfig(DefaultConfig())
	b.Tick(time.Second)
	if b.TotalSpawned() != 0 {
		t.Fatal("no particle may spawn exactly at the release interval")
	}
	b.Tick(time.Second + time.Millisecond)
	if b.TotalSpawned() != 1 || b.ActiveCount() != 1 {
		t.Fatalf("expected one spawn, total %d active %d", b.TotalSpawned(), b.ActiveCount())
	}
	b.Tick(time.Second + 2*time.Millisecond)
	if b.TotalSpawned() != 1 {
		t.Fatal("gate must wait a full interval after the last batch")
	}
}

func TestSpawnIntoFullPool(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.MaxParticles = 2
	cfg.BallsPerDrop = 5
	b := NewWithConfig(cfg)

	b.Tick(2 * time.Second)
	if b.TotalSpawned() != 2 || b.ActiveCount() != 2 {
		t.Fatalf("expected capacity-limited batch, total %d active %d", b.TotalSpawned(), b.ActiveCount())
	}
	before := slices.Clone(b.pool.slots)
	b.releaseBatch()
	if b.TotalSpawned() != 2 {
		t.Fatalf("failed spawns counted: total %d", b.TotalSpawned())
	}
	if !slices.Equal(before, b.pool.slots) {
		t.Fatal("failed spawns mutated active particles")
	}
}

func TestRightWallReflects(t *testing.T) {
	b := NewWithConfig(DefaultConfig())
	wall := float64(b.geo.WallRight)
	b.pool.slots[0] = Particle{X: wall - 1, Y: 50, VX: 5, Active: true, Bin: -1}

	b.Tick(0)

	p := b.pool.At(0)
	if math.Abs(p.X-(wall-0.5)) > epsilon {
		t.Fatalf("x = %v, want %v", p.X, wall-0.5)
	}
	if math.Abs(p.VX-(-1.5)) > epsilon {
		t.Fatalf("vx = %v, want -1.5", p.VX)
	}
}

func TestLeftWallReflects(t *testing.T) {
	b := NewWithConfig(DefaultConfig())
	wall := float64(b.geo.WallLeft)
	b.pool.slots[0] = Particle{X: wall + 1, Y: 50, VX: -4, Active: true, Bin: -1}

	b.Tick(0)

	p := b.pool.At(0)
	if math.Abs(p.X-(wall+0.5)) > epsilon || math.Abs(p.VX-1.2) > epsilon {
		t.Fatalf("unexpected reflection: %+v", p)
	}
}

func TestPinDeflection(t *testing.T) {
	b := NewWithSource(DefaultConfig(), rngcore.Fixed(0))
	b.pool.slots[0] = Particle{X: 64, Y: 13, VY: 1, Active: true, Bin: -1}

	b.Tick(0)

	p := b.pool.At(0)
	if math.Abs(p.VX-0.54) > epsilon {
		t.Fatalf("vx = %v, want 0.54", p.VX)
	}
	if math.Abs(p.VY-(-1.2*0.3)) > epsilon {
		t.Fatalf("vy = %v, want %v", p.VY, -1.2*0.3)
	}
}

func TestLandingRetiresIntoBin(t *testing.T) {
	b := NewWithConfig(DefaultConfig())
	x := float64(b.geo.BinEdge(2) + 1)
	b.pool.slots[0] = Particle{X: x, Y: 61, VY: 1, Active: true, Bin: -1}

	b.Tick(0)

	p := b.pool.At(0)
	if p.Active || p.Bin != 2 {
		t.Fatalf("particle not retired into bin 2: %+v", p)
	}
	if got := b.Bins(); got[2] != 1 {
		t.Fatalf("bins = %v", got)
	}
	if b.Landed() != 1 {
		t.Fatalf("landed = %d", b.Landed())
	}
}

func TestNormalizationOnLanding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.MaxHistogramHeight = 3
	b := NewWithSource(cfg, rngcore.Fixed(0))
	dropAndSettle(t, b, 10)

	for _, c := range b.Bins() {
		if c > 3 {
			t.Fatalf("bins exceed display height after normalization: %v", b.Bins())
		}
	}
}

func TestApplyInputUpdatesControls(t *testing.T) {
	b := NewWithConfig(DefaultConfig())
	for i := 0; i < 5; i++ {
		b.ApplyInput(core.InputIncrementBallsPerDrop)
	}
	b.ApplyInput(core.InputIncrementBias)
	c := b.Control()
	if c.BallsPerDrop != 1 || c.Bias != 6 {
		t.Fatalf("controls = %+v", c)
	}
}

func TestResetRestoresState(t *testing.T) {
	b := NewWithConfig(HDConfig())
	var now time.Duration
	record := func() ([]uint8, View) {
		for i := 0; i < 400; i++ {
			now += core.DefaultTickDelay
			b.Tick(now)
		}
		return slices.Clone(b.Cells()), b.View()
	}

	cells, view := record()
	if view.TotalSpawned == 0 {
		t.Fatal("expected particles after 400 ticks")
	}

	b.ApplyInput(core.InputIncrementBias)
	b.Reset(0)
	now = 0
	if b.TotalSpawned() != 0 || b.ActiveCount() != 0 || b.Control().Bias != HDConfig().Bias {
		t.Fatal("reset did not clear counters and controls")
	}
	cells2, view2 := record()
	if !slices.Equal(cells, cells2) {
		t.Fatal("reset with config seed is not deterministic")
	}
	if !slices.Equal(view.Bins, view2.Bins) || view.TotalSpawned != view2.TotalSpawned {
		t.Fatalf("views differ after reset: %+v vs %+v", view.Bins, view2.Bins)
	}
}

func TestViewIsACopy(t *testing.T) {
	b := NewWithConfig(DefaultConfig())
	b.Tick(2 * time.Second)
	v := b.View()
	if v.Active != 1 || len(v.Particles) != 1 {
		t.Fatalf("view = %+v", v)
	}
	v.Particles[0].X = -1
	v.Bins[0] = 42
	v.Geometry.Pins[0].X = -1
	if b.pool.At(v.Particles[0].Slot).X == -1 || b.Bins()[0] == 42 || b.geo.Pins[0].X == -1 {
		t.Fatal("mutating the view changed the board")
	}
}

func TestRegisteredPresets(t *testing.T) {
	for _, name := range []string{"galton", "galton-hd"} {
		factory, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("%s not registered", name)
		}
		sim := factory(map[string]string{"seed": "5"})
		if sim.Name() != name {
			t.Fatalf("factory %s built %s", name, sim.Name())
		}
		size := sim.Size()
		if len(sim.Cells()) != size.W*size.H {
			t.Fatalf("%s: cells %d for size %+v", name, len(sim.Cells()), size)
		}
	}
}

func TestStatusLine(t *testing.T) {
	b := NewWithConfig(DefaultConfig())
	b.Tick(2 * time.Second)
	if got := b.StatusLine(); got != "A:1 T:1 B:5" {
		t.Fatalf("status = %q", got)
	}
}
