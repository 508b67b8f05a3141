package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"galton/internal/app"
	"galton/internal/core"
	"galton/internal/sims/galton"
)

func main() {
	preset := flag.String("sim", "galton", "board preset (galton, galton-hd)")
	biasList := flag.String("biases", "0,1,2,3,4,5,6,7,8,9,10", "comma-separated bias values to simulate")
	ticks := flag.Int("ticks", 6000, "ticks to simulate per bias")
	delay := flag.Duration("tick", core.DefaultTickDelay, "simulated time per tick")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel board runs")
	seed := flag.Int64("seed", 1, "seed for every board")
	configFile := flag.String("config", "", "YAML file with board overrides")
	var sets app.KVList
	flag.Var(&sets, "set", "board override in key=value form (repeatable)")
	flag.Parse()

	base, ok := galton.Preset(*preset)
	if !ok {
		log.Fatalf("[sweep] unknown preset %q", *preset)
	}
	overrides, err := app.LoadOverrides(*configFile)
	if err != nil {
		log.Fatalf("[sweep] %v", err)
	}
	for k, v := range sets.Map() {
		overrides[k] = v
	}
	cfg := galton.Apply(base, overrides)
	cfg.Seed = *seed
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[sweep] %v", err)
	}

	biases, err := parseBiases(*biasList)
	if err != nil {
		log.Fatalf("[sweep] %v", err)
	}

	start := time.Now()
	results := galton.Sweep(cfg, biases, *ticks, *delay, *workers)
	log.Printf("[sweep] %d boards x %d ticks in %s", len(results), *ticks, time.Since(start).Round(time.Millisecond))

	for _, r := range results {
		fmt.Printf("bias %4.1f  right %2d%%  spawned %5d  landed %5d  mean bin %5.2f  %s\n",
			r.Bias, galton.Threshold(r.Bias), r.TotalSpawned, r.Landed, r.MeanBin, sparkline(r.Bins, cfg.Params.MaxHistogramHeight))
	}
}

func parseBiases(list string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("bias %q: %w", field, err)
		}
		if v < galton.MinBias || v > galton.MaxBias {
			return nil, fmt.Errorf("bias %v outside [%d,%d]", v, galton.MinBias, galton.MaxBias)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no bias values given")
	}
	return out, nil
}

var levels = []rune(" ▁▂▃▄▅▆▇█")

func sparkline(bins []int, maxHeight int) string {
	if maxHeight <= 0 {
		maxHeight = 1
	}
	var b strings.Builder
	for _, h := range bins {
		idx := h * (len(levels) - 1) / maxHeight
		if idx >= len(levels) {
			idx = len(levels) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(levels[idx])
	}
	return b.String()
}
