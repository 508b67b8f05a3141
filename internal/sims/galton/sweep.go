package galton

import (
	"sort"
	"sync"
	"time"

	"galton/internal/core"
)

// SweepResult captures the final state of one headless bias run.
type SweepResult struct {
	Bias         float64
	Bins         []int
	TotalSpawned int
	Landed       int
	// MeanBin is the height-weighted mean bin index, or -1 for an empty histogram.
	MeanBin float64
	Ticks   int
}

// RunScenario simulates a fresh board at the given bias for ticks steps,
// advancing a simulated clock by delay each step.
func RunScenario(cfg Config, bias float64, ticks int, delay time.Duration) SweepResult {
	if delay <= 0 {
		delay = core.DefaultTickDelay
	}
	cfg.Bias = bias
	board := NewWithConfig(cfg)

	var now time.Duration
	for i := 0; i < ticks; i++ {
		now += delay
		board.Tick(now)
	}

	bins := board.Bins()
	return SweepResult{
		Bias:         board.Control().Bias,
		Bins:         bins,
		TotalSpawned: board.TotalSpawned(),
		Landed:       board.Landed(),
		MeanBin:      meanBin(bins),
		Ticks:        ticks,
	}
}

// Sweep runs one isolated board per bias on a bounded worker pool and returns
// the results ordered by bias.
func Sweep(cfg Config, biases []float64, ticks int, delay time.Duration, workers int) []SweepResult {
	if workers <= 0 {
		workers = 1
	}
	results := make([]SweepResult, len(biases))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, bias := range biases {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, b float64) {
			defer wg.Done()
			results[i] = RunScenario(cfg, b, ticks, delay)
			<-sem
		}(idx, bias)
	}
	wg.Wait()

	sort.SliceStable(results, func(i, j int) bool { return results[i].Bias < results[j].Bias })
	return results
}

func meanBin(bins []int) float64 {
	sum, weight := 0, 0
	for i, h := range bins {
		sum += i * h
		weight += h
	}
	if weight == 0 {
		return -1
	}
	return float64(sum) / float64(weight)
}
