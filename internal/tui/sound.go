package tui

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clickFreq     = 880
	clickDuration = 15 * time.Millisecond
	// maxClicksPerFrame bounds how many landings in one frame are voiced.
	maxClicksPerFrame = 3
)

// Clicker plays a short tone for every landing. A zero Clicker, or one whose
// speaker failed to open, is silent.
type Clicker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewClicker creates an uninitialized clicker.
func NewClicker() *Clicker {
	return &Clicker{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Failure leaves the clicker silent.
func (c *Clicker) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Click queues up to maxClicksPerFrame tones.
func (c *Clicker) Click(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	if n > maxClicksPerFrame {
		n = maxClicksPerFrame
	}
	for i := 0; i < n; i++ {
		tone, err := generators.SineTone(sampleRate, clickFreq)
		if err != nil {
			return
		}
		speaker.Lock()
		c.mixer.Add(beep.Take(sampleRate.N(clickDuration), tone))
		speaker.Unlock()
	}
}

// Close stops playback and releases the speaker.
func (c *Clicker) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}
