package sensor

import (
	"math/rand"
	"time"

	"github.com/chewxy/math32"

	"github.com/sigtap/sigtap/pkg/config"
)

// Synthetic produces an alpha-band test signal (sine plus gaussian
// noise) scaled into the converter's code range, for exercising the
// pipeline without hardware.
type Synthetic struct {
	freq  float32
	amp   float32
	noise float32
	max   uint16
	start time.Time
	rng   *rand.Rand
}

// NewSynthetic builds a synthetic source from the configuration.
func NewSynthetic(cfg *config.Config) *Synthetic {
	seed := cfg.Synthetic.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	max := cfg.Sampling.ADCMax
	if max == 0 {
		max = 1023
	}
	return &Synthetic{
		freq:  float32(cfg.Synthetic.FrequencyHz),
		amp:   float32(cfg.Synthetic.Amplitude),
		noise: float32(cfg.Synthetic.NoiseLevel),
		max:   max,
		start: time.Now(),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Read returns the waveform value at the current instant, mapped into
// [0, Max()].
func (s *Synthetic) Read() (uint16, error) {
	t := float32(time.Since(s.start).Seconds())
	y := s.amp*math32.Sin(2*math32.Pi*s.freq*t) + s.noise*float32(s.rng.NormFloat64())

	// Center the nominal [-span, span] swing into the code range.
	span := s.amp + s.noise
	if span <= 0 {
		span = 1
	}
	code := (y/span + 1) / 2 * float32(s.max)
	if code < 0 {
		code = 0
	} else if code > float32(s.max) {
		code = float32(s.max)
	}
	return uint16(code), nil
}

// Max returns the configured converter range.
func (s *Synthetic) Max() uint16 {
	return s.max
}

// Close is a no-op.
func (s *Synthetic) Close() error {
	return nil
}
