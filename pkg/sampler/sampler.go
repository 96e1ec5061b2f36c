// Package sampler runs the sampling loop on a hosted OS: it polls a
// microsecond clock, admits ticks through the gate at the configured
// cadence, and writes one record per admitted tick.
package sampler

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/sigtap/sigtap/pkg/config"
	"github.com/sigtap/sigtap/pkg/gate"
	"github.com/sigtap/sigtap/pkg/record"
	"github.com/sigtap/sigtap/pkg/sensor"
)

const (
	// minPoll bounds the re-check sleep from below so a very short
	// interval doesn't degenerate into a hard spin.
	minPoll = 50 * time.Microsecond
)

// Sampler owns one gate and one sensor and emits records to a byte
// sink. The write is best-effort: no ack, no retry, no backpressure.
type Sampler struct {
	gate *gate.Gate
	src  sensor.Sensor
	w    io.Writer
	poll time.Duration
}

// New creates a Sampler from the configured cadence. The poll sleep is
// a fraction of the interval, so the loop never sleeps past a due tick
// by more than a small fixed amount.
func New(cfg *config.Config, src sensor.Sensor, w io.Writer) *Sampler {
	interval := cfg.Sampling.IntervalMicros
	if interval == 0 {
		interval = config.Default().Sampling.IntervalMicros
	}

	poll := time.Duration(interval/8) * time.Microsecond
	if poll < minPoll {
		poll = minPoll
	}

	return &Sampler{
		gate: gate.New(interval),
		src:  src,
		w:    w,
		poll: poll,
	}
}

// Run samples until ctx is cancelled and returns ctx.Err(). Sensor read
// errors are logged and the tick is forfeited; write errors are logged
// and otherwise ignored. Each record is fully written before the next
// gate check, so emission order follows admission order.
func (s *Sampler) Run(ctx context.Context) error {
	start := time.Now()
	buf := make([]byte, 0, 32)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if s.gate.ShouldFire(uint32(time.Since(start).Microseconds())) {
			v, err := s.src.Read()
			if err != nil {
				log.Printf("Sensor read failed: %v", err)
			} else {
				// The reported time comes from the millisecond clock,
				// not from the tick counter driving the gate.
				buf = record.Append(buf[:0], uint32(time.Since(start).Milliseconds()), v)
				if _, err := s.w.Write(buf); err != nil {
					log.Printf("Failed to write sample: %v", err)
				}
			}
		}

		time.Sleep(s.poll)
	}
}
