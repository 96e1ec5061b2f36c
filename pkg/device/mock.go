package device

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sigtap/sigtap/pkg/config"
	"github.com/sigtap/sigtap/pkg/record"
	"github.com/sigtap/sigtap/pkg/sensor"
)

// Mock simulates the sampling device for testing and development: it
// emits synthetic records at the configured cadence without hardware.
type Mock struct {
	interval time.Duration
	src      sensor.Sensor

	samples   chan record.Record
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	connected bool

	start time.Time
}

// NewMock creates a new mocked device instance.
func NewMock(cfg *config.Config) *Mock {
	interval := time.Duration(cfg.Sampling.IntervalMicros) * time.Microsecond
	if interval == 0 {
		interval = 4 * time.Millisecond
	}
	bufSize := cfg.Capture.BufferSize
	if bufSize == 0 {
		bufSize = DefaultBufferSize
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Mock{
		interval:  interval,
		src:       sensor.NewSynthetic(cfg),
		samples:   make(chan record.Record, bufSize),
		ctx:       ctx,
		cancel:    cancel,
		connected: false,
	}
}

// Connect simulates connecting to the device.
func (m *Mock) Connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected {
		return fmt.Errorf("already connected")
	}

	m.connected = true
	m.start = time.Now()

	// Start generating samples
	go m.generateSamples()

	return nil
}

// Close stops the mocked device.
func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return nil
	}

	m.cancel()
	m.connected = false
	close(m.samples)

	return m.src.Close()
}

// Samples returns the channel for reading samples.
func (m *Mock) Samples() <-chan record.Record {
	return m.samples
}

// IsConnected returns whether the device is currently connected.
func (m *Mock) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

// generateSamples emits one synthetic record per interval.
func (m *Mock) generateSamples() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			v, err := m.src.Read()
			if err != nil {
				continue
			}

			// Millisecond-derived seconds, matching the wire format's
			// three-decimal precision.
			ms := time.Since(m.start).Milliseconds()
			rec := record.Record{
				Seconds: float64(ms) / 1000.0,
				Raw:     v,
			}

			select {
			case m.samples <- rec:
			case <-m.ctx.Done():
				return
			default:
				// Channel full, skip
			}
		}
	}
}
