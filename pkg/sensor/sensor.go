// Package sensor provides single-channel analog signal sources: the
// real I2C converter, a synthetic waveform, and a scripted fake for
// tests.
package sensor

// Sensor reads one analog channel and reports raw converter codes.
// Codes are opaque to everything above this layer: no calibration or
// unit conversion happens on this side of the wire.
type Sensor interface {
	// Read returns the current raw code, in [0, Max()].
	Read() (uint16, error)
	// Max returns the largest code the converter can produce.
	Max() uint16
	Close() error
}

// Ensure the backends implement Sensor.
var _ Sensor = (*ADS1115)(nil)
var _ Sensor = (*Synthetic)(nil)
var _ Sensor = (*Fake)(nil)
