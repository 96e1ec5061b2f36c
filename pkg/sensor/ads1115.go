package sensor

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/sigtap/sigtap/pkg/config"
)

const (
	pointerConv   = 0x00
	pointerConfig = 0x01

	ads1115Max = 32767
)

// ADS1115 reads one single-ended channel of a TI ADS1115 over I2C using
// single-shot conversions.
type ADS1115 struct {
	dev      *i2c.Dev
	bus      i2c.BusCloser
	channel  int
	dataRate int
}

// NewADS1115 opens the configured I2C bus and prepares the converter.
func NewADS1115(cfg *config.Config) (*ADS1115, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	bus, err := i2creg.Open(cfg.ADS1115.I2CBus)
	if err != nil {
		return nil, fmt.Errorf("open i2c: %w", err)
	}
	dev := &i2c.Dev{Addr: uint16(cfg.ADS1115.I2CAddress), Bus: bus}
	dataRate := cfg.ADS1115.DataRate
	if dataRate == 0 {
		dataRate = 128
	}
	return &ADS1115{
		dev:      dev,
		bus:      bus,
		channel:  cfg.Sampling.Channel,
		dataRate: dataRate,
	}, nil
}

// Read triggers a single-shot conversion and returns the raw code.
func (s *ADS1115) Read() (uint16, error) {
	msb, lsb, err := s.configBytes()
	if err != nil {
		return 0, err
	}

	// write config (starts the conversion)
	if err := s.dev.Tx([]byte{pointerConfig, msb, lsb}, nil); err != nil {
		return 0, fmt.Errorf("write config: %w", err)
	}

	// wait for conversion (simple sleep)
	delayMs := 1000/s.dataRate + 2
	time.Sleep(time.Duration(delayMs) * time.Millisecond)

	readBuf := make([]byte, 2)
	if err := s.dev.Tx([]byte{pointerConv}, readBuf); err != nil {
		return 0, fmt.Errorf("read conv: %w", err)
	}

	raw := int16(readBuf[0])<<8 | int16(readBuf[1])
	// Single-ended wiring: codes below zero are noise around ground.
	if raw < 0 {
		raw = 0
	}
	return uint16(raw), nil
}

// Max returns the largest code the converter produces in single-ended mode.
func (s *ADS1115) Max() uint16 {
	return ads1115Max
}

// Close releases the I2C bus.
func (s *ADS1115) Close() error {
	if s.bus != nil {
		return s.bus.Close()
	}
	return nil
}

// configBytes builds the 16-bit config register for a single-shot read
// of the selected single-ended channel.
func (s *ADS1115) configBytes() (byte, byte, error) {
	var mux byte
	switch s.channel {
	case 0:
		mux = 0x4
	case 1:
		mux = 0x5
	case 2:
		mux = 0x6
	case 3:
		mux = 0x7
	default:
		return 0, 0, fmt.Errorf("invalid channel %d", s.channel)
	}

	// PGA: ±4.096V -> bits 001
	pga := byte(0x1)

	var dr byte
	switch s.dataRate {
	case 8:
		dr = 0x0
	case 16:
		dr = 0x1
	case 32:
		dr = 0x2
	case 64:
		dr = 0x3
	case 128:
		dr = 0x4
	case 250:
		dr = 0x5
	case 475:
		dr = 0x6
	case 860:
		dr = 0x7
	default:
		dr = 0x4
	}

	var reg uint16 = 0x8000 // OS = 1 (start single conversion)
	reg |= uint16(mux) << 12
	reg |= uint16(pga) << 9
	reg |= 1 << 8 // single-shot mode
	reg |= uint16(dr) << 5
	// comparator disabled (bits 1:0 = 11)
	reg |= 0x3

	return byte(reg >> 8), byte(reg & 0xFF), nil
}
