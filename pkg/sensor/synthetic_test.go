package sensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigtap/sigtap/pkg/config"
)

func TestSynthetic_ReadStaysInRange(t *testing.T) {
	cfg := config.Default()
	cfg.Synthetic.Seed = 267
	s := NewSynthetic(cfg)
	defer s.Close()

	assert.Equal(t, uint16(1023), s.Max())

	for i := 0; i < 1000; i++ {
		v, err := s.Read()
		require.NoError(t, err)
		assert.LessOrEqual(t, v, s.Max())
	}
}

func TestSynthetic_RangeFollowsConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Sampling.ADCMax = 4095
	s := NewSynthetic(cfg)
	assert.Equal(t, uint16(4095), s.Max())

	// Zero range falls back to the 10-bit default.
	cfg = config.Default()
	cfg.Sampling.ADCMax = 0
	s = NewSynthetic(cfg)
	assert.Equal(t, uint16(1023), s.Max())
}

func TestFake_ReplaysAndCycles(t *testing.T) {
	f := NewFake(1023, 100, 200, 300)

	var got []uint16
	for i := 0; i < 5; i++ {
		v, err := f.Read()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []uint16{100, 200, 300, 100, 200}, got)
	assert.Equal(t, 5, f.Reads())
}

func TestFake_Fail(t *testing.T) {
	f := NewFake(1023, 100)
	boom := errors.New("bus stuck")
	f.Fail(boom)

	_, err := f.Read()
	assert.ErrorIs(t, err, boom)
}
