package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotNil(t, cfg)
	assert.Equal(t, "COM3", cfg.Serial.Port)
	assert.Equal(t, 115200, cfg.Serial.BaudRate)
	assert.Equal(t, uint32(4000), cfg.Sampling.IntervalMicros)
	assert.Equal(t, 0, cfg.Sampling.Channel)
	assert.Equal(t, uint16(1023), cfg.Sampling.ADCMax)
	assert.Equal(t, "1", cfg.ADS1115.I2CBus)
	assert.Equal(t, 0x48, cfg.ADS1115.I2CAddress)
	assert.Equal(t, 860, cfg.ADS1115.DataRate)
	assert.Equal(t, 10.0, cfg.Synthetic.FrequencyHz)
	assert.Equal(t, 100, cfg.Capture.BufferSize)
}

func TestLoad_FileNotExists(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "COM3", cfg.Serial.Port)
	assert.Equal(t, uint32(4000), cfg.Sampling.IntervalMicros)
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
serial:
  port: "/dev/ttyACM0"
  baud_rate: 230400

sampling:
  sample_interval_us: 2000
  channel: 2
  adc_max: 4095

ads1115:
  i2c_bus: "2"
  i2c_address: 0x49
  data_rate: 475

synthetic:
  frequency_hz: 1.3
  amplitude: 0.5
  noise_level: 0.05
  seed: 267

capture:
  buffer_size: 256
`

	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "/dev/ttyACM0", cfg.Serial.Port)
	assert.Equal(t, 230400, cfg.Serial.BaudRate)
	assert.Equal(t, uint32(2000), cfg.Sampling.IntervalMicros)
	assert.Equal(t, 2, cfg.Sampling.Channel)
	assert.Equal(t, uint16(4095), cfg.Sampling.ADCMax)
	assert.Equal(t, "2", cfg.ADS1115.I2CBus)
	assert.Equal(t, 0x49, cfg.ADS1115.I2CAddress)
	assert.Equal(t, 475, cfg.ADS1115.DataRate)
	assert.Equal(t, 1.3, cfg.Synthetic.FrequencyHz)
	assert.Equal(t, int64(267), cfg.Synthetic.Seed)
	assert.Equal(t, 256, cfg.Capture.BufferSize)
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString("invalid: yaml: content: [")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_PartialYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
serial:
  port: "/dev/ttyACM0"
`

	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)

	// Explicit field kept, everything else falls back to defaults.
	assert.Equal(t, "/dev/ttyACM0", cfg.Serial.Port)
	assert.Equal(t, 115200, cfg.Serial.BaudRate)
	assert.Equal(t, uint32(4000), cfg.Sampling.IntervalMicros)
	assert.Equal(t, uint16(1023), cfg.Sampling.ADCMax)
	assert.Equal(t, 100, cfg.Capture.BufferSize)
}

func TestSaveAndReload(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	defer os.Remove(tmpfile.Name())

	cfg := Default()
	cfg.Serial.Port = "/dev/ttyUSB0"
	cfg.Sampling.IntervalMicros = 1000

	require.NoError(t, cfg.Save(tmpfile.Name()))

	loaded, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB0", loaded.Serial.Port)
	assert.Equal(t, uint32(1000), loaded.Sampling.IntervalMicros)
	assert.Equal(t, uint16(1023), loaded.Sampling.ADCMax)
}
