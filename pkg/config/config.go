package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Serial    SerialConfig    `yaml:"serial"`
	Sampling  SamplingConfig  `yaml:"sampling"`
	ADS1115   ADS1115Config   `yaml:"ads1115"`
	Synthetic SyntheticConfig `yaml:"synthetic"`
	Capture   CaptureConfig   `yaml:"capture"`
}

// SerialConfig contains serial port configuration.
type SerialConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

// SamplingConfig contains the sampling cadence and channel parameters.
type SamplingConfig struct {
	IntervalMicros uint32 `yaml:"sample_interval_us"` // target cadence (4000 = 250 Hz)
	Channel        int    `yaml:"channel"`            // analog input selector
	ADCMax         uint16 `yaml:"adc_max"`            // largest valid raw code (1023 for 10-bit)
}

// ADS1115Config contains parameters for the I2C ADC backend.
type ADS1115Config struct {
	I2CBus     string `yaml:"i2c_bus"`
	I2CAddress int    `yaml:"i2c_address"`
	DataRate   int    `yaml:"data_rate"` // samples per second (8..860)
}

// SyntheticConfig contains parameters for the synthetic signal source.
type SyntheticConfig struct {
	FrequencyHz float64 `yaml:"frequency_hz"` // waveform frequency
	Amplitude   float64 `yaml:"amplitude"`
	NoiseLevel  float64 `yaml:"noise_level"`
	Seed        int64   `yaml:"seed"` // 0 = seed from the clock
}

// CaptureConfig contains host-side capture parameters.
type CaptureConfig struct {
	BufferSize int `yaml:"buffer_size"` // samples channel depth
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port:     "COM3", // Default for Windows, should be "/dev/ttyACM0" on Linux/Mac
			BaudRate: 115200,
		},
		Sampling: SamplingConfig{
			IntervalMicros: 4000, // 250 Hz
			Channel:        0,
			ADCMax:         1023, // 10-bit converter
		},
		ADS1115: ADS1115Config{
			I2CBus:     "1",
			I2CAddress: 0x48,
			DataRate:   860, // fastest, keeps conversion latency under the 4ms cadence
		},
		Synthetic: SyntheticConfig{
			FrequencyHz: 10.0, // alpha-band test tone
			Amplitude:   0.8,
			NoiseLevel:  0.2,
			Seed:        0,
		},
		Capture: CaptureConfig{
			BufferSize: 100,
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist
// or fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Ensure minimum required fields are set (use defaults if missing)
	cfg.ensureDefaults()

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.BaudRate == 0 {
		c.Serial.BaudRate = def.Serial.BaudRate
	}

	if c.Sampling.IntervalMicros == 0 {
		c.Sampling.IntervalMicros = def.Sampling.IntervalMicros
	}
	if c.Sampling.ADCMax == 0 {
		c.Sampling.ADCMax = def.Sampling.ADCMax
	}

	if c.ADS1115.I2CBus == "" {
		c.ADS1115.I2CBus = def.ADS1115.I2CBus
	}
	if c.ADS1115.I2CAddress == 0 {
		c.ADS1115.I2CAddress = def.ADS1115.I2CAddress
	}
	if c.ADS1115.DataRate == 0 {
		c.ADS1115.DataRate = def.ADS1115.DataRate
	}

	if c.Synthetic.FrequencyHz == 0 {
		c.Synthetic.FrequencyHz = def.Synthetic.FrequencyHz
	}
	if c.Synthetic.Amplitude == 0 {
		c.Synthetic.Amplitude = def.Synthetic.Amplitude
	}
	if c.Synthetic.NoiseLevel == 0 {
		c.Synthetic.NoiseLevel = def.Synthetic.NoiseLevel
	}

	if c.Capture.BufferSize == 0 {
		c.Capture.BufferSize = def.Capture.BufferSize
	}
}
