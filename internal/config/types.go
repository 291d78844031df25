package config

import "time"

// Stock dashboard settings. The core packages consume these as plain
// values; only this package and the CLI glue parse anything.
const (
	DefaultSensorCount = 16
	DefaultInterval    = 100 * time.Millisecond
	DefaultDeviceDir   = "/dev"

	// MaxSensorCount bounds the bank size; the fixed table layout is not
	// meant for more.
	MaxSensorCount = 128

	// MinInterval keeps the poll loop from busy-spinning.
	MinInterval = 10 * time.Millisecond
)

// Config represents the complete .lunixmon.yaml configuration file.
type Config struct {
	// SensorCount is the number of sensors in the bank; ids run from 0
	// to SensorCount-1 and each id maps to three device nodes.
	SensorCount int `yaml:"sensors" mapstructure:"sensors"`

	// Interval is the poll/refresh cadence of the dashboard.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// DeviceDir is the directory holding the lunix<id>-<metric> nodes.
	DeviceDir string `yaml:"device_dir" mapstructure:"device_dir"`

	// Output controls terminal output formatting.
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" lets the terminal capabilities decide.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with the stock dashboard settings.
func DefaultConfig() *Config {
	return &Config{
		SensorCount: DefaultSensorCount,
		Interval:    DefaultInterval,
		DeviceDir:   DefaultDeviceDir,
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
