package config

import (
	"fmt"

	"github.com/lunixtng/lunixmon/internal/errors"
)

// Validate checks the config for errors and returns structured messages.
func Validate(cfg *Config) error {
	if cfg.SensorCount < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Sensor count must be at least 1 (got %d)", cfg.SensorCount),
			"Set 'sensors' to the size of your sensor bank, e.g. 16")
	}

	if cfg.SensorCount > MaxSensorCount {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Sensor count %d is larger than the maximum of %d", cfg.SensorCount, MaxSensorCount),
			fmt.Sprintf("The fixed table layout tops out at %d sensors", MaxSensorCount))
	}

	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Poll interval %s is below the minimum of %s", cfg.Interval, MinInterval),
			"Use an interval of at least 10ms; the stock cadence is 100ms")
	}

	if cfg.DeviceDir == "" {
		return errors.New(errors.ErrConfig,
			"Device directory cannot be empty",
			"Set 'device_dir' to where the lunix nodes live, normally /dev")
	}

	switch cfg.Output.Color {
	case "", "auto", "always", "never":
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown color mode '%s'", cfg.Output.Color),
			"Valid modes are auto, always and never")
	}

	return nil
}
