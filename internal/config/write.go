package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lunixtng/lunixmon/internal/errors"
)

// fileHeader is prepended to generated config files.
const fileHeader = `# lunixmon configuration
# Run 'lunixmon' to open the sensor dashboard
# See: https://github.com/lunixtng/lunixmon for documentation

`

// fileModel mirrors Config for YAML generation. The interval is written
// as a duration string (100ms) rather than raw nanoseconds.
type fileModel struct {
	SensorCount int          `yaml:"sensors"`
	Interval    string       `yaml:"interval"`
	DeviceDir   string       `yaml:"device_dir"`
	Output      OutputConfig `yaml:"output"`
}

// Write marshals cfg to YAML and writes it to path, creating parent
// directories as needed.
func Write(cfg *Config, path string) error {
	data, err := yaml.Marshal(fileModel{
		SensorCount: cfg.SensorCount,
		Interval:    cfg.Interval.String(),
		DeviceDir:   cfg.DeviceDir,
		Output:      cfg.Output,
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot create directory "+dir,
				"Check directory permissions")
		}
	}

	content := fileHeader + string(data)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file: "+path,
			"Check directory permissions")
	}

	return nil
}
