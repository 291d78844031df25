package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/lunixtng/lunixmon/internal/config"
	"github.com/lunixtng/lunixmon/internal/device"
	"github.com/lunixtng/lunixmon/internal/errors"
	"github.com/lunixtng/lunixmon/internal/logger"
	"github.com/lunixtng/lunixmon/internal/monitor"
	"github.com/lunixtng/lunixmon/internal/registry"
	"github.com/lunixtng/lunixmon/internal/ui"
)

// Dashboard flag values, applied on top of the loaded config. Zero
// values mean the flag was not set.
var (
	dashSensors   int
	dashInterval  string
	dashDeviceDir string
	dashColor     string
)

// dashboardCommand resolves config, opens the sensor bank and runs the
// dashboard until the user quits.
func dashboardCommand() error {
	cfg, err := resolveDashboardConfig(Config(), dashSensors, dashInterval, dashDeviceDir, dashColor)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerminal,
			"Standard output is not a terminal",
			"The dashboard is a full-screen program; run it from an interactive shell")
	}

	applyColorMode(cfg.Output.Color)

	log := logger.NewEnvLogger("[monitor]")
	log.Debug("polling %d sensors under %s every %s", cfg.SensorCount, cfg.DeviceDir, cfg.Interval)

	reg := registry.New(device.DirOpener{Dir: cfg.DeviceDir}, cfg.SensorCount)
	defer reg.Close()

	model := monitor.NewModel(reg, cfg.Interval)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Dashboard exited unexpectedly",
			"Run 'lunixmon doctor' to check your terminal setup")
	}

	return nil
}

// resolveDashboardConfig loads the config file (or defaults) and lays
// the command-line overrides on top before validating.
func resolveDashboardConfig(explicit string, sensors int, interval, deviceDir, color string) (*config.Config, error) {
	cfg, path, err := config.LoadOrDefault(explicit)
	if err != nil {
		return nil, err
	}
	if path != "" {
		logger.Default().Debug("loaded config from %s", path)
	}

	if sensors > 0 {
		cfg.SensorCount = sensors
	}
	if interval != "" {
		parsed, err := time.ParseDuration(interval)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Invalid interval: %s", interval),
				"Use a duration like 100ms, 250ms, or 1s")
		}
		cfg.Interval = parsed
	}
	if deviceDir != "" {
		cfg.DeviceDir = deviceDir
	}
	if color != "" {
		cfg.Output.Color = color
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyColorMode forces or disables color per config. Auto leaves
// lipgloss's own terminal detection alone.
func applyColorMode(mode string) {
	switch mode {
	case "always":
		ui.ForceColors()
	case "never":
		ui.DisableColors()
	}
}
