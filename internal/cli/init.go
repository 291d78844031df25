package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/lunixtng/lunixmon/internal/config"
	"github.com/lunixtng/lunixmon/internal/errors"
	"github.com/lunixtng/lunixmon/internal/ui"
	"github.com/lunixtng/lunixmon/pkg/lunix"
)

var (
	initForce          bool
	initGlobal         bool
	initNonInteractive bool
	initSensorsFlag    int
	initIntervalFlag   string
	initDeviceDirFlag  string
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "write to ~/.config/lunixmon/config.yaml")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts, use flags and defaults")
	initCmd.Flags().IntVar(&initSensorsFlag, "sensors", 0, "number of sensors (non-interactive)")
	initCmd.Flags().StringVar(&initIntervalFlag, "interval", "", "poll interval (non-interactive)")
	initCmd.Flags().StringVar(&initDeviceDirFlag, "device-dir", "", "device directory (non-interactive)")
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Global         bool   // Write the global config instead of ./.lunixmon.yaml
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use flags and defaults
	Sensors        int    // Pre-specified sensor count (0 = unset)
	Interval       string // Pre-specified poll interval ("" = unset)
	DeviceDir      string // Pre-specified device directory ("" = unset)
}

// Init creates a new lunixmon configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)
	if opts.Global {
		global, err := config.GlobalPath()
		if err != nil {
			return err
		}
		configPath = global
	}

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	// Collect configuration values
	cfg := config.DefaultConfig()
	if opts.Sensors > 0 {
		cfg.SensorCount = opts.Sensors
	}
	if opts.DeviceDir != "" {
		cfg.DeviceDir = opts.DeviceDir
	}
	if opts.Interval != "" {
		parsed, err := time.ParseDuration(opts.Interval)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Invalid interval: %s", opts.Interval),
				"Use a valid duration like 100ms, 250ms, or 1s")
		}
		cfg.Interval = parsed
	}

	if !opts.NonInteractive {
		if err := runInitForm(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	// Report what the dashboard would find with these settings
	found := countPresentSensors(cfg.DeviceDir, cfg.SensorCount)
	fmt.Println()
	if found == 0 {
		ui.PrintWarning(fmt.Sprintf("No sensor nodes under %s", cfg.DeviceDir))
		fmt.Println(ui.MutedStyle().Render("  All sensors will show OFFLINE. Run 'lunixmon simulate' to try the dashboard without hardware."))
	} else {
		fmt.Printf("%s Found %d of %d sensors under %s\n", ui.SymbolSuccess, found, cfg.SensorCount, cfg.DeviceDir)
	}
	fmt.Println()

	if err := config.Write(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  lunixmon           - Open the dashboard")
	fmt.Println("  lunixmon doctor    - Check devices and config")
	fmt.Println("  lunixmon simulate  - Emulate a sensor bank")

	return nil
}

// runInitForm prompts for the dashboard settings. Empty answers keep the
// values already in cfg.
func runInitForm(cfg *config.Config) error {
	var sensors, interval, deviceDir string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Device directory").
				Description("Directory holding the lunix<id>-<metric> nodes").
				Placeholder(cfg.DeviceDir).
				Value(&deviceDir),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Sensor count").
				Description("Number of sensors in the bank").
				Placeholder(strconv.Itoa(cfg.SensorCount)).
				Value(&sensors).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("enter a whole number")
					}
					if n < 1 || n > config.MaxSensorCount {
						return fmt.Errorf("must be between 1 and %d", config.MaxSensorCount)
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Poll interval").
				Description("How often the dashboard refreshes").
				Placeholder(cfg.Interval.String()).
				Value(&interval).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					d, err := time.ParseDuration(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("use a duration like 100ms or 1s")
					}
					if d < config.MinInterval {
						return fmt.Errorf("minimum interval is %s", config.MinInterval)
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive")
	}

	if s := strings.TrimSpace(deviceDir); s != "" {
		cfg.DeviceDir = s
	}
	if s := strings.TrimSpace(sensors); s != "" {
		cfg.SensorCount, _ = strconv.Atoi(s)
	}
	if s := strings.TrimSpace(interval); s != "" {
		cfg.Interval, _ = time.ParseDuration(s)
	}

	return nil
}

// countPresentSensors reports how many sensors have a battery node, the
// same liveness test the dashboard applies.
func countPresentSensors(dir string, sensors int) int {
	found := 0
	for id := 0; id < sensors; id++ {
		if _, err := os.Stat(lunix.DevicePath(dir, id, lunix.Battery)); err == nil {
			found++
		}
	}
	return found
}

// initCommand is the implementation called by the cobra command.
func initCommand() error {
	return Init(InitOptions{
		Global:         initGlobal,
		Overwrite:      initForce,
		NonInteractive: initNonInteractive,
		Sensors:        initSensorsFlag,
		Interval:       initIntervalFlag,
		DeviceDir:      initDeviceDirFlag,
	})
}
