package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/lunixtng/lunixmon/internal/config"
	"github.com/lunixtng/lunixmon/internal/errors"
	"github.com/lunixtng/lunixmon/internal/sim"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	simDirFlag     string
	simSensorsFlag int
	simRateFlag    string
	simSeedFlag    int64
	simOfflineFlag []int
	simKeepFlag    bool
)

// simulateCmd emulates a sensor bank with named pipes
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Emulate a sensor bank with named pipes",
	Long: `Create lunix<id>-<metric> FIFOs and feed them with drifting readings.

Useful for trying the dashboard on machines without the sensor driver.
Start the simulator in one shell and point the dashboard at the same
directory in another:

  lunixmon simulate
  lunixmon --device-dir /tmp/lunix-sim

Examples:
  lunixmon simulate
  lunixmon simulate --sensors 4 --rate 250ms
  lunixmon simulate --offline 3,7
  lunixmon simulate --seed 42 --keep`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Parse sample rate
		rate := config.DefaultInterval
		if simRateFlag != "" {
			parsed, err := time.ParseDuration(simRateFlag)
			if err != nil {
				return errors.WrapWithCode(err, errors.ErrConfig,
					fmt.Sprintf("Invalid rate: %s", simRateFlag),
					"Use a valid duration like 100ms, 250ms, or 1s")
			}
			if parsed < config.MinInterval {
				return errors.New(errors.ErrConfig,
					"Rate too fast",
					fmt.Sprintf("Minimum sample period is %s", config.MinInterval))
			}
			rate = parsed
		}

		return simulateCommand(simDirFlag, simSensorsFlag, rate, simSeedFlag, simOfflineFlag, simKeepFlag)
	},
}

// initCmd creates a new .lunixmon.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .lunixmon.yaml configuration",
	Long: `Initialize a new lunixmon configuration file.

Walks through the dashboard settings with interactive prompts and writes
a .lunixmon.yaml in the current directory. With --global the file goes to
~/.config/lunixmon/config.yaml instead.

Examples:
  lunixmon init
  lunixmon init --global
  lunixmon init --non-interactive --sensors 8 --interval 250ms
  lunixmon init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand()
	},
}

// doctorCmd diagnoses device, config, and terminal issues
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose device and config issues",
	Long: `Run diagnostic checks to identify and fix common issues.

Checks:
  - Device directory and per-sensor nodes
  - Non-blocking reads from a battery channel
  - Configuration validity
  - Terminal capabilities

Examples:
  lunixmon doctor
  lunixmon doctor --json
  lunixmon doctor --fix`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand()
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for lunixmon.

Examples:
  # Bash
  lunixmon completion bash > /etc/bash_completion.d/lunixmon

  # Zsh
  lunixmon completion zsh > "${fpath[1]}/_lunixmon"

  # Fish
  lunixmon completion fish > ~/.config/fish/completions/lunixmon.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// simulate command flags
	simulateCmd.Flags().StringVar(&simDirFlag, "dir", sim.DefaultDir, "directory for the FIFO nodes")
	simulateCmd.Flags().IntVarP(&simSensorsFlag, "sensors", "n", config.DefaultSensorCount, "number of sensors to emulate")
	simulateCmd.Flags().StringVar(&simRateFlag, "rate", "", "sample period (e.g., 100ms, 250ms)")
	simulateCmd.Flags().Int64Var(&simSeedFlag, "seed", 0, "random seed for reproducible readings (0 = time-based)")
	simulateCmd.Flags().IntSliceVar(&simOfflineFlag, "offline", nil, "sensor ids to leave without nodes (comma-separated)")
	simulateCmd.Flags().BoolVar(&simKeepFlag, "keep", false, "leave the FIFO nodes in place on exit")

	// Register all commands
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(completionCmd)
}
