package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the global --config flag value.
var cfgFile string

// rootCmd is the base command. Running lunixmon with no subcommand
// opens the dashboard.
var rootCmd = &cobra.Command{
	Use:   "lunixmon",
	Short: "Terminal dashboard for Lunix:TNG wireless sensors",
	Long: `lunixmon renders a live table of every sensor in a Lunix:TNG bank.

The dashboard polls the lunix character devices (/dev/lunix<N>-batt,
/dev/lunix<N>-temp, /dev/lunix<N>-light) with non-blocking reads and
refreshes ten times a second. A sensor whose battery channel has never
produced a reading is shown as OFFLINE.

Examples:
  lunixmon                      # dashboard with config or defaults
  lunixmon --sensors 8          # smaller sensor bank
  lunixmon -d /tmp/lunix-sim    # read the simulator's nodes
  lunixmon simulate             # emulate a sensor bank
  lunixmon doctor               # diagnose setup problems`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches for .lunixmon.yaml)")

	rootCmd.Flags().IntVarP(&dashSensors, "sensors", "n", 0, "number of sensors to display")
	rootCmd.Flags().StringVarP(&dashInterval, "interval", "i", "", "poll interval (e.g. 100ms, 1s)")
	rootCmd.Flags().StringVarP(&dashDeviceDir, "device-dir", "d", "", "directory holding the lunix device nodes")
	rootCmd.Flags().StringVar(&dashColor, "color", "", "color mode: auto, always or never")
}

// Config returns the value of the global --config flag.
func Config() string {
	return cfgFile
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
