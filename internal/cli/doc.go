// Package cli implements the lunixmon command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a small implementation function and the heavy lifting
// living in other internal packages. The general structure separates:
//
//   - Command definitions (cobra.Command instances)
//   - Command implementations (dashboardCommand, simulateCommand, ...)
//   - Domain logic (internal/registry, internal/sim, internal/doctor)
//
// # Command Structure
//
// The root command is "lunixmon"; running it with no subcommand opens
// the dashboard:
//
//	lunixmon            - Open the sensor dashboard
//	lunixmon simulate   - Emulate a sensor bank with named pipes
//	lunixmon init       - Create .lunixmon.yaml config
//	lunixmon doctor     - Diagnose device/config/terminal issues
//	lunixmon version    - Print version information
//
// # Configuration Resolution
//
// Every command resolves settings the same way: built-in defaults, then
// the config file found by the loader search order, then command-line
// flags. A missing config file is never an error; the stock sensor bank
// (16 sensors, 100ms, /dev) applies.
//
// # Flag Handling
//
// The --config persistent flag is defined on the root command and
// available to all subcommands via the Config() accessor. Dashboard
// tuning flags (--sensors, --interval, --device-dir, --color) live on
// the root command itself; subcommands define their own.
package cli
