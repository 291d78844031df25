// Package ui provides the shared terminal palette for lunixmon's CLI
// output: the doctor report, the init wizard, and simulator status lines.
//
// The dashboard itself carries its own scoped styles in internal/monitor;
// this package only covers plain command output.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Passing checks, created files
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings and partial results
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text, suggestions
//	ColorSecondary (blue)   - Auxiliary labels
//
// DisableColors() switches to monochrome output and ForceColors() pins
// full color, backing the root --color flag.
//
// # Symbols
//
// Unicode symbols provide visual status indicators:
//
//	SymbolSuccess  (checkmark)  - Check passed
//	SymbolFail     (X)          - Check failed
//	SymbolWarning  (warning)    - Check passed with caveats
//	SymbolPending  (circle)     - Not yet probed
//	SymbolSkipped  (slashed)    - Check skipped
package ui
