package doctor

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// TTYCheck reports whether stdout is attached to a terminal.
type TTYCheck struct{}

func (c *TTYCheck) Name() string     { return "tty" }
func (c *TTYCheck) Category() string { return "TERMINAL" }

func (c *TTYCheck) Run() CheckResult {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Standard output is a TTY",
		}
	}

	return CheckResult{
		Name:       c.Name(),
		Status:     StatusWarn,
		Message:    "Standard output is not a TTY",
		Suggestion: "The dashboard needs an interactive terminal; piped output only affects this doctor run",
	}
}

func (c *TTYCheck) Fix() error { return nil }

// TermCheck verifies the TERM environment variable is usable.
type TermCheck struct{}

func (c *TermCheck) Name() string     { return "term_env" }
func (c *TermCheck) Category() string { return "TERMINAL" }

func (c *TermCheck) Run() CheckResult {
	value := os.Getenv("TERM")

	switch value {
	case "":
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "TERM is not set",
			Suggestion: "Set TERM (e.g. xterm-256color) so the dashboard can draw",
		}
	case "dumb":
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "TERM=dumb disables styling",
			Suggestion: "Use a terminal with cursor addressing support",
		}
	default:
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("TERM=%s", value),
		}
	}
}

func (c *TermCheck) Fix() error { return nil }

// ColorProfileCheck reports the detected color support.
type ColorProfileCheck struct{}

func (c *ColorProfileCheck) Name() string     { return "color_profile" }
func (c *ColorProfileCheck) Category() string { return "TERMINAL" }

func (c *ColorProfileCheck) Run() CheckResult {
	switch termenv.ColorProfile() {
	case termenv.TrueColor:
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Color support: true color",
		}
	case termenv.ANSI256:
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Color support: 256 colors",
		}
	case termenv.ANSI:
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Color support: 16 colors",
		}
	default:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No color support detected",
			Suggestion: "OFFLINE highlighting needs color; try --color=always or a different terminal",
		}
	}
}

func (c *ColorProfileCheck) Fix() error { return nil }

// NewTerminalChecks creates all terminal-related checks.
func NewTerminalChecks() []Check {
	return []Check{
		&TTYCheck{},
		&TermCheck{},
		&ColorProfileCheck{},
	}
}
