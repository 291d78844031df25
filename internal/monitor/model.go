package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lunixtng/lunixmon/internal/registry"
)

// DefaultInterval is the poll/refresh cadence of the dashboard.
const DefaultInterval = 100 * time.Millisecond

// tickMsg signals the next poll cycle.
type tickMsg time.Time

// Model is the bubbletea model for the sensor dashboard. One tick drives
// one cycle: poll every channel, then render the table from that cycle's
// snapshot.
type Model struct {
	registry *registry.Registry
	interval time.Duration
	keys     keyMap
	quitting bool
}

// NewModel builds the dashboard model around an opened registry. The
// caller keeps ownership of the registry and releases it after the
// program returns.
func NewModel(reg *registry.Registry, interval time.Duration) Model {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Model{
		registry: reg,
		interval: interval,
		keys:     keys,
	}
}

// Init primes the first frame with one poll pass and starts the ticker.
func (m Model) Init() tea.Cmd {
	m.registry.PollAll()
	return m.tickCmd()
}

// Update handles key and tick messages. After the quit key, ticks are
// ignored: no further polls or renders happen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		m.registry.PollAll()
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the current registry snapshot. bubbletea serializes Update
// and View, so a frame always reflects one completed poll pass.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderFrame(m.registry)
}

// tickCmd schedules the next cycle after the fixed interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
