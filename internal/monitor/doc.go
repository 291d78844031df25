// Package monitor implements the live TUI dashboard for a bank of
// Lunix:TNG sensors.
//
// The dashboard shows one row per sensor with its battery, temperature and
// light readings, refreshed on a fixed polling cadence. Sensors whose
// battery channel never opened or never produced a value render as
// OFFLINE.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: holds the sensor registry and the poll interval
//   - Update: processes messages (quit keystrokes, tick events)
//   - View: renders the registry snapshot into the fixed table layout
//
// # Message Flow
//
// The dashboard operates on a tick-based poll cycle:
//
//  1. tickMsg fires at the configured interval (default 100ms)
//  2. Update polls every channel of every sensor in display order
//  3. View re-renders the table from that cycle's snapshot
//
// Polling is deliberate: the sensor devices expose no wake-up mechanism to
// subscribe to, so the dashboard reads every channel non-blockingly each
// cycle and keeps the previous value when no data is queued. The
// disclaimer line in the frame states this.
//
// # Layout
//
// The frame layout is fixed: title, dimmed disclaimer, underlined column
// header, one row per sensor in id order, footer. The id column is 8
// characters wide and each value column 12, so the value cells start at
// offsets 12, 26 and 40 of every line.
//
// # Keyboard Shortcuts
//
//	q, Q, Ctrl+C - Quit
package monitor
