package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Check passed
	SymbolFail    = "✗" // Check failed
	SymbolWarning = "⚠" // Check passed with caveats
	SymbolPending = "○" // Not yet probed
	SymbolSkipped = "⊘" // Check skipped
)
