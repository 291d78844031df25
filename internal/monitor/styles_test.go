package monitor

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestColorRoles(t *testing.T) {
	// The four roles map to base ANSI colors so terminal palettes apply.
	assert.Equal(t, lipgloss.Color("6"), colorHeader)
	assert.Equal(t, lipgloss.Color("2"), colorValue)
	assert.Equal(t, lipgloss.Color("3"), colorSensorID)
	assert.Equal(t, lipgloss.Color("1"), colorOffline)
}

func TestStyleAttributes(t *testing.T) {
	assert.True(t, titleStyle.GetBold(), "title should be bold")
	assert.True(t, disclaimerStyle.GetFaint(), "disclaimer should be dim")
	assert.True(t, headerStyle.GetUnderline(), "column header should be underlined")
}

func TestStyleForegrounds(t *testing.T) {
	tests := []struct {
		name  string
		style lipgloss.Style
		want  lipgloss.Color
	}{
		{"title", titleStyle, colorHeader},
		{"sensor id", idStyle, colorSensorID},
		{"value", valueStyle, colorValue},
		{"offline", offlineStyle, colorOffline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.style.GetForeground())
		})
	}
}

func TestStylesDoNotPad(t *testing.T) {
	// Cells are padded with fmt before styling; the styles themselves must
	// not change width or the column offsets drift.
	for _, s := range []lipgloss.Style{titleStyle, disclaimerStyle, headerStyle, idStyle, valueStyle, offlineStyle} {
		assert.Zero(t, s.GetPaddingLeft())
		assert.Zero(t, s.GetPaddingRight())
		assert.Zero(t, s.GetWidth())
	}
}
