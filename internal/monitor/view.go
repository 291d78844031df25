package monitor

import (
	"fmt"
	"strings"

	"github.com/lunixtng/lunixmon/internal/device"
	"github.com/lunixtng/lunixmon/internal/registry"
)

// Layout contract of the dashboard: fixed column widths and row positions,
// two-space left margin. Value columns start at offsets 12, 26 and 40
// within a line.
const (
	leftMargin  = "  "
	colGap      = "  "
	idColWidth  = 8
	valColWidth = device.MaxValueLen

	titleText      = "Lunix:TNG Sensor Monitor (Press 'q' to quit)"
	disclaimerText = "[This version uses Polling - It does not support Wait-Wake]"
	footerText     = "Status: Active Polling (O_NONBLOCK)..."
	offlineMarker  = "OFFLINE"
)

// renderFrame composes the full dashboard frame: title, disclaimer, column
// header, one row per sensor in registry order, footer. Pure read of
// registry state.
func renderFrame(reg *registry.Registry) string {
	var b strings.Builder

	b.WriteString(leftMargin + titleStyle.Render(titleText) + "\n")
	b.WriteString(leftMargin + disclaimerStyle.Render(disclaimerText) + "\n")
	b.WriteString("\n")
	b.WriteString(leftMargin + headerStyle.Render(headerLine()) + "\n")
	b.WriteString("\n")

	for i := 0; i < reg.Len(); i++ {
		b.WriteString(renderRow(reg.At(i)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(leftMargin + footerText + "\n")

	return b.String()
}

// headerLine pads the raw column titles before styling so the underline
// spans the whole header.
func headerLine() string {
	return fmt.Sprintf("%-*s%s%-*s%s%-*s%s%-*s",
		idColWidth, "ID", colGap,
		valColWidth, "Battery(V)", colGap,
		valColWidth, "Temp(C)", colGap,
		valColWidth, "Light")
}

// renderRow renders one sensor line. Offline sensors show the OFFLINE
// marker in all three value cells no matter what temperature and light
// have cached; online sensors show each channel's last value, which may
// still be blank before the first reading arrives.
func renderRow(s *registry.Sensor) string {
	// The id label overruns the 8-char ID column into the gap, exactly as
	// wide as both together; the value columns keep their offsets.
	label := fmt.Sprintf("Sensor %02d", s.ID)
	idCell := fmt.Sprintf("%-*s", idColWidth+len(colGap), label)

	var cells string
	if s.Status() == registry.Offline {
		cells = offlineStyle.Render(valueCells(offlineMarker, offlineMarker, offlineMarker))
	} else {
		cells = valueStyle.Render(valueCells(s.Battery.Value(), s.Temperature.Value(), s.Light.Value()))
	}

	return leftMargin + idStyle.Render(idCell) + cells
}

// valueCells pads the three value columns before styling, keeping the
// fixed offsets.
func valueCells(batt, temp, light string) string {
	return fmt.Sprintf("%-*s%s%-*s%s%-*s",
		valColWidth, batt, colGap,
		valColWidth, temp, colGap,
		valColWidth, light)
}
