package monitor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunixtng/lunixmon/internal/device/devicetest"
	"github.com/lunixtng/lunixmon/internal/registry"
	"github.com/lunixtng/lunixmon/pkg/lunix"
)

func init() {
	// Force a fixed color profile so rendered output is deterministic
	// across environments.
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// stripANSI removes escape sequences so layout assertions see plain text.
func stripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

func TestRenderFrameFullBankOffline(t *testing.T) {
	reg := registry.New(devicetest.FailingOpener{}, 16)

	frame := stripANSI(renderFrame(reg))
	lines := strings.Split(frame, "\n")
	require.GreaterOrEqual(t, len(lines), 23)

	assert.Equal(t, "  Lunix:TNG Sensor Monitor (Press 'q' to quit)", lines[0])
	assert.Equal(t, "  [This version uses Polling - It does not support Wait-Wake]", lines[1])
	assert.Equal(t, "", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "  ID"))
	assert.Equal(t, "", lines[4])

	// Sixteen sensor rows in ascending id order, every value cell showing
	// the offline marker.
	for i := 0; i < 16; i++ {
		row := lines[5+i]
		assert.True(t, strings.HasPrefix(row, fmt.Sprintf("  Sensor %02d", i)), "row %d: %q", i, row)
		assert.Equal(t, 3, strings.Count(row, "OFFLINE"), "row %d: %q", i, row)
	}

	assert.Equal(t, "", lines[21])
	assert.Equal(t, "  Status: Active Polling (O_NONBLOCK)...", lines[22])
}

func TestColumnOffsets(t *testing.T) {
	reg := registry.New(devicetest.FailingOpener{}, 1)
	lines := strings.Split(stripANSI(renderFrame(reg)), "\n")

	header := lines[3]
	assert.Equal(t, 2, strings.Index(header, "ID"))
	assert.Equal(t, 12, strings.Index(header, "Battery(V)"))
	assert.Equal(t, 26, strings.Index(header, "Temp(C)"))
	assert.Equal(t, 40, strings.Index(header, "Light"))

	row := lines[5]
	require.GreaterOrEqual(t, len(row), 47)
	assert.Equal(t, "OFFLINE", row[12:19])
	assert.Equal(t, "OFFLINE", row[26:33])
	assert.Equal(t, "OFFLINE", row[40:47])
}

func TestRenderRowOnlineValues(t *testing.T) {
	opener := devicetest.NewOpener()
	reg := registry.New(opener, 1)
	opener.Feed(0, lunix.Battery, "3.71\n")
	opener.Feed(0, lunix.Temperature, "21.5\n")
	opener.Feed(0, lunix.Light, "300\n")
	reg.PollAll()

	row := stripANSI(renderRow(reg.At(0)))

	assert.True(t, strings.HasPrefix(row, "  Sensor 00"))
	assert.Equal(t, 12, strings.Index(row, "3.71"))
	assert.Equal(t, 26, strings.Index(row, "21.5"))
	assert.Equal(t, 40, strings.Index(row, "300"))
	assert.NotContains(t, row, "OFFLINE")
}

func TestRenderRowOnlineWithDeadAuxChannels(t *testing.T) {
	opener := devicetest.NewOpener()
	opener.MarkUnavailable(0, lunix.Temperature)
	opener.MarkUnavailable(0, lunix.Light)

	reg := registry.New(opener, 1)
	opener.Feed(0, lunix.Battery, "3.71\n")
	reg.PollAll()

	row := stripANSI(renderRow(reg.At(0)))

	// Battery keeps the sensor online; the dead channels render blank,
	// never as OFFLINE.
	assert.Contains(t, row, "3.71")
	assert.NotContains(t, row, "OFFLINE")
	assert.Equal(t, strings.Repeat(" ", valColWidth), row[26:26+valColWidth])
}

func TestRenderRowOnlineBeforeAuxReadings(t *testing.T) {
	opener := devicetest.NewOpener()
	reg := registry.New(opener, 1)
	opener.Feed(0, lunix.Battery, "3.71\n")
	reg.PollAll()

	// Temperature and light are open but silent so far: blank cells.
	row := stripANSI(renderRow(reg.At(0)))
	assert.Contains(t, row, "3.71")
	assert.NotContains(t, row, "OFFLINE")
}

func TestValueCellsFixedWidths(t *testing.T) {
	cells := valueCells("a", "b", "c")

	assert.Len(t, cells, 3*valColWidth+2*len(colGap))
	assert.Equal(t, 0, strings.Index(cells, "a"))
	assert.Equal(t, valColWidth+len(colGap), strings.Index(cells, "b"))
	assert.Equal(t, 2*(valColWidth+len(colGap)), strings.Index(cells, "c"))
}

func TestHeaderLineUsesIDColumnWidth(t *testing.T) {
	h := headerLine()

	assert.Equal(t, 0, strings.Index(h, "ID"))
	assert.Equal(t, idColWidth+len(colGap), strings.Index(h, "Battery(V)"))
}

func TestFrameRowCountFollowsRegistrySize(t *testing.T) {
	tests := []struct {
		count int
	}{
		{1},
		{4},
		{16},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d sensors", tt.count), func(t *testing.T) {
			reg := registry.New(devicetest.FailingOpener{}, tt.count)
			lines := strings.Split(stripANSI(renderFrame(reg)), "\n")

			rows := 0
			for _, l := range lines {
				if strings.HasPrefix(l, "  Sensor ") {
					rows++
				}
			}
			assert.Equal(t, tt.count, rows)

			// Footer sits one blank line below the last row.
			assert.Equal(t, "  "+footerText, lines[5+tt.count+1])
		})
	}
}

func TestOfflineStylingUsesAttentionColor(t *testing.T) {
	reg := registry.New(devicetest.FailingOpener{}, 1)

	// TrueColor profile is pinned in init; the offline cells must carry
	// an escape sequence while the plain text stays intact.
	styled := renderRow(reg.At(0))
	assert.NotEqual(t, stripANSI(styled), styled)
	assert.Contains(t, stripANSI(styled), "OFFLINE")
}
