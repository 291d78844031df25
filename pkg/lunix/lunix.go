// Package lunix defines the device-node naming convention for Lunix:TNG
// sensor hardware. Each sensor in the bank exposes three measurement
// channels as separate character devices named lunix<id>-<metric>, e.g.
// /dev/lunix3-temp.
//
// The package is intentionally tiny: it is the shared vocabulary between
// the dashboard (which reads the nodes), the simulator (which creates
// them), and the doctor command (which probes them).
package lunix

import (
	"fmt"
	"path/filepath"
)

// Metric identifies one of the three measurement channels every sensor
// exposes.
type Metric int

const (
	Battery Metric = iota
	Temperature
	Light
)

// Metrics lists the channels in their canonical (display) order.
var Metrics = [...]Metric{Battery, Temperature, Light}

// String returns the device-node suffix for the metric: "batt", "temp" or
// "light".
func (m Metric) String() string {
	switch m {
	case Battery:
		return "batt"
	case Temperature:
		return "temp"
	case Light:
		return "light"
	default:
		return "unknown"
	}
}

// DeviceName returns the node name for one sensor channel, e.g.
// "lunix3-temp" for sensor 3's temperature channel.
func DeviceName(id int, m Metric) string {
	return fmt.Sprintf("lunix%d-%s", id, m)
}

// DevicePath joins a device directory with the node name for the channel.
func DevicePath(dir string, id int, m Metric) string {
	return filepath.Join(dir, DeviceName(id, m))
}
