package doctor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/lunixtng/lunixmon/internal/device"
	"github.com/lunixtng/lunixmon/pkg/lunix"
)

// DeviceDirCheck verifies the device directory exists.
type DeviceDirCheck struct {
	Dir string
}

func (c *DeviceDirCheck) Name() string     { return "device_dir" }
func (c *DeviceDirCheck) Category() string { return "DEVICES" }

func (c *DeviceDirCheck) Run() CheckResult {
	info, err := os.Stat(c.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return CheckResult{
				Name:       c.Name(),
				Status:     StatusFail,
				Message:    fmt.Sprintf("Device directory %s does not exist", c.Dir),
				Suggestion: "Load the lunix driver, or run 'lunixmon simulate' and point --device-dir at its directory",
			}
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot access %s: %v", c.Dir, err),
			Suggestion: "Check directory permissions",
		}
	}

	if !info.IsDir() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s is not a directory", c.Dir),
			Suggestion: "Point device_dir at the directory holding the lunix nodes",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Device directory: %s", c.Dir),
	}
}

func (c *DeviceDirCheck) Fix() error { return nil }

// SensorNodesCheck counts how many sensors have their full set of nodes.
type SensorNodesCheck struct {
	Dir   string
	Count int
}

func (c *SensorNodesCheck) Name() string     { return "sensor_nodes" }
func (c *SensorNodesCheck) Category() string { return "DEVICES" }

func (c *SensorNodesCheck) Run() CheckResult {
	complete := 0
	found := 0

	for id := 0; id < c.Count; id++ {
		present := 0
		for _, metric := range lunix.Metrics {
			if _, err := os.Stat(lunix.DevicePath(c.Dir, id, metric)); err == nil {
				present++
			}
		}
		found += present
		if present == len(lunix.Metrics) {
			complete++
		}
	}

	if found == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("No sensor nodes found under %s", c.Dir),
			Suggestion: "Load the lunix driver, or run 'lunixmon simulate' to create practice nodes",
		}
	}

	if complete < c.Count {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%d/%d sensors have all their nodes", complete, c.Count),
			Suggestion: "Sensors without a battery node show as OFFLINE on the dashboard",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("All %d sensors present", c.Count),
	}
}

func (c *SensorNodesCheck) Fix() error { return nil }

// DeviceReadCheck probes the first available battery node with the same
// non-blocking open and read the dashboard uses.
type DeviceReadCheck struct {
	Dir   string
	Count int
}

func (c *DeviceReadCheck) Name() string     { return "device_read" }
func (c *DeviceReadCheck) Category() string { return "DEVICES" }

func (c *DeviceReadCheck) Run() CheckResult {
	opener := device.DirOpener{Dir: c.Dir}

	probe := -1
	for id := 0; id < c.Count; id++ {
		if _, err := os.Stat(lunix.DevicePath(c.Dir, id, lunix.Battery)); err == nil {
			probe = id
			break
		}
	}

	if probe == -1 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No battery node to probe",
			Suggestion: "Run 'lunixmon simulate' to create practice nodes",
		}
	}

	src, err := opener.Open(probe, lunix.Battery)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot open %s: %v", lunix.DeviceName(probe, lunix.Battery), err),
			Suggestion: "Check device permissions",
		}
	}
	defer src.Close()

	buf := make([]byte, device.BufSize-1)
	n, err := src.Read(buf)
	switch {
	case n > 0:
		value := strings.TrimSpace(string(buf[:n]))
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("Read %q from %s", value, lunix.DeviceName(probe, lunix.Battery)),
		}
	case err == nil || err == io.EOF || err == unix.EAGAIN:
		// An empty device is normal between driver updates.
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Non-blocking read OK (no data pending)",
		}
	default:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Read from %s failed: %v", lunix.DeviceName(probe, lunix.Battery), err),
			Suggestion: "Check that the lunix driver is healthy: dmesg | grep lunix",
		}
	}
}

func (c *DeviceReadCheck) Fix() error { return nil }

// NewDeviceChecks creates all device-related checks.
func NewDeviceChecks(dir string, count int) []Check {
	return []Check{
		&DeviceDirCheck{Dir: dir},
		&SensorNodesCheck{Dir: dir, Count: count},
		&DeviceReadCheck{Dir: dir, Count: count},
	}
}
