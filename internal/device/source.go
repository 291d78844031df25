// Package device implements the channel model for Lunix:TNG sensors: one
// Channel per (sensor, metric) pair, opened through an injected Opener and
// polled with single non-blocking read attempts.
package device

import (
	"io"

	"golang.org/x/sys/unix"

	"github.com/lunixtng/lunixmon/pkg/lunix"
)

// Opener opens the byte source backing one sensor channel. Implementations
// must return a reader whose Read performs a single attempt and returns
// immediately when no data is queued.
type Opener interface {
	Open(id int, metric lunix.Metric) (io.ReadCloser, error)
}

// DirOpener opens device nodes under a directory, normally /dev, in
// non-blocking mode. It is the production Opener; tests and the simulator
// substitute their own.
type DirOpener struct {
	Dir string
}

// Open opens <dir>/lunix<id>-<metric> read-only and non-blocking.
func (o DirOpener) Open(id int, metric lunix.Metric) (io.ReadCloser, error) {
	fd, err := unix.Open(lunix.DevicePath(o.Dir, id, metric), unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, err
	}
	return &node{fd: fd}, nil
}

// node wraps a raw file descriptor. os.File is deliberately not used here:
// the runtime poller would park a Read on an empty pollable device node,
// while the dashboard needs one immediate attempt per cycle.
type node struct {
	fd int
}

func (n *node) Read(p []byte) (int, error) {
	c, err := unix.Read(n.fd, p)
	if c < 0 {
		c = 0
	}
	return c, err
}

func (n *node) Close() error {
	return unix.Close(n.fd)
}
