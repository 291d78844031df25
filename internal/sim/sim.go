// Package sim emulates a lunix sensor bank with named pipes.
//
// The simulator creates one FIFO per sensor and metric under a target
// directory, then feeds each with a bounded random walk of readings.
// Pointing the dashboard's device directory at the same location gives
// a live demo without the kernel driver.
package sim

import (
	"context"
	"math/rand"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/lunixtng/lunixmon/internal/errors"
	"github.com/lunixtng/lunixmon/internal/logger"
	"github.com/lunixtng/lunixmon/pkg/lunix"
)

// DefaultDir is where the simulator puts its nodes unless told otherwise.
const DefaultDir = "/tmp/lunix-sim"

// Options configures a simulator run.
type Options struct {
	// Dir is the directory where FIFO nodes are created.
	Dir string

	// Count is the number of sensors to emulate.
	Count int

	// Interval is the delay between sample rounds.
	Interval time.Duration

	// Seed fixes the random walks for reproducible runs. Zero picks a
	// time-based seed.
	Seed int64

	// Offline lists sensor IDs that get no nodes at all, so the
	// dashboard shows them as OFFLINE.
	Offline []int

	// Keep leaves the FIFO nodes in place after shutdown.
	Keep bool
}

// node is one FIFO the simulator feeds.
type node struct {
	id     int
	metric lunix.Metric
	path   string
	fd     int
	walk   *walk
}

// Simulator owns the FIFO nodes and their value walks.
type Simulator struct {
	opts    Options
	log     logger.Logger
	offline map[int]bool
	nodes   []*node
	rng     *rand.Rand
}

// New validates options and prepares a simulator. No filesystem changes
// happen until Setup or Run.
func New(opts Options, log logger.Logger) (*Simulator, error) {
	if opts.Dir == "" {
		return nil, errors.New(errors.ErrSim,
			"Simulator directory cannot be empty",
			"Pass a writable directory, e.g. /tmp/lunix-sim")
	}
	if opts.Count < 1 {
		return nil, errors.New(errors.ErrSim,
			"Sensor count must be at least 1",
			"Pass a positive --sensors value")
	}
	if opts.Interval <= 0 {
		opts.Interval = 100 * time.Millisecond
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if log == nil {
		log = logger.Noop()
	}

	offline := make(map[int]bool, len(opts.Offline))
	for _, id := range opts.Offline {
		offline[id] = true
	}

	return &Simulator{
		opts:    opts,
		log:     log,
		offline: offline,
		rng:     rand.New(rand.NewSource(opts.Seed)),
	}, nil
}

// Setup creates the FIFO nodes and opens a writer for each. Sensors
// marked offline are skipped entirely.
func (s *Simulator) Setup() error {
	if err := os.MkdirAll(s.opts.Dir, 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrSim,
			"Cannot create simulator directory "+s.opts.Dir,
			"Check directory permissions")
	}

	for id := 0; id < s.opts.Count; id++ {
		if s.offline[id] {
			s.log.Debug("sensor %d marked offline, skipping nodes", id)
			continue
		}
		for _, metric := range lunix.Metrics {
			n, err := s.openNode(id, metric)
			if err != nil {
				s.Close()
				return err
			}
			s.nodes = append(s.nodes, n)
		}
	}

	s.log.Debug("created %d nodes under %s", len(s.nodes), s.opts.Dir)
	return nil
}

// openNode creates one FIFO and opens it for writing. The writer end is
// opened read-write so the open never blocks waiting for a reader and
// the pipe never delivers EOF while the simulator runs.
func (s *Simulator) openNode(id int, metric lunix.Metric) (*node, error) {
	path := lunix.DevicePath(s.opts.Dir, id, metric)

	if err := unix.Mkfifo(path, 0666); err != nil {
		if err != unix.EEXIST {
			return nil, errors.WrapWithCode(err, errors.ErrSim,
				"Cannot create FIFO "+path,
				"Check directory permissions")
		}
		info, statErr := os.Stat(path)
		if statErr != nil || info.Mode()&os.ModeNamedPipe == 0 {
			return nil, errors.New(errors.ErrSim,
				path+" exists and is not a FIFO",
				"Remove the file or point the simulator at another directory")
		}
	}

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSim,
			"Cannot open FIFO "+path,
			"Check file permissions")
	}

	return &node{
		id:     id,
		metric: metric,
		path:   path,
		fd:     fd,
		walk:   newWalk(metric, s.rng),
	}, nil
}

// Tick advances every walk one step and writes a sample to each node.
// Samples that would overfill an unread pipe are dropped.
func (s *Simulator) Tick() {
	for _, n := range s.nodes {
		sample := n.walk.Next() + "\n"
		if _, err := unix.Write(n.fd, []byte(sample)); err != nil {
			if err == unix.EAGAIN {
				s.log.Debug("pipe %s full, dropping sample", n.path)
				continue
			}
			s.log.Warn("write %s: %v", n.path, err)
		}
	}
}

// Run creates the nodes and feeds them until the context is cancelled.
func (s *Simulator) Run(ctx context.Context) error {
	if len(s.nodes) == 0 {
		if err := s.Setup(); err != nil {
			return err
		}
	}
	defer s.Close()

	// First round immediately so readers see data at startup.
	s.Tick()

	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Debug("simulator stopping: %v", ctx.Err())
			return nil
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Close releases the writer ends and removes the FIFO nodes unless Keep
// is set. Safe to call more than once.
func (s *Simulator) Close() {
	for _, n := range s.nodes {
		unix.Close(n.fd)
		if !s.opts.Keep {
			os.Remove(n.path)
		}
	}
	s.nodes = nil
}
