// Package devicetest provides scripted Opener and source implementations
// for tests that need deterministic sensor channels without real device
// nodes.
package devicetest

import (
	"errors"
	"fmt"
	"io"

	"github.com/lunixtng/lunixmon/pkg/lunix"
)

// Source is a scripted byte source for one channel. Reads drain a queue of
// payloads; an empty queue behaves like an idle device (zero bytes).
type Source struct {
	Name   string
	Closed int

	queue []string
	order *[]string
}

func (s *Source) Read(p []byte) (int, error) {
	if s.order != nil {
		*s.order = append(*s.order, s.Name)
	}
	if len(s.queue) == 0 {
		return 0, io.EOF
	}
	v := s.queue[0]
	s.queue = s.queue[1:]
	return copy(p, v), nil
}

func (s *Source) Close() error {
	s.Closed++
	return nil
}

// Feed queues one raw payload for a future read.
func (s *Source) Feed(v string) {
	s.queue = append(s.queue, v)
}

// Opener builds scripted sources on demand and remembers them by channel
// key so tests can feed values or count closes later. Every read on any
// source appends the channel key to Order.
type Opener struct {
	Unavailable map[string]bool
	Sources     map[string]*Source
	Order       []string
}

// NewOpener returns an Opener where every channel opens successfully
// until marked unavailable.
func NewOpener() *Opener {
	return &Opener{
		Unavailable: make(map[string]bool),
		Sources:     make(map[string]*Source),
	}
}

// Key returns the map key for one channel, e.g. "3-temp".
func Key(id int, metric lunix.Metric) string {
	return fmt.Sprintf("%d-%s", id, metric)
}

func (o *Opener) Open(id int, metric lunix.Metric) (io.ReadCloser, error) {
	name := Key(id, metric)
	if o.Unavailable[name] {
		return nil, errors.New("node missing")
	}
	src := &Source{Name: name, order: &o.Order}
	o.Sources[name] = src
	return src, nil
}

// MarkUnavailable makes every future open of the channel fail.
func (o *Opener) MarkUnavailable(id int, metric lunix.Metric) {
	o.Unavailable[Key(id, metric)] = true
}

// Feed queues a payload on an opened channel's source. Feeding a channel
// that was never opened is a no-op.
func (o *Opener) Feed(id int, metric lunix.Metric, v string) {
	if src, ok := o.Sources[Key(id, metric)]; ok {
		src.Feed(v)
	}
}

// FailingOpener refuses every open, like a machine without the sensor
// driver loaded.
type FailingOpener struct{}

func (FailingOpener) Open(id int, metric lunix.Metric) (io.ReadCloser, error) {
	return nil, errors.New("no such device")
}
