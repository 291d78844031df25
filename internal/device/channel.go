package device

import (
	"io"
	"strings"

	"github.com/lunixtng/lunixmon/pkg/lunix"
)

const (
	// BufSize sizes the per-channel read buffer; at most BufSize-1 bytes
	// are requested per poll.
	BufSize = 32

	// MaxValueLen is the display width of a value column. Cached values
	// are bounded to it, so overlong payloads are truncated rather than
	// rejected.
	MaxValueLen = 12
)

// Channel owns the read source for one metric of one sensor together with
// the last value it produced. The zero value is an unavailable channel.
//
// Unavailability is a state of the type: a channel that fails to open
// stays unavailable for the whole run and simply renders as offline.
// Callers never see or compare raw handles.
type Channel struct {
	src  io.ReadCloser
	last string
	buf  [BufSize - 1]byte
}

// Open attempts to open the (id, metric) source through the opener. Any
// open failure, whatever the reason, yields an unavailable channel:
// offline sensors are an expected steady state, not an error to escalate.
func Open(opener Opener, id int, metric lunix.Metric) Channel {
	src, err := opener.Open(id, metric)
	if err != nil {
		return Channel{}
	}
	return Channel{src: src}
}

// Available reports whether the channel's source was opened.
func (c *Channel) Available() bool { return c.src != nil }

// Value returns the last cached reading. Empty string means no data has
// arrived yet.
func (c *Channel) Value() string { return c.last }

// HasValue reports whether the channel ever produced a reading.
func (c *Channel) HasValue() bool { return c.last != "" }

// Poll makes one non-blocking read attempt and reports whether a fresh
// value was cached. Zero bytes is the normal case, not an error: the
// devices update far less often than the dashboard polls, so read errors
// like EAGAIN are indistinguishable from "no new data" and the previous
// value stays.
func (c *Channel) Poll() bool {
	if c.src == nil {
		return false
	}
	n, _ := c.src.Read(c.buf[:])
	if n <= 0 {
		return false
	}
	c.last = clamp(string(c.buf[:n]))
	return true
}

// Close releases the source and marks the channel unavailable. Safe to
// call on unavailable or already-closed channels.
func (c *Channel) Close() {
	if c.src == nil {
		return
	}
	c.src.Close()
	c.src = nil
}

// clamp truncates a raw reading at the first line break and bounds it to
// the display width.
func clamp(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > MaxValueLen {
		s = s[:MaxValueLen]
	}
	return s
}
