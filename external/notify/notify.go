// Package notify provides example document.Subscriber implementations.
// Subscribers receive events synchronously after every core invariant has
// been restored (spec.md §5) and must not mutate the document they were
// notified about.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/hson-lang/hson/internal/document"
)

// Counter is a Subscriber that tallies events by kind. Safe for concurrent
// reads of its totals via Counts while the document itself remains
// single-owner, single-threaded per spec.md §5.
type Counter struct {
	mu     sync.Mutex
	counts map[document.EventKind]int
}

// NewCounter returns a ready-to-subscribe Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[document.EventKind]int)}
}

// Subscribe returns the Subscriber function to pass to Document.Subscribe.
func (c *Counter) Subscribe() document.Subscriber {
	return func(e document.Event) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.counts[e.Kind]++
	}
}

// Count reports how many events of kind have been observed so far.
func (c *Counter) Count(kind document.EventKind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[kind]
}

// Logger is a Subscriber that writes one line per event to an io.Writer, in
// the plain fmt.Fprintf style the companion CLI uses for its own output
// rather than reaching for a logging library (DESIGN.md).
type Logger struct {
	w io.Writer
}

// NewLogger returns a Logger that writes to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w}
}

// Subscribe returns the Subscriber function to pass to Document.Subscribe.
func (l *Logger) Subscribe() document.Subscriber {
	return func(e document.Event) {
		fmt.Fprintf(l.w, "hson: %s id=%d\n", e.Kind, int64(e.ID))
	}
}
