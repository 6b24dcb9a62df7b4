package host

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// TerminalDisplay hands out named output channels that print to out. All
// channels share one lock so concurrent Show calls never interleave.
type TerminalDisplay struct {
	mu       sync.Mutex
	out      io.Writer
	channels map[string]*terminalChannel
}

var _ Display = (*TerminalDisplay)(nil)

func NewTerminalDisplay(out io.Writer) *TerminalDisplay {
	return &TerminalDisplay{out: out, channels: make(map[string]*terminalChannel)}
}

func (d *TerminalDisplay) OutputChannel(name string) OutputChannel {
	d.mu.Lock()
	defer d.mu.Unlock()
	if ch, ok := d.channels[name]; ok {
		return ch
	}
	ch := &terminalChannel{name: name, display: d}
	d.channels[name] = ch
	return ch
}

// Channels lists the names of channels created so far.
func (d *TerminalDisplay) Channels() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	names := make([]string, 0, len(d.channels))
	for name := range d.channels {
		names = append(names, name)
	}
	return names
}

type terminalChannel struct {
	name    string
	display *TerminalDisplay
	lines   []string
	shown   int
}

func (c *terminalChannel) AppendLine(line string) {
	c.display.mu.Lock()
	defer c.display.mu.Unlock()
	c.lines = append(c.lines, line)
}

// Show flushes the lines appended since the previous Show.
func (c *terminalChannel) Show() {
	c.display.mu.Lock()
	defer c.display.mu.Unlock()
	c.flush()
}

func (c *terminalChannel) AppendAndShow(line string) {
	c.display.mu.Lock()
	defer c.display.mu.Unlock()
	c.lines = append(c.lines, line)
	c.flush()
}

// flush must be called with the display lock held.
func (c *terminalChannel) flush() {
	if c.shown == len(c.lines) {
		return
	}
	fmt.Fprintf(c.display.out, "--- %s ---\n%s\n", c.name, strings.Join(c.lines[c.shown:], "\n"))
	c.shown = len(c.lines)
}

// Lines returns everything appended to the channel so far.
func (c *terminalChannel) Lines() []string {
	c.display.mu.Lock()
	defer c.display.mu.Unlock()
	return append([]string(nil), c.lines...)
}
