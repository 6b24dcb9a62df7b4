package host

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

var (
	colorInfo  = color.New(color.FgCyan)
	colorWarn  = color.New(color.FgYellow)
	colorError = color.New(color.FgRed, color.Bold)
)

// TerminalNotifier prints transient messages, one per line, with a colored
// level tag. color disables itself when out is not a terminal.
type TerminalNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

var _ Notifier = (*TerminalNotifier)(nil)

func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

func (n *TerminalNotifier) Info(msg string)  { n.print(colorInfo, "info", msg) }
func (n *TerminalNotifier) Warn(msg string)  { n.print(colorWarn, "warning", msg) }
func (n *TerminalNotifier) Error(msg string) { n.print(colorError, "error", msg) }

func (n *TerminalNotifier) print(c *color.Color, level, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "%s %s\n", c.Sprintf("[%s]", level), msg)
}

// TerminalProgress prints the title before fn and nothing after it; the
// outcome report that follows marks the end.
type TerminalProgress struct {
	out io.Writer
}

var _ Progress = (*TerminalProgress)(nil)

func NewTerminalProgress(out io.Writer) *TerminalProgress {
	return &TerminalProgress{out: out}
}

func (p *TerminalProgress) Run(title string, cancellable bool, fn func()) {
	if !cancellable {
		title += " (not cancellable)"
	}
	fmt.Fprintln(p.out, color.New(color.Faint).Sprint(title))
	fn()
}
