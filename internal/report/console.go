// Package report renders simulation events and results for people: colored
// event lines, averages tables and a comparison chart.
package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"cpu-scheduler-sim/internal/core"
)

var (
	algorithmTag = color.New(color.FgRed).SprintfFunc()
	createdLine  = color.New(color.FgMagenta).SprintfFunc()
	runningLine  = color.New(color.FgCyan).SprintfFunc()
	doneLine     = color.New(color.FgGreen).SprintfFunc()
	heading      = color.New(color.FgYellow).SprintfFunc()
)

// Console prints one colored line per event.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Emit(e core.Event) {
	line := FormatEvent(e)
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintln(c.w, line)
}

// Heading prints a highlighted section title such as "[Creating Processes...]".
func (c *Console) Heading(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintln(c.w, heading("\n[%s]", title))
}

func FormatEvent(e core.Event) string {
	var tag string
	if e.Algorithm != "" {
		tag = algorithmTag("[%s] ", e.Algorithm)
	}

	switch e.Kind {
	case core.EventCreated:
		return tag + createdLine("[Created]   Process %d at time %d (burst = %d)", e.PID, e.Time, e.Burst)
	case core.EventStart:
		return tag + runningLine("[Running]   Process %d starts at time %d (burst = %d)", e.PID, e.Time, e.Burst)
	case core.EventReturn:
		return tag + doneLine("[Return]    Process %d returned to queue at time %d", e.PID, e.Time)
	case core.EventComplete:
		return tag + doneLine("[Complete]  Process %d finished at time %d", e.PID, e.Time)
	default:
		return tag + fmt.Sprintf("[%s] Process %d at time %d", e.Kind, e.PID, e.Time)
	}
}
