// Package timing measures the phases of a conversion run.
package timing

import (
	"fmt"
	"strings"
	"time"

	"github.com/NikitaCOEUR/prefixgender/internal/logger"
)

// Timer records the duration of consecutive phases
type Timer struct {
	now    func() time.Time
	start  time.Time
	last   time.Time
	phases map[string]time.Duration
	order  []string
}

// NewTimer creates a timer starting now
func NewTimer() *Timer {
	return newTimer(time.Now)
}

func newTimer(now func() time.Time) *Timer {
	t := &Timer{now: now, phases: make(map[string]time.Duration)}
	t.start = now()
	t.last = t.start
	return t
}

// Mark closes the current phase under label and returns its duration.
// Marking the same label twice accumulates.
func (t *Timer) Mark(label string) time.Duration {
	now := t.now()
	d := now.Sub(t.last)
	t.last = now
	if _, seen := t.phases[label]; !seen {
		t.order = append(t.order, label)
	}
	t.phases[label] += d
	return d
}

// Elapsed returns total elapsed time since timer creation
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// Summary returns a formatted summary of all phases
func (t *Timer) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total: %.3fms", ms(t.Elapsed()))
	if len(t.order) > 0 {
		b.WriteString(" (")
		for i, label := range t.order {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %.3fms", label, ms(t.phases[label]))
		}
		b.WriteString(")")
	}
	return b.String()
}

// Log writes the summary and each phase as debug fields. Nothing is
// computed when debug logging is off.
func (t *Timer) Log(log *logger.Logger, msg string) {
	if !log.Enabled("debug") {
		return
	}
	e := log.Debug().Str("summary", t.Summary()).Dur("total", t.Elapsed())
	for _, label := range t.order {
		e = e.Dur(label, t.phases[label])
	}
	e.Msg(msg)
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
