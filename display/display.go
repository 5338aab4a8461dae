// Package display formats monitor snapshots as a text table.
//
//	Philo   State             Fork    Held by
//	[ 0]:   Eating            [ 0]:      0
//	[ 1]:   Thinking          [ 1]:   Free
//	...
//	Th= 1 Wa= 2 Ea= 2 Te= 0   Use= 4  Avail= 1
package display // import "github.com/zixu-w/DPP/display"

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/zixu-w/DPP/dining"
)

const header = "Philo   State             Fork    Held by\n"

var (
	fmtState = map[dining.State]func(a ...interface{}) string{
		dining.Thinking:   color.New(color.FgCyan).SprintFunc(),
		dining.Waiting:    color.New(color.FgYellow).SprintFunc(),
		dining.Eating:     color.New(color.FgGreen, color.Bold).SprintFunc(),
		dining.Terminated: color.New(color.FgHiBlack).SprintFunc(),
	}
	fmtHeld = color.New(color.FgRed).SprintFunc()
	fmtFree = color.New(color.Faint).SprintFunc()
)

// Table writes each snapshot it receives to an io.Writer.
// It implements dining.Reporter.
type Table struct {
	mu sync.Mutex
	w  io.Writer
}

// New creates a table writer on w.
func New(w io.Writer) *Table {
	return &Table{w: w}
}

// Report writes the formatted snapshot.
func (t *Table) Report(s dining.Snapshot) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := io.WriteString(t.w, Format(s))
	return err
}

// Format renders one snapshot: a row per philosopher and fork, followed by
// the per-state and fork counts.
func Format(s dining.Snapshot) string {
	var buf bytes.Buffer
	buf.WriteString(header)
	for i, st := range s.States {
		// Pad before colouring so escape codes do not break the columns.
		fmt.Fprintf(&buf, "[%2d]:   %s[%2d]:   ", i, colourState(st, fmt.Sprintf("%-18s", st)), i)
		if i < len(s.Holders) {
			if h := s.Holders[i]; h == dining.Free {
				buf.WriteString(fmtFree("Free"))
			} else {
				buf.WriteString(fmtHeld(fmt.Sprintf("%4d", h)))
			}
		}
		buf.WriteString("\n")
	}
	fmt.Fprintf(&buf, "Th=%2d Wa=%2d Ea=%2d Te=%2d   Use=%2d  Avail=%2d\n\n",
		s.Count(dining.Thinking), s.Count(dining.Waiting), s.Count(dining.Eating),
		s.Count(dining.Terminated), s.InUse(), s.Available())
	return buf.String()
}

func colourState(st dining.State, text string) string {
	if f, ok := fmtState[st]; ok {
		return f(text)
	}
	return text
}
