package pnote

import (
	"fmt"
	"strings"

	"github.com/jsphweid/pnote/event"
	"golang.org/x/exp/slices"
)

// PNote holds a piece's events in canonical order. Every insertion
// keeps the invariant, so the collection is never observably unsorted.
type PNote struct {
	events []event.Event
}

func New(events ...event.Event) *PNote {
	p := &PNote{}
	for _, e := range events {
		p.AddEvent(e)
	}
	return p
}

// AddEvent inserts e at its canonical position. Events with equal keys
// keep their insertion order.
func (p *PNote) AddEvent(e event.Event) {
	for i, existing := range p.events {
		if event.Compare(e, existing) < 0 {
			p.events = slices.Insert(p.events, i, e)
			return
		}
	}
	p.events = append(p.events, e)
}

func (p *PNote) Events() []event.Event {
	return p.events
}

func (p *PNote) Len() int {
	return len(p.events)
}

// String renders the whole collection, one line per event, no trailing
// newline.
func (p *PNote) String() string {
	lines := make([]string, 0, len(p.events))
	for _, e := range p.events {
		lines = append(lines, e.Render())
	}
	return strings.Join(lines, "\n")
}

// FromString parses PNote text into a collection. Blank lines are
// skipped; the first malformed line fails the whole parse, reporting
// its 1-based line number, its content and the underlying cause.
func FromString(text string) (*PNote, error) {
	p := New()
	if strings.TrimSpace(text) == "" {
		return p, nil
	}

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		e, err := event.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %v (%q): %w", i+1, line, err)
		}
		p.AddEvent(e)
	}
	return p, nil
}
