package event

import (
	"fmt"
	"strings"
)

// Event is a timed musical event in PNote notation. The two variants
// are NoteEvent and ControlEvent; both render to a single line of text
// and sort by the canonical key implemented in Compare.
type Event interface {
	// Render produces the event's PNote line.
	Render() string

	// Start is the event's position in sixty-fourth-note units from
	// the beginning of the piece.
	Start() int64
}

// Parse turns one PNote line into an event. Note parsing is attempted
// first, then control parsing; when neither matches, the returned error
// carries both underlying failures.
func Parse(line string) (Event, error) {
	note, noteErr := ParseNote(line)
	if noteErr == nil {
		return note, nil
	}
	control, controlErr := ParseControl(line)
	if controlErr == nil {
		return control, nil
	}
	return nil, fmt.Errorf("not a note event (%v) and not a control event (%v)", noteErr, controlErr)
}

// Compare reports the canonical ordering of a and b: negative when a
// sorts before b, positive when after, zero when their keys are equal.
// Events sort by ascending start; at equal start, control events come
// before note events; controls tie-break alphabetically by name then
// value, notes by descending pitch.
func Compare(a, b Event) int {
	if a.Start() != b.Start() {
		if a.Start() < b.Start() {
			return -1
		}
		return 1
	}

	ra, rb := variantRank(a), variantRank(b)
	if ra != rb {
		return ra - rb
	}

	switch ea := a.(type) {
	case ControlEvent:
		eb := b.(ControlEvent)
		if ea.Name != eb.Name {
			return strings.Compare(ea.Name, eb.Name)
		}
		return strings.Compare(ea.Value, eb.Value)
	case NoteEvent:
		eb := b.(NoteEvent)
		return eb.pitchValue() - ea.pitchValue()
	}
	return 0
}

func variantRank(e Event) int {
	switch e.(type) {
	case ControlEvent:
		return 0
	case NoteEvent:
		return 1
	default:
		return 2
	}
}
