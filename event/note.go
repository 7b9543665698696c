package event

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/pnote/util"
)

// NoteEvent is a pitched note with a duration, both measured in
// sixty-fourth-note units, and a MIDI velocity.
type NoteEvent struct {
	Pitch string
	Dur   int64
	Vel   int

	start int64
}

func NewNote(pitch string, start int64, dur int64, vel int) NoteEvent {
	return NoteEvent{Pitch: pitch, Dur: dur, Vel: vel, start: start}
}

func (n NoteEvent) Start() int64 {
	return n.start
}

func (n NoteEvent) Render() string {
	return fmt.Sprintf("%v:start=%v:dur=%v:vel=%v", n.Pitch, n.start, n.Dur, n.Vel)
}

func (n NoteEvent) pitchValue() int {
	v, _ := PitchValue(n.Pitch)
	return v
}

// ParseNote parses a line of the form PITCH:start=N:dur=N:vel=N.
func ParseNote(line string) (NoteEvent, error) {
	var blank NoteEvent

	fields := strings.Split(line, ":")
	if len(fields) != 4 {
		return blank, fmt.Errorf("expected 4 fields separated by ':', got %v", len(fields))
	}

	pitch := fields[0]
	if pitch == "" {
		return blank, fmt.Errorf("empty pitch")
	}
	if !pitchRegexp.MatchString(pitch) {
		return blank, fmt.Errorf("unrecognized pitch %q", pitch)
	}

	params := make(map[string]int64)
	for _, field := range fields[1:] {
		key, value, found := strings.Cut(field, "=")
		if !found {
			return blank, fmt.Errorf("expected key=value, got %q", field)
		}
		num, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return blank, fmt.Errorf("parameter %v is not an integer: %q", key, value)
		}
		params[key] = num
	}

	start, hasStart := params["start"]
	dur, hasDur := params["dur"]
	vel, hasVel := params["vel"]
	if !hasStart || !hasDur || !hasVel || len(params) != 3 {
		keys := util.GetKeys(params)
		sort.Strings(keys)
		return blank, fmt.Errorf("unexpected parameters %v, want [dur start vel]", keys)
	}

	if start < 0 {
		return blank, fmt.Errorf("start must be non-negative, got %v", start)
	}
	if dur <= 0 {
		return blank, fmt.Errorf("dur must be positive, got %v", dur)
	}
	if vel < 0 || vel > 127 {
		return blank, fmt.Errorf("vel must be between 0 and 127, got %v", vel)
	}

	return NewNote(pitch, start, dur, int(vel)), nil
}
