package event

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// NoteNames maps a semitone within an octave to its pitch name; C4 is
// MIDI note 60.
var NoteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var pitchRegexp = regexp.MustCompile(`^[A-G][#b]?-?[0-9]+$`)

var letterSemitones = map[byte]int{
	'C': 0,
	'D': 2,
	'E': 4,
	'F': 5,
	'G': 7,
	'A': 9,
	'B': 11,
}

// PitchName renders a MIDI note number as a pitch name with octave,
// e.g. 60 -> "C4", 61 -> "C#4", 0 -> "C-1".
func PitchName(note uint8) string {
	name := NoteNames[int(note)%12]
	octave := int(note)/12 - 1
	return name + strconv.Itoa(octave)
}

// PitchValue maps a pitch name back to its MIDI note value, the reverse
// of PitchName. Flats are accepted even though PitchName never emits
// them.
func PitchValue(pitch string) (int, error) {
	if !pitchRegexp.MatchString(pitch) {
		return 0, fmt.Errorf("unrecognized pitch %q", pitch)
	}

	semitone := letterSemitones[pitch[0]]
	rest := pitch[1:]
	switch {
	case strings.HasPrefix(rest, "#"):
		semitone++
		rest = rest[1:]
	case strings.HasPrefix(rest, "b"):
		semitone--
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("unrecognized pitch %q", pitch)
	}
	return (octave+1)*12 + semitone, nil
}
