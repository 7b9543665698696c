package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDispatchesNoteFirst(t *testing.T) {
	assert := assert.New(t)

	e, err := Parse("C4:start=100:dur=101:vel=102")
	assert.NoError(err)
	assert.Equal(NewNote("C4", 100, 101, 102), e)

	e, err = Parse("Sustain:on:start=104")
	assert.NoError(err)
	assert.Equal(NewControl("Sustain", "on", 104), e)
}

func TestParseReportsBothFailures(t *testing.T) {
	assert := assert.New(t)
	_, err := Parse("Invalid:line:format")
	assert.ErrorContains(err, "not a note event")
	assert.ErrorContains(err, "expected 4 fields")
	assert.ErrorContains(err, "not a control event")
	assert.ErrorContains(err, "expected start=N")
}

func TestPitchName(t *testing.T) {
	cases := []struct {
		note uint8
		want string
	}{
		{0, "C-1"},
		{11, "B-1"},
		{60, "C4"},
		{61, "C#4"},
		{62, "D4"},
		{69, "A4"},
		{127, "G9"},
	}

	assert := assert.New(t)
	for _, c := range cases {
		assert.Equal(c.want, PitchName(c.note))
	}
}

func TestPitchValue(t *testing.T) {
	cases := []struct {
		pitch string
		want  int
	}{
		{"C-1", 0},
		{"B-1", 11},
		{"C4", 60},
		{"C#4", 61},
		{"Db4", 61},
		{"D#-1", 3},
		{"G9", 127},
	}

	assert := assert.New(t)
	for _, c := range cases {
		got, err := PitchValue(c.pitch)
		assert.NoError(err)
		assert.Equal(c.want, got, "pitch %v", c.pitch)
	}
}

func TestPitchValueRoundTrip(t *testing.T) {
	assert := assert.New(t)
	for note := 0; note < 128; note++ {
		got, err := PitchValue(PitchName(uint8(note)))
		assert.NoError(err)
		assert.Equal(note, got)
	}
}

func TestPitchValueRejectsGarbage(t *testing.T) {
	for _, pitch := range []string{"", "4", "C", "c4", "C##4", "Cb", "X2"} {
		_, err := PitchValue(pitch)
		assert.Error(t, err, "pitch %q", pitch)
	}
}

func TestCompareStartIsPrimary(t *testing.T) {
	assert := assert.New(t)
	assert.Negative(Compare(NewNote("C4", 0, 1, 1), NewNote("G9", 1, 1, 1)))
	assert.Positive(Compare(NewControl("Tempo", "120", 5), NewNote("C4", 4, 1, 1)))
}

func TestCompareControlBeforeNoteAtSameStart(t *testing.T) {
	assert := assert.New(t)
	control := NewControl("Tempo", "120", 10)
	note := NewNote("C4", 10, 4, 64)
	assert.Negative(Compare(control, note))
	assert.Positive(Compare(note, control))
}

func TestCompareNotesDescendingPitch(t *testing.T) {
	assert := assert.New(t)
	low := NewNote("C4", 10, 4, 64)
	high := NewNote("D4", 10, 4, 64)
	assert.Negative(Compare(high, low))
	assert.Positive(Compare(low, high))
	assert.Zero(Compare(low, NewNote("C4", 10, 9, 9)))
}

func TestCompareControlsAlphabetical(t *testing.T) {
	assert := assert.New(t)
	assert.Negative(Compare(NewControl("Sustain", "on", 0), NewControl("Tempo", "120", 0)))
	assert.Negative(Compare(NewControl("Tempo", "120", 0), NewControl("Tempo", "90", 0)))
	assert.Zero(Compare(NewControl("Tempo", "120", 0), NewControl("Tempo", "120", 0)))
}
