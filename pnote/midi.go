package pnote

import (
	"strconv"

	"github.com/jsphweid/pnote/constants"
	"github.com/jsphweid/pnote/event"
	"github.com/jsphweid/pnote/midi"
	"github.com/jsphweid/pnote/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

type pendingNote struct {
	tick int64
	vel  uint8
}

// FromMIDI decodes a MIDI source (path, bytes or io.Reader) into a
// PNote collection. Only note-on/note-off pairs and tempo changes are
// interpreted; other messages are ignored.
func FromMIDI(source any) (*PNote, error) {
	s, err := midi.Load(source)
	if err != nil {
		return nil, err
	}
	return fromSMF(s), nil
}

func fromSMF(s *smf.SMF) *PNote {
	p := New()
	tpb := ticksPerBeat(s)

	for _, track := range s.Tracks {
		var absTicks int64
		pending := make(map[uint8][]pendingNote)
		for _, evt := range track {
			absTicks += int64(evt.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			var bpm float64
			switch {
			case evt.Message.GetMetaTempo(&bpm):
				start := ticksToSixtyfourths(absTicks, tpb)
				p.AddEvent(event.NewControl("Tempo", formatBPM(bpm), start))
			case evt.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
				pending[key] = append(pending[key], pendingNote{tick: absTicks, vel: velocity})
			case evt.Message.GetNoteOff(&channel, &key, &velocity),
				evt.Message.GetNoteOn(&channel, &key, &velocity):
				// explicit note-off, or note-on with velocity 0
				queue := pending[key]
				if len(queue) == 0 {
					// note-off with no matching note-on, not an error
					continue
				}
				on := queue[0]
				pending[key] = queue[1:]
				start := ticksToSixtyfourths(on.tick, tpb)
				end := ticksToSixtyfourths(absTicks, tpb)
				dur := util.Max(int64(1), end-start)
				p.AddEvent(event.NewNote(event.PitchName(key), start, dur, int(on.vel)))
			}
		}
	}
	return p
}

func ticksPerBeat(s *smf.SMF) int64 {
	if mt, ok := s.TimeFormat.(smf.MetricTicks); ok {
		return int64(mt)
	}
	// SMPTE time formats have no musical grid to quantize onto
	return 0
}

// ticksToSixtyfourths quantizes an absolute tick position onto the
// sixty-fourth-note grid, rounding up so notes exported slightly short
// of a grid unit still land on the next sixty-fourth.
func ticksToSixtyfourths(ticks int64, ticksPerBeat int64) int64 {
	perSixtyfourth := ticksPerBeat / constants.SixtyfourthsPerBeat
	if perSixtyfourth <= 0 {
		return 0
	}
	return (ticks + perSixtyfourth - 1) / perSixtyfourth
}

func formatBPM(bpm float64) string {
	return strconv.FormatFloat(bpm, 'g', -1, 64)
}
