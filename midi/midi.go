package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

// UnsupportedSourceError rejects a source kind the loader cannot read.
// It is returned before any decoding is attempted.
type UnsupportedSourceError struct {
	Source any
}

func (e *UnsupportedSourceError) Error() string {
	return fmt.Sprintf("unsupported MIDI source type %T, expected a path, bytes or an io.Reader", e.Source)
}

// Load reads a standard MIDI file from a filesystem path (string), an
// in-memory byte slice or an io.Reader. Any other source kind fails
// with an UnsupportedSourceError.
func Load(source any) (*smf.SMF, error) {
	var dat []byte
	switch src := source.(type) {
	case string:
		var err error
		dat, err = os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("reading midi file: %w", err)
		}
	case []byte:
		dat = src
	case io.Reader:
		var err error
		dat, err = io.ReadAll(src)
		if err != nil {
			return nil, fmt.Errorf("reading midi source: %w", err)
		}
	default:
		return nil, &UnsupportedSourceError{Source: source}
	}
	return parse(dat)
}

func parse(dat []byte) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			e = fmt.Errorf("parsing midi data: %v", r)
		}
	}()

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("parsing midi data: %w", err)
	}
	return res, nil
}
