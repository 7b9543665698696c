package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlRender(t *testing.T) {
	assert := assert.New(t)
	control := NewControl("Sustain", "off", 100)
	assert.Equal("Sustain:off:start=100", control.Render())
}

func TestControlRenderParseRoundTrip(t *testing.T) {
	controls := []ControlEvent{
		NewControl("Tempo", "120", 0),
		NewControl("Sustain", "on", 104),
	}

	assert := assert.New(t)
	for _, control := range controls {
		parsed, err := ParseControl(control.Render())
		assert.NoError(err)
		assert.Equal(control, parsed)
	}
}

func TestParseControlErrors(t *testing.T) {
	cases := []struct {
		name string
		line string
		want string
	}{
		{"two fields", "Tempo:120", "expected 3 fields"},
		{"four fields", "Tempo:120:start=0:extra", "expected 3 fields"},
		{"empty name", ":120:start=0", "empty control name"},
		{"empty value", "Tempo::start=0", "empty control value"},
		{"missing start prefix", "Invalid:line:format", "expected start=N"},
		{"non-integer start", "Tempo:120:start=abc", "start is not an integer"},
		{"negative start", "Tempo:120:start=-4", "start must be non-negative"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseControl(c.line)
			assert.ErrorContains(t, err, c.want)
		})
	}
}
