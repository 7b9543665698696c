package event

import (
	"fmt"
	"strconv"
	"strings"
)

// ControlEvent is a non-note event such as a tempo change. Value is
// kept as opaque text so rendering never reformats it.
type ControlEvent struct {
	Name  string
	Value string

	start int64
}

func NewControl(name string, value string, start int64) ControlEvent {
	return ControlEvent{Name: name, Value: value, start: start}
}

func (c ControlEvent) Start() int64 {
	return c.start
}

func (c ControlEvent) Render() string {
	return fmt.Sprintf("%v:%v:start=%v", c.Name, c.Value, c.start)
}

// ParseControl parses a line of the form NAME:VALUE:start=N.
func ParseControl(line string) (ControlEvent, error) {
	var blank ControlEvent

	fields := strings.Split(line, ":")
	if len(fields) != 3 {
		return blank, fmt.Errorf("expected 3 fields separated by ':', got %v", len(fields))
	}

	name := fields[0]
	if name == "" {
		return blank, fmt.Errorf("empty control name")
	}
	value := fields[1]
	if value == "" {
		return blank, fmt.Errorf("empty control value")
	}

	if !strings.HasPrefix(fields[2], "start=") {
		return blank, fmt.Errorf("expected start=N as last field, got %q", fields[2])
	}
	rest := strings.TrimPrefix(fields[2], "start=")
	start, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return blank, fmt.Errorf("start is not an integer: %q", rest)
	}
	if start < 0 {
		return blank, fmt.Errorf("start must be non-negative, got %v", start)
	}

	return NewControl(name, value, start), nil
}
