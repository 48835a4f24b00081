// Package event defines the structural events produced by the stream
// classifiers and the sink abstractions that consume them.
package event

import "fmt"

// Event is one structural classification of a slice of the input stream.
// Payload holds the tag name for Start/End events and the raw text for
// Content events. Level is the nesting depth counted through recognized
// tags only.
type Event struct {
	Type    Type
	Payload string
	Level   int
}

// StartOf returns a Start event for tag name at level.
func StartOf(name string, level int) Event {
	return Event{Type: Start, Payload: name, Level: level}
}

// EndOf returns an End event for tag name at level.
func EndOf(name string, level int) Event {
	return Event{Type: End, Payload: name, Level: level}
}

// ContentOf returns a Content event for text at level.
func ContentOf(text string, level int) Event {
	return Event{Type: Content, Payload: text, Level: level}
}

func (e Event) String() string {
	return fmt.Sprintf("%s(%q, %d)", e.Type, e.Payload, e.Level)
}

// Type represents the type of a structural event.
type Type int

const (
	Start Type = iota
	End
	Content
)

func (t Type) String() string {
	switch t {
	case Start:
		return "Start"
	case End:
		return "End"
	case Content:
		return "Content"
	default:
		return "Unknown"
	}
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]Type{
		"Start":   Start,
		"End":     End,
		"Content": Content,
	}[k]
	if ok {
		*t = pt
		return nil
	}
	return fmt.Errorf("unknown type %q", k)
}
