package stream

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"

	"github.com/cxy13h/xml-parser/event"
)

var testHierarchy = map[string][]string{"Action": {"Feature"}}

func collect(t *testing.T, s *Source) []event.Event {
	t.Helper()
	var evs []event.Event
	for {
		batch, err := s.Read()
		evs = append(evs, batch...)
		if err == io.EOF {
			return event.Merge(evs)
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
	}
}

func TestReadBatches(t *testing.T) {
	input := "<Action><Feature>ok</Feature></Action>"
	got := collect(t, NewSource(strings.NewReader(input), testHierarchy))
	want := []event.Event{
		event.StartOf("Action", 0),
		event.StartOf("Feature", 1),
		event.ContentOf("ok", 2),
		event.EndOf("Feature", 1),
		event.EndOf("Action", 0),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("events mismatch (-want +got):\n%s", d)
	}
}

func TestSmallChunksMatchWholeInput(t *testing.T) {
	input := "pre<Action>text<Bad>x</Bad><Feature>f</Feature></Action>post"
	whole := collect(t, NewSource(strings.NewReader(input), testHierarchy))
	tiny := collect(t, NewSource(strings.NewReader(input), testHierarchy, WithChunkSize(1)))
	if d := cmp.Diff(whole, tiny); d != "" {
		t.Errorf("chunk size changed events (-whole +tiny):\n%s", d)
	}
}

func TestOneByteReader(t *testing.T) {
	input := "<Action>hello</Action>"
	r := iotest.OneByteReader(strings.NewReader(input))
	got := collect(t, NewSource(r, testHierarchy))
	want := []event.Event{
		event.StartOf("Action", 0),
		event.ContentOf("hello", 1),
		event.EndOf("Action", 0),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("events mismatch (-want +got):\n%s", d)
	}
}

func TestReadEvent(t *testing.T) {
	s := NewSource(strings.NewReader("<Action>x</Action>"), testHierarchy)
	var got []event.Event
	for {
		ev, err := s.ReadEvent()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read event: %v", err)
		}
		got = append(got, *ev)
	}
	want := []event.Event{
		event.StartOf("Action", 0),
		event.ContentOf("x", 1),
		event.EndOf("Action", 0),
	}
	if d := cmp.Diff(want, event.Merge(got)); d != "" {
		t.Errorf("events mismatch (-want +got):\n%s", d)
	}
	if _, err := s.ReadEvent(); err != io.EOF {
		t.Errorf("after exhaustion err = %v, want io.EOF", err)
	}
}

func TestDrain(t *testing.T) {
	var names []string
	h := event.HandlerFuncs{
		StartFunc: func(name string, level int) { names = append(names, name) },
	}
	s := NewSource(strings.NewReader("<Action><Feature>x</Feature></Action>"), testHierarchy)
	if err := s.Drain(h); err != nil {
		t.Fatalf("drain: %v", err)
	}
	if len(names) != 2 || names[0] != "Action" || names[1] != "Feature" {
		t.Errorf("starts = %v", names)
	}
}

func TestFinalizeOnEOFWithDanglingTag(t *testing.T) {
	s := NewSource(strings.NewReader("<Action><Fe"), testHierarchy)
	got := collect(t, s)
	want := []event.Event{
		event.StartOf("Action", 0),
		event.ContentOf("<Fe", 1),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("events mismatch (-want +got):\n%s", d)
	}
	if _, err := s.Read(); err != io.EOF {
		t.Errorf("post-EOF err = %v", err)
	}
}

func TestReadError(t *testing.T) {
	boom := errors.New("boom")
	s := NewSource(iotest.ErrReader(boom), testHierarchy)
	if _, err := s.Read(); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestResetReuse(t *testing.T) {
	s := NewSource(strings.NewReader("<Action>half"), testHierarchy)
	collect(t, s)
	s.Reset(strings.NewReader("<Action>two</Action>"))
	got := collect(t, s)
	want := []event.Event{
		event.StartOf("Action", 0),
		event.ContentOf("two", 1),
		event.EndOf("Action", 0),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("events mismatch (-want +got):\n%s", d)
	}
}

func TestIntrospectionDelegates(t *testing.T) {
	s := NewSource(strings.NewReader("<Action><Feature>"), testHierarchy, WithChunkSize(64))
	s.Read()
	if s.Depth() != 2 {
		t.Errorf("depth = %d", s.Depth())
	}
	if got := s.CurrentPath(); got != "Action.Feature" {
		t.Errorf("path = %q", got)
	}
	if !strings.Contains(s.DescribeHierarchy(), "Action (level 0)") {
		t.Errorf("describe = %q", s.DescribeHierarchy())
	}
}
