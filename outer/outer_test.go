package outer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cxy13h/xml-parser/event"
)

func runAll(t *testing.T, chunks ...string) []event.Event {
	t.Helper()
	r := New()
	var evs []event.Event
	for _, ch := range chunks {
		evs = append(evs, r.ProcessChunk(ch)...)
	}
	evs = append(evs, r.Finalize()...)
	return event.Merge(evs)
}

func TestNestedTagsAreContent(t *testing.T) {
	got := runAll(t, "<Start><Reason>Observation</Reason></Start>")
	want := []event.Event{
		event.StartOf("Start", 0),
		event.ContentOf("<Reason>Observation</Reason>", 1),
		event.EndOf("Start", 0),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("events mismatch (-want +got):\n%s", d)
	}
}

func TestClosingLiteralSplitAcrossChunks(t *testing.T) {
	got := runAll(t, "<Start>abc</St", "art>")
	want := []event.Event{
		event.StartOf("Start", 0),
		event.ContentOf("abc", 1),
		event.EndOf("Start", 0),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("events mismatch (-want +got):\n%s", d)
	}
}

func TestFalseClosingPrefixReleased(t *testing.T) {
	got := runAll(t, "<a>x</b>more</a>")
	want := []event.Event{
		event.StartOf("a", 0),
		event.ContentOf("x</b>more", 1),
		event.EndOf("a", 0),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("events mismatch (-want +got):\n%s", d)
	}
}

// only the literal closing sequence of the open tag ends its body, one
// byte at a time included.
func TestByteWiseDelivery(t *testing.T) {
	input := "<Start>a<b></b></Star</Start>tail"
	chunks := make([]string, len(input))
	for i := range input {
		chunks[i] = input[i : i+1]
	}
	got := runAll(t, chunks...)
	want := []event.Event{
		event.StartOf("Start", 0),
		event.ContentOf("a<b></b></Star", 1),
		event.EndOf("Start", 0),
		event.ContentOf("tail", 0),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("events mismatch (-want +got):\n%s", d)
	}
}

func TestStrayCloseAtTopLevelIsContent(t *testing.T) {
	got := runAll(t, "</foo>x")
	want := []event.Event{
		event.ContentOf("</foo>x", 0),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("events mismatch (-want +got):\n%s", d)
	}
}

func TestFinalizeInsideBody(t *testing.T) {
	r := New()
	r.ProcessChunk("<a>unfinished</")
	if r.Open() != "a" {
		t.Errorf("open = %q", r.Open())
	}
	fin := r.Finalize()
	// "unfinished" was already released; only the retained "</" remains
	want := []event.Event{event.ContentOf("</", 1)}
	if d := cmp.Diff(want, fin); d != "" {
		t.Errorf("finalize mismatch (-want +got):\n%s", d)
	}
	if r.Open() != "" {
		t.Errorf("open = %q after finalize", r.Open())
	}
}

func TestSuffixPrefix(t *testing.T) {
	cases := []struct {
		buf, pattern string
		want         int
	}{
		{"abc</St", "</Start>", 4},
		{"abc", "</Start>", 0},
		{"abc<", "</Start>", 1},
		{"</Start", "</Start>", 7},
		{"", "</Start>", 0},
		{"x</a></a", "</a>", 3},
	}
	for _, c := range cases {
		if got := suffixPrefix(c.buf, c.pattern); got != c.want {
			t.Errorf("suffixPrefix(%q, %q) = %d, want %d", c.buf, c.pattern, got, c.want)
		}
	}
}
