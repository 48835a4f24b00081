package xmlparser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cxy13h/xml-parser/event"
)

func TestClassifyString(t *testing.T) {
	got := event.Merge(ClassifyString(
		"<Action><Feature>ok</Feature></Action>",
		map[string][]string{"Action": {"Feature"}},
	))
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

func TestClassifyChunks(t *testing.T) {
	var got []event.Event
	h := event.HandlerFuncs{
		StartFunc:   func(name string, level int) { got = append(got, event.StartOf(name, level)) },
		EndFunc:     func(name string, level int) { got = append(got, event.EndOf(name, level)) },
		ContentFunc: func(text string, level int) { got = append(got, event.ContentOf(text, level)) },
	}
	ClassifyChunks(
		[]string{"<Action><Fea", "ture>ok</Feature></Action>"},
		map[string][]string{"Action": {"Feature"}},
		h,
	)
	want := []event.Event{
		event.StartOf("Action", 0),
		event.StartOf("Feature", 1),
		event.ContentOf("ok", 2),
		event.EndOf("Feature", 1),
		event.EndOf("Action", 0),
	}
	if d := cmp.Diff(want, event.Merge(got)); d != "" {
		t.Errorf("events mismatch (-want +got):\n%s", d)
	}
}

func TestClassifyReader(t *testing.T) {
	var contents []string
	h := event.HandlerFuncs{
		ContentFunc: func(text string, level int) { contents = append(contents, text) },
	}
	err := Classify(
		strings.NewReader("<Action>streamed</Action>"),
		map[string][]string{"Action": nil},
		h,
	)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if strings.Join(contents, "") != "streamed" {
		t.Errorf("contents = %v", contents)
	}
}
