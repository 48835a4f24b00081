// Package xmlparser classifies streams of simplified angle-bracket markup
// into structural events against a declared tag hierarchy, so that text
// produced progressively can be interpreted before it is fully received.
//
// This package holds convenience entry points; the pieces live in
// subpackages: hier (the declared hierarchy forest), classify (the
// context-aware streaming classifier), flat and outer (degenerate
// recognizers), stream (io.Reader adaptation), and event (the event model
// and sinks).
package xmlparser

import (
	"io"

	"github.com/cxy13h/xml-parser/classify"
	"github.com/cxy13h/xml-parser/event"
	"github.com/cxy13h/xml-parser/stream"
)

// Classify streams r through a classifier for hierarchy into h.
func Classify(r io.Reader, hierarchy map[string][]string, h event.Handler, opts ...stream.Option) error {
	return stream.NewSource(r, hierarchy, opts...).Drain(h)
}

// ClassifyChunks feeds pre-split chunks through a classifier in arrival
// order, finalizes, and dispatches every event to h.
func ClassifyChunks(chunks []string, hierarchy map[string][]string, h event.Handler, opts ...classify.Option) {
	c := classify.New(hierarchy, opts...)
	for _, chunk := range chunks {
		event.DispatchAll(h, c.ProcessChunk(chunk))
	}
	event.DispatchAll(h, c.Finalize())
}

// ClassifyString classifies a complete input and returns the full event
// sequence.
func ClassifyString(s string, hierarchy map[string][]string, opts ...classify.Option) []event.Event {
	c := classify.New(hierarchy, opts...)
	evs := c.ProcessChunk(s)
	return append(evs, c.Finalize()...)
}
