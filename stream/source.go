// Package stream adapts the chunk-oriented classifier to io.Reader input,
// producing structural events the way an event decoder would.
package stream

import (
	"io"

	"github.com/cxy13h/xml-parser/classify"
	"github.com/cxy13h/xml-parser/debug"
	"github.com/cxy13h/xml-parser/event"
)

const defaultChunkSize = 4096

// Source provides streaming classification from an io.Reader. It owns a
// classify.Classifier session and feeds it fixed-size chunks as the
// consumer pulls events.
type Source struct {
	reader io.Reader
	c      *classify.Classifier
	chunk  []byte

	// queue for ReadEvent's one-at-a-time delivery
	pending []event.Event

	finalized bool
}

// NewSource creates a Source classifying r against hierarchy.
func NewSource(r io.Reader, hierarchy map[string][]string, opts ...Option) *Source {
	o := &sourceOpts{chunkSize: defaultChunkSize}
	for _, opt := range opts {
		opt(o)
	}
	return &Source{
		reader: r,
		c:      classify.New(hierarchy, o.classifyOpts...),
		chunk:  make([]byte, o.chunkSize),
	}
}

// Read reads from the underlying reader until at least one event is
// available and returns the batch. At end of input it returns whatever
// Finalize drains, then (nil, io.EOF) on subsequent calls. A non-EOF read
// error is returned together with any events already resolved.
func (s *Source) Read() ([]event.Event, error) {
	if s.finalized {
		return nil, io.EOF
	}
	for {
		n, err := s.reader.Read(s.chunk)
		var evs []event.Event
		if n > 0 {
			if debug.Stream() {
				debug.Logf("stream: read %d bytes\n", n)
			}
			evs = s.c.ProcessChunk(string(s.chunk[:n]))
		}
		if err != nil {
			if err == io.EOF {
				s.finalized = true
				evs = append(evs, s.c.Finalize()...)
				if len(evs) == 0 {
					return nil, io.EOF
				}
				return evs, nil
			}
			return evs, err
		}
		if len(evs) > 0 {
			return evs, nil
		}
	}
}

// ReadEvent returns the next single event, reading as needed. Returns
// io.EOF when the stream is exhausted and finalized.
func (s *Source) ReadEvent() (*event.Event, error) {
	for len(s.pending) == 0 {
		evs, err := s.Read()
		if err != nil {
			return nil, err
		}
		s.pending = evs
	}
	ev := s.pending[0]
	s.pending = s.pending[1:]
	return &ev, nil
}

// Drain reads the whole stream into a handler.
func (s *Source) Drain(h event.Handler) error {
	for {
		evs, err := s.Read()
		event.DispatchAll(h, evs)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Reset rebinds the source to a new reader, reusing the classifier
// session (and its hierarchy tree) for an independent stream.
func (s *Source) Reset(r io.Reader) {
	s.reader = r
	s.c.Reset()
	s.pending = nil
	s.finalized = false
}

// Depth returns the current recognized nesting depth.
func (s *Source) Depth() int {
	return s.c.Depth()
}

// CurrentPath returns the dot-joined names of the open recognized tags.
func (s *Source) CurrentPath() string {
	return s.c.CurrentPath()
}

// DescribeHierarchy renders the hierarchy tree for diagnostics.
func (s *Source) DescribeHierarchy() string {
	return s.c.DescribeHierarchy()
}
