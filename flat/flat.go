// Package flat implements the position-free streaming recognizer: every
// syntactically well-formed open or close tag is structural regardless of
// position, equivalent to a hierarchy with unconstrained fan-out. It
// shares the event model and buffering technique of package classify but
// keeps no hierarchy and no stack, only a raw nesting depth.
package flat

import (
	"strings"

	"github.com/cxy13h/xml-parser/event"
	"github.com/cxy13h/xml-parser/internal/tagname"
)

type state int

const (
	scanning state = iota
	inDelimiter
)

// Recognizer is one mutable flat-recognition session. Not safe for
// concurrent use.
type Recognizer struct {
	state state
	buf   string
	depth int
}

// New returns a fresh flat recognizer.
func New() *Recognizer {
	return &Recognizer{}
}

// ProcessChunk appends chunk to the residual buffer and returns every
// event it resolves. Depth is advisory: opens and closes are counted
// without matching names.
func (r *Recognizer) ProcessChunk(chunk string) []event.Event {
	if chunk == "" {
		return nil
	}
	r.buf += chunk
	var evs []event.Event
	for {
		switch r.state {
		case scanning:
			lt := strings.IndexByte(r.buf, '<')
			if lt < 0 {
				if r.buf != "" {
					evs = append(evs, event.ContentOf(r.buf, r.depth))
				}
				r.buf = ""
				return evs
			}
			if lt > 0 {
				evs = append(evs, event.ContentOf(r.buf[:lt], r.depth))
			}
			r.buf = r.buf[lt:]
			r.state = inDelimiter

		case inDelimiter:
			gt := strings.IndexByte(r.buf, '>')
			if gt < 0 {
				return evs
			}
			body := r.buf[1:gt]
			r.buf = r.buf[gt+1:]
			r.state = scanning
			if strings.HasPrefix(body, "/") {
				if name := tagname.Extract(body[1:]); name != "" {
					if r.depth > 0 {
						r.depth--
					}
					evs = append(evs, event.EndOf(name, r.depth))
					continue
				}
			} else if name := tagname.Extract(body); name != "" {
				evs = append(evs, event.StartOf(name, r.depth))
				r.depth++
				continue
			}
			// no extractable name: the delimiter is content
			evs = append(evs, event.ContentOf("<"+body+">", r.depth))
		}
	}
}

// Finalize drains the residual buffer, including any partial delimiter,
// as trailing content and resets the session.
func (r *Recognizer) Finalize() []event.Event {
	var evs []event.Event
	if r.buf != "" {
		evs = append(evs, event.ContentOf(r.buf, r.depth))
	}
	r.Reset()
	return evs
}

// Reset returns the session to its initial empty state.
func (r *Recognizer) Reset() {
	r.state = scanning
	r.buf = ""
	r.depth = 0
}

// Depth returns the current raw open/close nesting depth.
func (r *Recognizer) Depth() int {
	return r.depth
}
