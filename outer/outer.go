// Package outer implements the outermost-only streaming recognizer: only
// the first nesting level is structural, and everything between a tag's
// open and its literal matching close passes through verbatim as content,
// nested angle-bracket text included. Equivalent to a hierarchy of depth
// one over every name.
//
// Because the body is matched purely against the literal closing sequence,
// the recognizer must retain the longest buffer suffix that could be a
// prefix of that sequence across chunk boundaries.
package outer

import (
	"strings"

	"github.com/cxy13h/xml-parser/event"
	"github.com/cxy13h/xml-parser/internal/tagname"
)

type state int

const (
	scanning state = iota
	inDelimiter
	inBody
)

// Recognizer is one mutable outermost-only session. Not safe for
// concurrent use.
type Recognizer struct {
	state state
	buf   string
	open  string // name of the currently open outermost tag
}

// New returns a fresh outermost-only recognizer.
func New() *Recognizer {
	return &Recognizer{}
}

// ProcessChunk appends chunk to the residual buffer and returns every
// event it resolves. Start and End are emitted at level 0; content inside
// an open tag at level 1, content outside at level 0.
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
					evs = append(evs, event.ContentOf(r.buf, 0))
				}
				r.buf = ""
				return evs
			}
			if lt > 0 {
				evs = append(evs, event.ContentOf(r.buf[:lt], 0))
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
			if name := tagname.Extract(body); name != "" && !strings.HasPrefix(body, "/") {
				r.open = name
				r.state = inBody
				evs = append(evs, event.StartOf(name, 0))
				continue
			}
			// stray close or unusable delimiter at top level: content
			r.state = scanning
			evs = append(evs, event.ContentOf("<"+body+">", 0))

		case inBody:
			closing := "</" + r.open + ">"
			end := strings.Index(r.buf, closing)
			if end >= 0 {
				if end > 0 {
					evs = append(evs, event.ContentOf(r.buf[:end], 1))
				}
				evs = append(evs, event.EndOf(r.open, 0))
				r.buf = r.buf[end+len(closing):]
				r.open = ""
				r.state = scanning
				continue
			}
			// hold back whatever could still become the closing literal
			keep := suffixPrefix(r.buf, closing)
			if cut := len(r.buf) - keep; cut > 0 {
				evs = append(evs, event.ContentOf(r.buf[:cut], 1))
				r.buf = r.buf[cut:]
			}
			return evs
		}
	}
}

// suffixPrefix returns the length of the longest suffix of buf that is a
// proper prefix of pattern.
func suffixPrefix(buf, pattern string) int {
	max := len(pattern) - 1
	if len(buf) < max {
		max = len(buf)
	}
	for n := max; n > 0; n-- {
		if strings.HasPrefix(pattern, buf[len(buf)-n:]) {
			return n
		}
	}
	return 0
}

// Finalize drains the residual buffer, including any partial delimiter or
// retained closing-literal prefix, as trailing content and resets the
// session.
func (r *Recognizer) Finalize() []event.Event {
	var evs []event.Event
	if r.buf != "" {
		level := 0
		if r.state == inBody {
			level = 1
		}
		evs = append(evs, event.ContentOf(r.buf, level))
	}
	r.Reset()
	return evs
}

// Reset returns the session to its initial empty state.
func (r *Recognizer) Reset() {
	r.state = scanning
	r.buf = ""
	r.open = ""
}

// Open returns the name of the currently open outermost tag, "" if none.
func (r *Recognizer) Open() string {
	return r.open
}
