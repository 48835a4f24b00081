package classify

import (
	"strings"

	"github.com/cxy13h/xml-parser/debug"
	"github.com/cxy13h/xml-parser/event"
	"github.com/cxy13h/xml-parser/hier"
	"github.com/cxy13h/xml-parser/internal/tagname"
)

// state is the classifier position relative to tag delimiters.
type state int

const (
	// scanning: outside any delimiter, looking for '<'.
	scanning state = iota
	// inDelimiter: buffer starts at an unresolved '<', waiting for '>'.
	inDelimiter
	// inBody: inside the innermost recognized open tag, looking for its
	// closing literal or a nested delimiter.
	inBody
)

// Classifier is one mutable classification session over a single logical
// stream. Not safe for concurrent use.
type Classifier struct {
	tree *hier.Tree
	opts *options

	state        state
	buf          string
	stack        []*hier.Node
	invalidDepth int
}

// New builds the hierarchy tree and returns a fresh session. Empty or
// absent hierarchy entries are legal; an empty mapping recognizes nothing
// and classifies every byte as content at level 0.
func New(hierarchy map[string][]string, opts ...Option) *Classifier {
	return NewFromTree(hier.Build(hierarchy), opts...)
}

// NewFromTree returns a fresh session sharing an existing tree. Trees are
// immutable, so many sessions may share one.
func NewFromTree(tree *hier.Tree, opts ...Option) *Classifier {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return &Classifier{tree: tree, opts: o}
}

// ProcessChunk appends chunk to the residual buffer and returns every
// event the buffer now resolves, leaving any unresolved partial token
// buffered for the next call. Accepts any input; an empty chunk yields no
// events. Never fails.
func (c *Classifier) ProcessChunk(chunk string) []event.Event {
	if chunk == "" {
		return nil
	}
	c.buf += chunk
	var evs []event.Event
loop:
	for {
		switch c.state {
		case scanning:
			lt := strings.IndexByte(c.buf, '<')
			if lt < 0 {
				c.emitContent(&evs, c.buf, c.contentLevel())
				c.buf = ""
				break loop
			}
			if lt > 0 {
				c.emitContent(&evs, c.buf[:lt], c.contentLevel())
			}
			// keep the '<' buffered so Finalize can emit a dangling
			// delimiter verbatim
			c.buf = c.buf[lt:]
			c.state = inDelimiter

		case inDelimiter:
			gt := strings.IndexByte(c.buf, '>')
			if gt < 0 {
				break loop
			}
			body := c.buf[1:gt]
			c.buf = c.buf[gt+1:]
			c.resolve(body, &evs)
			if len(c.stack) > 0 {
				c.state = inBody
			} else {
				c.state = scanning
			}

		case inBody:
			if len(c.stack) == 0 {
				c.state = scanning
				continue
			}
			top := c.stack[len(c.stack)-1]
			closing := "</" + top.Name + ">"
			end := strings.Index(c.buf, closing)
			lt := strings.IndexByte(c.buf, '<')
			switch {
			case end >= 0 && (lt < 0 || end <= lt):
				if end > 0 {
					c.emitContent(&evs, c.buf[:end], top.Level+1)
				}
				evs = append(evs, event.EndOf(top.Name, top.Level))
				c.stack = c.stack[:len(c.stack)-1]
				c.buf = c.buf[end+len(closing):]
				if len(c.stack) == 0 {
					c.state = scanning
				}
			case lt >= 0:
				// a nested delimiter starts before any closing literal;
				// suffixes of a partial closing literal contain '<' and
				// are retained on this path
				if lt > 0 {
					c.emitContent(&evs, c.buf[:lt], top.Level+1)
				}
				c.buf = c.buf[lt:]
				c.state = inDelimiter
			default:
				if len(c.buf) > 0 {
					c.emitContent(&evs, c.buf, top.Level+1)
				}
				c.buf = ""
				break loop
			}
		}
	}
	return evs
}

// resolve evaluates one complete delimiter body (the text between '<' and
// '>'). A recognized open or close tag produces its event; anything else
// is re-emitted verbatim as content, adjusting the invalid-tag depth when
// the body carried an extractable name.
func (c *Classifier) resolve(body string, evs *[]event.Event) {
	if strings.HasPrefix(body, "/") {
		if name := tagname.Extract(body[1:]); name != "" {
			if node := c.closeTag(name); node != nil {
				*evs = append(*evs, event.EndOf(name, node.Level))
				return
			}
			// best-effort symmetry with unrecognized opens
			if c.invalidDepth > 0 {
				c.invalidDepth--
			}
		}
	} else {
		if name := tagname.Extract(body); name != "" {
			if node := c.openTag(name); node != nil {
				*evs = append(*evs, event.StartOf(name, node.Level))
				return
			}
			c.invalidDepth++
		}
	}
	if debug.Classify() {
		debug.Logf("pseudo-tag <%s> at depth %d (invalid depth %d)\n", body, len(c.stack), c.invalidDepth)
	}
	c.emitContent(evs, "<"+body+">", c.contentLevel())
}

// openTag resolves a candidate open tag against the current position.
// Recognition requires positional validity and invalid-tag depth zero; on
// success the node is pushed and returned.
func (c *Classifier) openTag(name string) *hier.Node {
	if c.invalidDepth != 0 {
		return nil
	}
	var node *hier.Node
	if len(c.stack) == 0 {
		node = c.tree.Root(name)
	} else {
		node = c.stack[len(c.stack)-1].Child(name)
	}
	if node == nil {
		return nil
	}
	c.stack = append(c.stack, node)
	return node
}

// closeTag resolves a candidate close tag: it must name the stack top.
// A close matching a tag deeper in the stack fails; no implicit repair.
func (c *Classifier) closeTag(name string) *hier.Node {
	if len(c.stack) == 0 || c.stack[len(c.stack)-1].Name != name {
		return nil
	}
	node := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return node
}

// Finalize drains the residual buffer as trailing content, including any
// partial delimiter, then resets session state. Further calls return nil
// until the session is used again.
func (c *Classifier) Finalize() []event.Event {
	var evs []event.Event
	if c.buf != "" {
		c.emitContent(&evs, c.buf, c.contentLevel())
	}
	c.Reset()
	return evs
}

// Reset returns the session to its initial empty state, keeping the tree
// for reuse across independent streams.
func (c *Classifier) Reset() {
	c.state = scanning
	c.buf = ""
	c.stack = nil
	c.invalidDepth = 0
}

// Depth returns the number of currently open recognized tags.
func (c *Classifier) Depth() int {
	return len(c.stack)
}

// InvalidDepth returns the count of currently open unrecognized tags.
func (c *Classifier) InvalidDepth() int {
	return c.invalidDepth
}

// CurrentPath returns the dot-joined names of the open recognized tags,
// outermost first ("" at top level).
func (c *Classifier) CurrentPath() string {
	names := make([]string, len(c.stack))
	for i, n := range c.stack {
		names[i] = n.Name
	}
	return strings.Join(names, ".")
}

// DescribeHierarchy renders the hierarchy tree for diagnostics.
func (c *Classifier) DescribeHierarchy() string {
	return c.tree.Describe()
}

// Tree returns the shared hierarchy tree.
func (c *Classifier) Tree() *hier.Tree {
	return c.tree
}

// contentLevel is one greater than the innermost open recognized tag's
// level, 0 with an empty stack.
func (c *Classifier) contentLevel() int {
	if len(c.stack) == 0 {
		return 0
	}
	return c.stack[len(c.stack)-1].Level + 1
}

func (c *Classifier) emitContent(evs *[]event.Event, text string, level int) {
	if text == "" {
		return
	}
	if c.opts.suppressWhitespace && strings.TrimSpace(text) == "" {
		return
	}
	*evs = append(*evs, event.ContentOf(text, level))
}
