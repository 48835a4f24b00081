// Package classify implements the context-aware streaming classifier.
//
// A Classifier consumes chunks of text in arrival order and emits
// structural events (tag-open, tag-close, content) against a declared tag
// hierarchy. Whether angle-bracket text is a genuine tag depends on the
// current parsing position: a tag is recognized only when it is a declared
// root at depth zero, or a declared direct child of the innermost open
// recognized tag. Everything else, including well-formed tags in the wrong
// position, degrades to content. There is no parse error.
//
// A Classifier holds only a small residual buffer between calls: at most
// an unresolved partial delimiter, never the whole stream. Input may be
// fragmented arbitrarily; feeding the same bytes in different chunkings
// yields the same event sequence after merging adjacent content events.
//
// # Example
//
//	c := classify.New(map[string][]string{"Action": {"Feature"}})
//	evs := c.ProcessChunk("<Action><Fea")
//	evs = append(evs, c.ProcessChunk("ture>ok</Feature></Action>")...)
//	evs = append(evs, c.Finalize()...)
//	// Start(Action,0) Start(Feature,1) Content("ok",2) End(Feature,1) End(Action,0)
//
// A Classifier is not safe for concurrent use; use one per stream. The
// underlying hier.Tree is immutable and may be shared.
package classify
