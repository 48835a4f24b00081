package classify

// Option configures a Classifier.
type Option func(*options)

type options struct {
	suppressWhitespace bool
}

// SuppressWhitespace drops Content events whose text is entirely
// whitespace. With this option the concatenated Content payloads no
// longer round-trip the input, and whitespace-only fragments that land on
// a chunk boundary are dropped where a different chunking would have kept
// them attached to adjacent text. The default emits everything verbatim.
func SuppressWhitespace() Option {
	return func(o *options) {
		o.suppressWhitespace = true
	}
}
