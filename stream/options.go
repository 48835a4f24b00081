package stream

import "github.com/cxy13h/xml-parser/classify"

// Option configures a Source.
type Option func(*sourceOpts)

type sourceOpts struct {
	chunkSize    int
	classifyOpts []classify.Option
}

// WithChunkSize sets the read chunk size (default 4096).
func WithChunkSize(n int) Option {
	return func(o *sourceOpts) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// WithClassifyOptions passes options through to the underlying classifier.
func WithClassifyOptions(opts ...classify.Option) Option {
	return func(o *sourceOpts) {
		o.classifyOpts = append(o.classifyOpts, opts...)
	}
}
