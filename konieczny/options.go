package konieczny

import "io"

// Options configures an Engine at construction time.
type Options struct {
	// Report, if non-nil, receives one line per discovered D-class.
	Report io.Writer
}

// Option mutates an Options in place.
type Option func(*Options)

// DefaultOptions returns the zero-value configuration: no reporting.
func DefaultOptions() Options {
	return Options{}
}

// WithReport enables a one-line-per-class progress report to w.
func WithReport(w io.Writer) Option {
	return func(o *Options) { o.Report = w }
}
