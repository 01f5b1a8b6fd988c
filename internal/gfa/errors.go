package gfa

import "errors"

var (
	// ErrParse marks a path or walk step that cannot be decoded into an
	// oriented segment occurrence.
	ErrParse = errors.New("parse error")

	// ErrMalformedRecord marks a record line with fewer tab-delimited
	// fields than its schema requires.
	ErrMalformedRecord = errors.New("malformed record")
)
