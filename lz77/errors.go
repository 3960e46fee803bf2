package lz77

import "errors"

// Errors returned when decoding a corrupt stream. They are wrapped with the
// offset where the problem was found; use errors.Is to check for them.
var (
	// ErrTruncatedLiteral means a literal run extends past the end of the stream.
	ErrTruncatedLiteral = errors.New("lz77: truncated literal run")

	// ErrMalformedStream means the stream ends after the first byte of a
	// back-reference.
	ErrMalformedStream = errors.New("lz77: malformed stream")

	// ErrInvalidBackReference means a back-reference points before the start
	// of the output.
	ErrInvalidBackReference = errors.New("lz77: invalid back-reference")
)
