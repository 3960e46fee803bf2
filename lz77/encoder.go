package lz77

import (
	"io"

	"github.com/tinylz/pack"
)

// Encoder implements the pack.Encoder interface, writing the lz77 token
// format. The format has no header or trailer, so blocks are simply
// concatenated.
type Encoder struct{}

func (Encoder) Header(dst []byte) []byte { return dst }

func (Encoder) Reset() {}

// Encode appends the tokens for src to dst. Unmatched bytes are written as
// literal runs of at most MaxLiteral bytes. Matches longer than MaxMatch are
// split into several back-references with the same distance; a match
// distance beyond WindowSize is a bug in the MatchFinder, and panics.
func (Encoder) Encode(dst []byte, src []byte, matches []pack.Match, lastBlock bool) []byte {
	pos := 0
	for _, m := range matches {
		if m.Unmatched > 0 {
			dst = appendLiterals(dst, src[pos:pos+m.Unmatched])
			pos += m.Unmatched
		}
		if m.Length > 0 {
			dst = appendCopy(dst, m.Distance, m.Length)
			pos += m.Length
		}
	}
	if pos < len(src) {
		dst = appendLiterals(dst, src[pos:])
	}
	return dst
}

func appendLiterals(dst, lit []byte) []byte {
	for len(lit) > MaxLiteral {
		dst = AppendLiteral(dst, lit[:MaxLiteral])
		lit = lit[MaxLiteral:]
	}
	if len(lit) > 0 {
		dst = AppendLiteral(dst, lit)
	}
	return dst
}

func appendCopy(dst []byte, distance, length int) []byte {
	for length > MaxMatch {
		dst = AppendBackReference(dst, distance, MaxMatch)
		length -= MaxMatch
	}
	return AppendBackReference(dst, distance, length)
}

// Compress appends the compressed form of src to dst and returns it.
// The result depends only on src.
func Compress(dst, src []byte) []byte {
	var mf WindowSearch
	matches := mf.FindMatches(nil, src)
	return Encoder{}.Encode(dst, src, matches, true)
}

// NewWriter returns a pack.Writer that compresses to dst in 64 KiB blocks.
// Back-references may reach into the previous block, so the output decodes
// as one stream.
func NewWriter(dst io.Writer) *pack.Writer {
	return &pack.Writer{
		Dest:        dst,
		MatchFinder: &WindowSearch{},
		Encoder:     Encoder{},
		BlockSize:   pack.DefaultBlockSize,
	}
}
