package lz77

import (
	"fmt"
	"io"

	"github.com/tinylz/pack"
)

// Decompress decodes the stream in src, appends the result to dst, and
// returns it. Back-references are resolved against the bytes this call
// produces, not against anything already in dst. If src is corrupt, the
// returned slice is nil.
func Decompress(dst, src []byte) ([]byte, error) {
	base := len(dst)
	out := dst

	for p := 0; p < len(src); {
		t, n, err := readToken(src, p)
		if err != nil {
			return nil, err
		}

		switch t.Kind {
		case Literal:
			out = append(out, t.Literal...)

		case BackReference:
			start := len(out) - t.Distance
			if t.Distance == 0 || start < base {
				return nil, fmt.Errorf("%w: distance %d at offset %d, with %d bytes of output", ErrInvalidBackReference, t.Distance, p, len(out)-base)
			}
			// The source and destination may overlap, so copy byte by byte.
			for i := 0; i < t.Length; i++ {
				out = append(out, out[start+i])
			}
		}
		p += n
	}

	return out, nil
}

// Tokens parses src into tokens, checking it the same way Decompress does,
// but without producing the output.
func Tokens(src []byte) ([]Token, error) {
	var tokens []Token
	produced := 0

	for p := 0; p < len(src); {
		t, n, err := readToken(src, p)
		if err != nil {
			return nil, err
		}
		if t.Kind == BackReference && (t.Distance == 0 || t.Distance > produced) {
			return nil, fmt.Errorf("%w: distance %d at offset %d, with %d bytes of output", ErrInvalidBackReference, t.Distance, p, produced)
		}
		produced += t.Size()
		tokens = append(tokens, t)
		p += n
	}

	return tokens, nil
}

// Matches converts a token stream to pack's intermediate representation,
// appending to dst. Consecutive literal runs are merged. Together with the
// decompressed data, the result can be fed to any pack.Encoder.
func Matches(dst []pack.Match, tokens []Token) []pack.Match {
	unmatched := 0
	for _, t := range tokens {
		switch t.Kind {
		case Literal:
			unmatched += len(t.Literal)
		case BackReference:
			dst = append(dst, pack.Match{
				Unmatched: unmatched,
				Length:    t.Length,
				Distance:  t.Distance,
			})
			unmatched = 0
		}
	}
	if unmatched > 0 {
		dst = append(dst, pack.Match{Unmatched: unmatched})
	}
	return dst
}

// A Reader decompresses an lz77 stream. The stream has no end marker, so the
// whole underlying reader is consumed and decoded on the first call to Read.
type Reader struct {
	src     io.Reader
	buf     []byte
	err     error
	decoded bool
}

// NewReader returns a Reader that decompresses the data read from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{src: r}
}

// Reset discards the Reader's state and makes it read from r.
func (r *Reader) Reset(src io.Reader) {
	*r = Reader{src: src, buf: r.buf[:0]}
}

func (r *Reader) Read(p []byte) (int, error) {
	if !r.decoded {
		r.decoded = true
		compressed, err := io.ReadAll(r.src)
		if err != nil {
			r.err = err
		} else {
			r.buf, r.err = Decompress(r.buf[:0], compressed)
		}
	}

	if len(r.buf) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		return 0, io.EOF
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}
