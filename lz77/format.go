// Package lz77 implements a small LZ77 format with a 2047-byte window.
//
// A compressed stream is a plain sequence of tokens, with no header and no
// end marker. There are two kinds of token, told apart by the high bit of
// their first byte:
//
//	0LLLLLLL followed by L bytes            literal run of L bytes
//	1DDDDDDD DDDDMMMM                       copy M+1 bytes from D bytes back
//
// The 11-bit distance counts back from the end of the output produced so far.
// A copy may overlap the bytes it produces (distance < length), so it has to
// be done one byte at a time, in order.
package lz77

import "fmt"

const (
	// WindowSize is the largest distance a back-reference can encode.
	WindowSize = 1<<11 - 1

	// MinMatch is the shortest match worth encoding: a back-reference takes
	// two bytes.
	MinMatch = 3

	// MaxMatch is the longest back-reference a single token can encode.
	MaxMatch = 1 << 4

	// MaxLiteral is the longest literal run a single token can encode.
	MaxLiteral = 1<<7 - 1
)

const backReferenceTag = 0x80

// Kind identifies the variant of a Token.
type Kind uint8

const (
	Literal Kind = iota
	BackReference
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case BackReference:
		return "backref"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// A Token is one unit of a compressed stream. Literal is set for literal runs;
// Distance and Length are set for back-references.
type Token struct {
	Kind     Kind
	Literal  []byte
	Distance int
	Length   int
}

// Size returns the number of output bytes the token produces.
func (t Token) Size() int {
	if t.Kind == Literal {
		return len(t.Literal)
	}
	return t.Length
}

func (t Token) String() string {
	if t.Kind == Literal {
		return fmt.Sprintf("literal %q", t.Literal)
	}
	return fmt.Sprintf("backref <%d,%d>", t.Length, t.Distance)
}

// AppendLiteral appends a literal run token holding lit to dst.
// lit must be 1 to MaxLiteral bytes long.
func AppendLiteral(dst, lit []byte) []byte {
	if len(lit) < 1 || len(lit) > MaxLiteral {
		panic(fmt.Sprintf("lz77: literal run of %d bytes", len(lit)))
	}
	dst = append(dst, byte(len(lit)))
	return append(dst, lit...)
}

// AppendBackReference appends a back-reference token to dst.
// distance must be in [1, WindowSize] and length in [1, MaxMatch].
func AppendBackReference(dst []byte, distance, length int) []byte {
	if distance < 1 || distance > WindowSize {
		panic(fmt.Sprintf("lz77: back-reference distance %d out of range", distance))
	}
	if length < 1 || length > MaxMatch {
		panic(fmt.Sprintf("lz77: back-reference length %d out of range", length))
	}
	return append(dst,
		backReferenceTag|byte(distance>>4),
		byte(distance&0x0f)<<4|byte(length-1),
	)
}

// AppendToken appends the serialized form of t to dst.
func AppendToken(dst []byte, t Token) []byte {
	if t.Kind == Literal {
		return AppendLiteral(dst, t.Literal)
	}
	return AppendBackReference(dst, t.Distance, t.Length)
}

// readToken parses the token starting at src[p], returning it and the number
// of bytes it occupies. Literal points into src.
func readToken(src []byte, p int) (Token, int, error) {
	b := src[p]
	if b&backReferenceTag == 0 {
		n := int(b)
		if n > len(src)-p-1 {
			return Token{}, 0, fmt.Errorf("%w: %d bytes declared at offset %d, %d available", ErrTruncatedLiteral, n, p, len(src)-p-1)
		}
		return Token{Kind: Literal, Literal: src[p+1 : p+1+n]}, 1 + n, nil
	}

	if p+1 >= len(src) {
		return Token{}, 0, fmt.Errorf("%w: at offset %d", ErrMalformedStream, p)
	}
	b2 := src[p+1]
	return Token{
		Kind:     BackReference,
		Distance: int(b&0x7f)<<4 | int(b2>>4),
		Length:   int(b2&0x0f) + 1,
	}, 2, nil
}
