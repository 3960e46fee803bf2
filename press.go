// Package pack is a modular system for LZ77-style data compression.
//
// Compression is split into two steps:
//   - A MatchFinder looks for repeated sequences of bytes.
//   - An Encoder writes the literals and matches in some final format.
//
// Match is the intermediate representation passed between the two, so that
// match finders and encoders can be mixed and matched. The lz77 subpackage
// provides both halves for a compact format with a 2047-byte window.
package pack

// A Match is the basic unit of LZ77 compression.
type Match struct {
	Unmatched int // the number of unmatched bytes since the previous match
	Length    int // the number of bytes in the matched string; it may be 0 at the end of the input
	Distance  int // how far back in the stream to copy from
}

// A MatchFinder performs the LZ77 stage of compression, looking for matches.
type MatchFinder interface {
	// FindMatches looks for matches in src, appends them to dst, and returns dst.
	// A MatchFinder may remember src, and let matches found in later calls
	// refer back into it.
	FindMatches(dst []Match, src []byte) []Match

	// Reset clears any internal state, preparing the MatchFinder to be used with
	// a new stream.
	Reset()
}

// An Encoder encodes the data in its final format.
type Encoder interface {
	// Header appends the appropriate stream header to dst.
	Header(dst []byte) []byte

	// Encode appends the encoded format of src to dst, using the match
	// information from matches.
	Encode(dst []byte, src []byte, matches []Match, lastBlock bool) []byte

	// Reset clears any internal state, preparing the Encoder to be used with
	// a new stream.
	Reset()
}
