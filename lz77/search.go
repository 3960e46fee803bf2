package lz77

import (
	"encoding/binary"
	"math/bits"

	"github.com/tinylz/pack"
)

// FindMatch finds the longest back-reference for the bytes at src[pos:],
// looking back at most WindowSize bytes. The match is at most MaxMatch bytes
// long and cannot run past the end of src, but it may overlap the bytes it
// describes. If several window positions give a match of the same length,
// the closest one is returned. If there is no match of at least MinMatch
// bytes, length is 0.
func FindMatch(src []byte, pos int) (distance, length int) {
	end := pos + MaxMatch
	if end > len(src) {
		end = len(src)
	}
	if end-pos < MinMatch {
		return 0, 0
	}
	return findMatch(src[:end], pos)
}

// findMatch is FindMatch with src already trimmed to the longest allowed
// match end.
func findMatch(src []byte, pos int) (distance, length int) {
	maxLength := len(src) - pos
	oldest := pos - WindowSize
	if oldest < 0 {
		oldest = 0
	}

	// Scanning from the nearest candidate outward, and only replacing the
	// best match with a strictly longer one, keeps the smallest distance
	// among equally long matches.
	for candidate := pos - 1; candidate >= oldest; candidate-- {
		if src[candidate] != src[pos] {
			continue
		}
		n := extendMatch(src, candidate+1, pos+1) - pos
		if n > length {
			distance, length = pos-candidate, n
			if n == maxLength {
				break
			}
		}
	}

	if length < MinMatch {
		return 0, 0
	}
	return distance, length
}

// extendMatch returns the largest k such that k <= len(src) and that
// src[i:i+k-j] and src[j:k] have the same contents.
//
// It assumes that:
//
//	0 <= i && i < j && j <= len(src)
func extendMatch(src []byte, i, j int) int {
	// Compare 8 bytes at a time while there is room. XOR-ing the two words
	// and counting trailing zeros gives the first differing byte.
	for j+8 <= len(src) {
		iBytes := binary.LittleEndian.Uint64(src[i:])
		jBytes := binary.LittleEndian.Uint64(src[j:])
		if iBytes != jBytes {
			return j + bits.TrailingZeros64(iBytes^jBytes)>>3
		}
		i, j = i+8, j+8
	}
	for ; j < len(src) && src[i] == src[j]; i, j = i+1, j+1 {
	}
	return j
}

// WindowSearch is an implementation of the pack.MatchFinder interface that
// searches the whole window for the longest match at each position, as
// FindMatch does. It keeps the last WindowSize bytes from previous calls to
// FindMatches, so a stream compressed in blocks can refer back across block
// boundaries.
type WindowSearch struct {
	// Parser chooses which matches to use.
	// The default is a pack.GreedyParser with MinLength set to MinMatch.
	Parser pack.Parser

	history []byte
}

func (w *WindowSearch) Reset() {
	w.history = w.history[:0]
}

// FindMatches looks for matches in src, appends them to dst, and returns dst.
func (w *WindowSearch) FindMatches(dst []pack.Match, src []byte) []pack.Match {
	if w.Parser == nil {
		w.Parser = &pack.GreedyParser{MinLength: MinMatch}
	}

	if len(w.history) > WindowSize {
		// Only the last WindowSize bytes can be referenced.
		delta := len(w.history) - WindowSize
		copy(w.history, w.history[delta:])
		w.history = w.history[:WindowSize]
	}

	start := len(w.history)
	w.history = append(w.history, src...)

	return w.Parser.Parse(dst, w, start, len(w.history))
}

// Search implements pack.Searcher. It appends at most one match, starting at
// pos and ending no later than max.
func (w *WindowSearch) Search(dst []pack.AbsoluteMatch, pos, min, max int) []pack.AbsoluteMatch {
	end := pos + MaxMatch
	if end > max {
		end = max
	}
	if end-pos < MinMatch {
		return dst
	}

	distance, length := findMatch(w.history[:end], pos)
	if length == 0 {
		return dst
	}
	return append(dst, pack.AbsoluteMatch{
		Start: pos,
		End:   pos + length,
		Match: pos - distance,
	})
}
