package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextEncoder(t *testing.T) {
	src := []byte("ABCABCABCABCABCABCABCABCABCABC!")
	matches := []Match{
		{Unmatched: 3, Length: 16, Distance: 3},
		{Length: 11, Distance: 3},
	}
	var e TextEncoder
	got := e.Encode(e.Header(nil), src, matches, true)
	assert.Equal(t, "ABC<16,3><11,3>!", string(got))
}
