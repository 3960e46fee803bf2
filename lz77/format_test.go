package lz77

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendBackReference(t *testing.T) {
	tests := []struct {
		distance, length int
		want             []byte
	}{
		{1, 1, []byte{0x80, 0x10}},
		{1, 9, []byte{0x80, 0x18}},
		{3, 16, []byte{0x80, 0x3f}},
		{16, 3, []byte{0x81, 0x02}},
		{0x5a5, 7, []byte{0x80 | 0x5a, 0x56}},
		{WindowSize, MaxMatch, []byte{0xff, 0xff}},
	}
	for _, tt := range tests {
		got := AppendBackReference(nil, tt.distance, tt.length)
		assert.Equal(t, tt.want, got, "distance %d, length %d", tt.distance, tt.length)

		tok, n, err := readToken(got, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, Token{Kind: BackReference, Distance: tt.distance, Length: tt.length}, tok)
	}
}

func TestAppendLiteral(t *testing.T) {
	got := AppendLiteral([]byte{0xee}, []byte("xyz"))
	assert.Equal(t, []byte{0xee, 3, 'x', 'y', 'z'}, got)

	tok, n, err := readToken(got, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, Literal, tok.Kind)
	assert.Equal(t, []byte("xyz"), tok.Literal)
}

func TestAppendTokenOutOfRange(t *testing.T) {
	assert.Panics(t, func() { AppendLiteral(nil, nil) })
	assert.Panics(t, func() { AppendLiteral(nil, make([]byte, MaxLiteral+1)) })
	assert.Panics(t, func() { AppendBackReference(nil, 0, 3) })
	assert.Panics(t, func() { AppendBackReference(nil, WindowSize+1, 3) })
	assert.Panics(t, func() { AppendBackReference(nil, 1, 0) })
	assert.Panics(t, func() { AppendBackReference(nil, 1, MaxMatch+1) })
	assert.NotPanics(t, func() { AppendLiteral(nil, make([]byte, MaxLiteral)) })
}

func TestAppendToken(t *testing.T) {
	var stream []byte
	stream = AppendToken(stream, Token{Kind: Literal, Literal: []byte("ab")})
	stream = AppendToken(stream, Token{Kind: BackReference, Distance: 2, Length: 4})
	assert.Equal(t, []byte{2, 'a', 'b', 0x80, 0x23}, stream)

	got, err := Decompress(nil, stream)
	require.NoError(t, err)
	assert.Equal(t, []byte("ababab"), got)
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, `literal "hi"`, Token{Kind: Literal, Literal: []byte("hi")}.String())
	assert.Equal(t, "backref <4,2>", Token{Kind: BackReference, Distance: 2, Length: 4}.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
