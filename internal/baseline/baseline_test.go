package baseline

import (
	"bytes"
	"testing"

	"github.com/pierrec/xxHash/xxHash32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinylz/pack/lz77"
)

func TestMeasure(t *testing.T) {
	data := bytes.Repeat([]byte("Hello, world! "), 200)

	r, err := Measure(data)
	require.NoError(t, err)

	assert.Equal(t, len(data), r.Size)
	assert.Equal(t, xxHash32.Checksum(data, 0), r.XXH32)
	assert.Equal(t, len(lz77.Compress(nil, data)), r.LZ77)
	for name, size := range map[string]int{
		"lz77":   r.LZ77,
		"snappy": r.Snappy,
		"lz4":    r.LZ4,
		"flate":  r.Flate,
		"zstd":   r.Zstd,
		"brotli": r.Brotli,
	} {
		assert.Greater(t, size, 0, name)
		assert.Less(t, size, len(data), name)
	}
	assert.Greater(t, r.Ratio(r.LZ77), 1.0)
}

func TestMeasureEmpty(t *testing.T) {
	r, err := Measure(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Size)
	assert.Equal(t, 0, r.LZ77)
	assert.Equal(t, 0.0, r.Ratio(r.LZ77))
}
