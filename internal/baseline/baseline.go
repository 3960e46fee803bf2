// Package baseline measures how other LZ77-family codecs do on the same input
// as the lz77 format, for the stat command.
package baseline

import (
	"bytes"
	"fmt"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pierrec/xxHash/xxHash32"

	"github.com/tinylz/pack/lz77"
)

// A Report holds the compressed size of one input under each codec.
type Report struct {
	Size   int
	XXH32  uint32
	LZ77   int
	Snappy int
	LZ4    int
	Flate  int
	Zstd   int
	Brotli int
}

// Ratio returns size/compressed, or 0 if compressed is 0.
func (r Report) Ratio(compressed int) float64 {
	if compressed == 0 {
		return 0
	}
	return float64(r.Size) / float64(compressed)
}

// Measure compresses data with every codec and reports the sizes.
func Measure(data []byte) (Report, error) {
	r := Report{
		Size:   len(data),
		XXH32:  xxHash32.Checksum(data, 0),
		LZ77:   len(lz77.Compress(nil, data)),
		Snappy: len(snappy.Encode(nil, data)),
	}

	var err error
	if r.LZ4, err = lz4Size(data); err != nil {
		return r, fmt.Errorf("lz4: %w", err)
	}
	if r.Flate, err = flateSize(data); err != nil {
		return r, fmt.Errorf("flate: %w", err)
	}
	if r.Zstd, err = zstdSize(data); err != nil {
		return r, fmt.Errorf("zstd: %w", err)
	}
	if r.Brotli, err = brotliSize(data); err != nil {
		return r, fmt.Errorf("brotli: %w", err)
	}
	return r, nil
}

func lz4Size(data []byte) (int, error) {
	buf := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, buf, nil)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		// Incompressible; LZ4 would store the block as is.
		n = len(data)
	}
	return n, nil
}

func flateSize(data []byte) (int, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(data); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func zstdSize(data []byte) (int, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return 0, err
	}
	defer enc.Close()
	return len(enc.EncodeAll(data, nil)), nil
}

func brotliSize(data []byte) (int, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.BestCompression)
	if _, err := w.Write(data); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}
