package pack

import (
	"errors"
	"io"
)

// DefaultBlockSize is the block size a Writer uses when BlockSize is 0.
const DefaultBlockSize = 1 << 16

// A Writer is an io.WriteCloser that compresses what is written to it and
// sends the result to Dest. Data is collected into blocks of BlockSize bytes;
// each block goes through MatchFinder and then Encoder.
type Writer struct {
	Dest        io.Writer
	MatchFinder MatchFinder
	Encoder     Encoder
	BlockSize   int

	inBuf       []byte
	outBuf      []byte
	matches     []Match
	wroteHeader bool
	err         error
}

var errClosed = errors.New("pack: write to closed Writer")

func (w *Writer) blockSize() int {
	if w.BlockSize <= 0 {
		return DefaultBlockSize
	}
	return w.BlockSize
}

// Write buffers p, compressing and writing a block to Dest every time a
// full block is available and more data follows it.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	size := w.blockSize()
	if w.inBuf == nil {
		w.inBuf = make([]byte, 0, size)
	}

	for len(p) > 0 {
		if len(w.inBuf) == size {
			// The final block is only written by Close, so that the Encoder
			// knows which block is the last one.
			if err := w.writeBlock(false); err != nil {
				return n, err
			}
		}
		k := size - len(w.inBuf)
		if k > len(p) {
			k = len(p)
		}
		w.inBuf = append(w.inBuf, p[:k]...)
		p = p[k:]
		n += k
	}
	return n, nil
}

// Close compresses and writes whatever is left in the buffer as the last
// block. It does not close Dest.
func (w *Writer) Close() error {
	if w.err != nil {
		if w.err == errClosed {
			return nil
		}
		return w.err
	}
	if err := w.writeBlock(true); err != nil {
		return err
	}
	w.err = errClosed
	return nil
}

// Reset discards the Writer's state and makes it write to newDest, as if it
// had just been created.
func (w *Writer) Reset(newDest io.Writer) {
	w.Dest = newDest
	w.inBuf = w.inBuf[:0]
	w.wroteHeader = false
	w.err = nil
	w.MatchFinder.Reset()
	w.Encoder.Reset()
}

func (w *Writer) writeBlock(lastBlock bool) error {
	w.outBuf = w.outBuf[:0]
	if !w.wroteHeader {
		w.outBuf = w.Encoder.Header(w.outBuf)
		w.wroteHeader = true
	}

	if len(w.inBuf) > 0 {
		w.matches = w.MatchFinder.FindMatches(w.matches[:0], w.inBuf)
	} else {
		w.matches = w.matches[:0]
	}
	w.outBuf = w.Encoder.Encode(w.outBuf, w.inBuf, w.matches, lastBlock)
	w.inBuf = w.inBuf[:0]

	if len(w.outBuf) == 0 {
		return nil
	}
	if _, err := w.Dest.Write(w.outBuf); err != nil {
		w.err = err
		return err
	}
	return nil
}
