package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"

	"github.com/tinylz/pack"
	"github.com/tinylz/pack/internal/baseline"
	"github.com/tinylz/pack/lz77"
)

func twoArgs(c *cli.Context) (string, string, error) {
	if c.Args().Len() != 2 {
		return "", "", fmt.Errorf("%s: expected INPUT and OUTPUT, got %d arguments", c.Command.Name, c.Args().Len())
	}
	return c.Args().Get(0), c.Args().Get(1), nil
}

func compressFile(c *cli.Context) error {
	inPath, outPath, err := twoArgs(c)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	compressed, err := compress(data, c.Int("block-size"))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s: %d -> %d bytes\n", inPath, len(data), len(compressed))
	return os.WriteFile(outPath, compressed, 0o644)
}

// compress compresses data in one piece, or through a pack.Writer in blocks
// of blockSize bytes if blockSize is positive.
func compress(data []byte, blockSize int) ([]byte, error) {
	if blockSize <= 0 {
		return lz77.Compress(nil, data), nil
	}

	var buf bytes.Buffer
	w := lz77.NewWriter(&buf)
	w.BlockSize = blockSize
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompressFile(c *cli.Context) error {
	inPath, outPath, err := twoArgs(c)
	if err != nil {
		return err
	}
	compressed, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	data, err := lz77.Decompress(nil, compressed)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	return os.WriteFile(outPath, data, 0o644)
}

func dumpFiles(c *cli.Context) error {
	var result error
	for _, path := range c.Args().Slice() {
		if err := dump(c, path); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
		}
	}
	return result
}

func dump(c *cli.Context, path string) error {
	compressed, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tokens, err := lz77.Tokens(compressed)
	if err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "%s: %d tokens\n", path, len(tokens))

	if c.Bool("text") {
		data, err := lz77.Decompress(nil, compressed)
		if err != nil {
			return err
		}
		text := pack.TextEncoder{}.Encode(nil, data, lz77.Matches(nil, tokens), true)
		_, err = fmt.Fprintf(out, "%s\n", text)
		return err
	}

	pos := 0
	for _, t := range tokens {
		fmt.Fprintf(out, "%8d  %v\n", pos, t)
		pos += t.Size()
	}
	return nil
}

func statFiles(c *cli.Context) error {
	var result error
	for _, path := range c.Args().Slice() {
		data, err := os.ReadFile(path)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		r, err := baseline.Measure(data)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
			continue
		}
		fmt.Fprintf(c.App.Writer, "%s: lz77 ratio %.3f\n", path, r.Ratio(r.LZ77))
		pretty.Fprintf(c.App.Writer, "%# v\n", r)
	}
	return result
}
