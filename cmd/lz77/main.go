package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "lz77",
		Usage: "Compress files with a 2047-byte sliding window LZ77 format",
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Compress a file",
				ArgsUsage: "INPUT OUTPUT",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "block-size",
						Usage: "compress in blocks of this many bytes (0 compresses the whole file at once)",
					},
				},
				Action: compressFile,
			},
			{
				Name:      "decompress",
				Usage:     "Decompress a file",
				ArgsUsage: "INPUT OUTPUT",
				Action:    decompressFile,
			},
			{
				Name:      "dump",
				Usage:     "List the tokens in compressed files",
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "text",
						Usage: "print the decompressed text with <length,distance> in place of back-references",
					},
				},
				Action: dumpFiles,
			},
			{
				Name:      "stat",
				Usage:     "Compare the compressed size of files with other codecs",
				ArgsUsage: "FILE...",
				Action:    statFiles,
			},
		},
	}
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}
