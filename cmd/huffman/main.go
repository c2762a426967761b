// Command huffman compresses and decompresses files with a static
// byte-oriented Huffman code.
//
// Usage:
//
//	huffman encode [-o output] input
//	huffman decode [-o output] input
//
// Encode writes input.huff unless -o is given; decode strips the .huff
// suffix unless -o is given.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chronos-tachyon/huffio"
)

const usage = "usage: huffman <encode|decode> [-o output] <input>"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "huffman:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return errors.New(usage)
	}
	verb := args[0]

	fs := flag.NewFlagSet("huffman "+verb, flag.ContinueOnError)
	output := fs.String("o", "", "path of the output file")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New(usage)
	}
	input := fs.Arg(0)

	switch verb {
	case "encode":
		if *output == "" {
			*output = input + ".huff"
		}
		return encodeFile(input, *output)
	case "decode":
		if *output == "" {
			if !strings.HasSuffix(input, ".huff") {
				return fmt.Errorf("cannot infer an output name from %q; use -o", input)
			}
			*output = strings.TrimSuffix(input, ".huff")
		}
		return decodeFile(input, *output)
	default:
		return fmt.Errorf("unknown command %q; %s", verb, usage)
	}
}

func encodeFile(inputPath string, outputPath string) error {
	return transformFile(inputPath, outputPath, func(dst io.Writer, src *os.File) error {
		return huffio.Encode(dst, src)
	})
}

func decodeFile(inputPath string, outputPath string) error {
	return transformFile(inputPath, outputPath, func(dst io.Writer, src *os.File) error {
		return huffio.Decode(dst, src)
	})
}

func transformFile(inputPath string, outputPath string, transform func(io.Writer, *os.File) error) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(out)
	if err := transform(bw, in); err != nil {
		out.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
