// Command huffpack compresses or decompresses a single file with a Huffman
// code.
//
// Usage:
//
//     huffpack [-c | -d] [-t] [-p] [-v] [-o output] [input]
//
// Input defaults to stdin and output to stdout.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cespare/xxhash/v2"

	huffman "github.com/chronos-tachyon/huffpack"
)

type Mode uint8

const (
	CompressMode Mode = iota
	DecompressMode
)

type options struct {
	mode      Mode
	input     string
	output    string
	printTree bool
	verify    bool
	verbose   bool
}

var errUsage = errors.New("usage: huffpack [-c | -d] [-t] [-p] [-v] [-o output] [input]")

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("huffpack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	compressFlag := fs.Bool("c", false, "compress (default)")
	decompressFlag := fs.Bool("d", false, "decompress")
	fs.StringVar(&opts.output, "o", "", "write output to `file` instead of stdout")
	fs.BoolVar(&opts.printTree, "p", false, "print the code tree to stderr")
	fs.BoolVar(&opts.verify, "t", false, "verify the round trip before writing compressed output")
	fs.BoolVar(&opts.verbose, "v", false, "print statistics to stderr")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch {
	case *compressFlag && *decompressFlag:
		return opts, fmt.Errorf("-c and -d are mutually exclusive\n%w", errUsage)
	case *decompressFlag:
		opts.mode = DecompressMode
	default:
		opts.mode = CompressMode
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.input = fs.Arg(0)
	default:
		return opts, errUsage
	}
	return opts, nil
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func writeOutput(name string, stdout io.Writer, data []byte) error {
	if name == "" || name == "-" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(name, data, 0o644)
}

func run(opts options, stdin io.Reader, stdout, stderr io.Writer) error {
	in, err := readInput(opts.input, stdin)
	if err != nil {
		return err
	}

	var out []byte
	switch opts.mode {
	case CompressMode:
		out, err = compress(opts, in, stderr)
	case DecompressMode:
		out, err = decompress(opts, in, stderr)
	}
	if err != nil {
		return err
	}

	return writeOutput(opts.output, stdout, out)
}

func compress(opts options, in []byte, stderr io.Writer) ([]byte, error) {
	if opts.printTree {
		root, err := huffman.BuildTree(huffman.CountFrequencies(in))
		if err != nil {
			return nil, err
		}
		if _, err := huffman.DumpTree(stderr, root); err != nil {
			return nil, err
		}
	}

	blob, err := huffman.Compress(in)
	if err != nil {
		return nil, err
	}

	if opts.verify {
		back, err := huffman.Decompress(blob)
		if err != nil {
			return nil, fmt.Errorf("verify: %w", err)
		}
		if a, b := xxhash.Sum64(in), xxhash.Sum64(back); a != b || !bytes.Equal(in, back) {
			return nil, fmt.Errorf("verify: round trip mismatch: xxh64 %016x != %016x", a, b)
		}
	}

	if opts.verbose {
		if err := printStats(stderr, blob, in); err != nil {
			return nil, err
		}
	}
	return blob, nil
}

func decompress(opts options, in []byte, stderr io.Writer) ([]byte, error) {
	if opts.printTree {
		var c huffman.Container
		if err := c.UnmarshalBinary(in); err != nil {
			return nil, err
		}
		root, err := huffman.DeserializeTree(c.TreeData)
		if err != nil {
			return nil, err
		}
		if _, err := huffman.DumpTree(stderr, root); err != nil {
			return nil, err
		}
	}

	out, err := huffman.Decompress(in)
	if err != nil {
		return nil, err
	}

	if opts.verbose {
		if err := printStats(stderr, in, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func printStats(w io.Writer, blob []byte, original []byte) error {
	stats, err := huffman.Inspect(blob)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%v, xxh64 %016x\n", stats, xxhash.Sum64(original))
	return err
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffpack: ")

	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := run(opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}
