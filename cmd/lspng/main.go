// lspng lists the chunks of a PNG file and checks their CRCs.
//
// The file is read into memory and split into chunks without decoding any
// image data. Each chunk's CRC is recomputed and compared with the value
// stored in the file. The exit status is 2 when a mismatch is found or
// the file ends inside a chunk.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/ysh86/lspng/png"
)

// exitError carries a process exit status without a message.
type exitError int

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", int(e)) }
func (e exitError) ExitCode() int { return int(e) }

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		format  string
		verbose bool
	)

	flagSet := pflag.NewFlagSet("lspng", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&format, "format", "text", "output format: text or yaml")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log every chunk to stderr")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}

	var write func(io.Writer, *report) error
	switch format {
	case "text":
		write = writeText
	case "yaml":
		write = writeYAML
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if flagSet.NArg() != 1 {
		printHelp(stderr, flagSet)
		return exitError(1)
	}
	srcFile := flagSet.Arg(0)

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	buf, err := os.ReadFile(srcFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcFile, err)
	}

	r, err := inspect(logger, srcFile, buf)
	if err != nil {
		return err
	}
	if err := write(stdout, r); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if r.Mismatches > 0 || r.Truncated {
		return exitError(2)
	}
	return nil
}

// inspect walks every chunk of buf and compares declared and computed CRCs.
func inspect(logger *slog.Logger, name string, buf []byte) (*report, error) {
	it, err := png.NewChunkIter(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	r := &report{File: name, Size: len(buf)}
	for c := range it.All() {
		e := newEntry(c)
		logger.Debug("chunk",
			"type", e.Type,
			"offset", c.Offset,
			"length", c.Length,
			"crc", e.CRC)
		if !e.Valid {
			r.Mismatches++
			logger.Warn("crc mismatch",
				"type", e.Type,
				"offset", c.Offset,
				"declared", e.CRC,
				"computed", e.Computed)
		}
		r.Chunks = append(r.Chunks, e)
	}

	if err := it.Err(); err != nil {
		r.Truncated = true
		logger.Warn("datastream ends inside a chunk",
			"offset", len(buf)-it.Remaining(),
			"remaining", it.Remaining())
	}
	if n := len(r.Chunks); n == 0 || r.Chunks[n-1].Type != "IEND" {
		logger.Warn("no IEND chunk at end of datastream")
	}

	return r, nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `lspng lists the chunks of a PNG file and verifies their CRCs.

Usage:
  lspng [flags] FILE

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
