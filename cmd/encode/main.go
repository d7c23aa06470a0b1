// encode converts a YAML or JSONC document into one of the binary or text
// encodings built on the encode package: BSON, JSON, CBOR or MessagePack.
// The result can be compressed, checksummed, hex-dumped, or only sized.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Altair-Bueno/encode"
	"github.com/Altair-Bueno/encode/compress"
	"github.com/Altair-Bueno/encode/digest"
	"github.com/Altair-Bueno/encode/examples/bson"
	"github.com/Altair-Bueno/encode/interop"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

// usageError is a problem with the command line rather than the input.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }
func (e *usageError) ExitCode() int { return 2 }

func usagef(format string, args ...any) error {
	return &usageError{fmt.Errorf(format, args...)}
}

type options struct {
	inputFormat string
	output      string
	compression string
	checksum    bool
	digest      bool
	hex         bool
	sizeOnly    bool
	verbose     bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.inputFormat, "input-format", "", "input format: yaml or jsonc (default: from the file extension, else yaml)")
	flagSet.StringVarP(&opts.output, "output", "o", "json", "output encoding: json, bson, cbor or msgpack")
	flagSet.StringVar(&opts.compression, "compress", "none", "compress the output: none, lz4 or zstd")
	flagSet.BoolVar(&opts.checksum, "checksum", false, "append the BLAKE3 digest of the output")
	flagSet.BoolVar(&opts.digest, "digest", false, "print only the BLAKE3 digest of the output, in hex")
	flagSet.BoolVar(&opts.hex, "hex", false, "print a hex dump instead of raw bytes")
	flagSet.BoolVar(&opts.sizeOnly, "size-only", false, "print only the encoded size in bytes")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug information to stderr")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet, stderr)
			return nil
		}
		return &usageError{err}
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet, stderr)
		return nil
	}

	rest := flagSet.Args()
	if len(rest) > 1 {
		return usagef("unexpected argument: %s", rest[1])
	}

	logger := newLogger(stderr, opts.verbose)
	defer logger.Sync()

	input, name, err := readInput(rest, stdin)
	if err != nil {
		return err
	}
	format, err := inputFormat(opts.inputFormat, name)
	if err != nil {
		return err
	}
	logger.Debug("read input", zap.String("source", name), zap.String("format", format), zap.Int("bytes", len(input)))

	doc, err := parse(input, format)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	value, err := buildOutput(doc, opts)
	if err != nil {
		return err
	}

	size, err := encode.SizeOf(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", opts.output, err)
	}
	logger.Debug("encoded size", zap.String("output", opts.output), zap.String("compress", opts.compression), zap.Int("bytes", size))

	switch {
	case opts.sizeOnly:
		_, err = fmt.Fprintln(stdout, size)
		return err
	case opts.digest:
		sum, err := digest.Of(value)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, sum)
		return err
	case opts.hex:
		dumper := hex.Dumper(stdout)
		if _, err := encode.WriteTo(value, dumper); err != nil {
			return err
		}
		return dumper.Close()
	}

	n, err := encode.WriteTo(value, stdout)
	if err != nil {
		return err
	}
	logger.Debug("wrote output", zap.Int64("bytes", n))
	if opts.output == "json" && opts.compression == "none" && !opts.checksum {
		_, err = io.WriteString(stdout, "\n")
	}
	return err
}

// buildOutput picks the encoding and wraps it in the requested layers.
func buildOutput(doc any, opts options) (encode.Encodable[encode.ByteDestination], error) {
	var value encode.Encodable[encode.ByteDestination]
	switch opts.output {
	case "json":
		v, err := toJSON(doc)
		if err != nil {
			return nil, err
		}
		value = encode.Widen(v)
	case "bson":
		d, err := toDocument(doc)
		if err != nil {
			return nil, err
		}
		value = encode.NewFromError[encode.ByteDestination](d, bson.NewError)
	case "cbor", "msgpack":
		v, err := interop.New(opts.output, doc)
		if err != nil {
			return nil, err
		}
		value = v
	default:
		return nil, usagef("unknown output encoding %q", opts.output)
	}

	tag, err := compress.ParseTag(opts.compression)
	if err != nil {
		return nil, &usageError{err}
	}
	if tag != compress.None {
		value = compress.New(value, tag)
	}
	if opts.checksum {
		value = digest.Checksummed{Inner: value}
	}
	return value, nil
}

func readInput(args []string, stdin io.Reader) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		return data, "stdin", err
	}
	data, err := os.ReadFile(args[0])
	return data, args[0], err
}

func inputFormat(flag, name string) (string, error) {
	if flag == "" {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".json", ".jsonc":
			return "jsonc", nil
		default:
			return "yaml", nil
		}
	}
	switch flag {
	case "yaml", "jsonc":
		return flag, nil
	case "yml":
		return "yaml", nil
	case "json":
		return "jsonc", nil
	}
	return "", usagef("unknown input format %q", flag)
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core).Named("encode")
}

func printHelp(flagSet *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `encode converts a YAML or JSONC document into BSON, JSON, CBOR or MessagePack.

The document is read from the file argument, or from stdin when no file
(or "-") is given. Map keys are written in sorted order, so the same input
always produces the same bytes.

Usage:
  encode [flags] [file]

Examples:
  # BSON as a hex dump
  echo 'hello: world' | encode --output bson --hex

  # Size of the zstd-compressed CBOR form of a config file
  encode --output cbor --compress zstd --size-only config.yaml

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
