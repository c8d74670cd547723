// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/i8080disasm/internal/listing"
	"github.com/retroenv/i8080disasm/internal/loader"
	"github.com/retroenv/i8080disasm/internal/opcodemap"
	"github.com/retroenv/i8080disasm/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ErrNoFilesMatched is returned when a batch pattern does not match any file.
var ErrNoFilesMatched = errors.New("no files match batch pattern")

// ProcessFile disassembles the input file of the options and writes the
// listing to the output file or stdout.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, disasmOptions options.Disassembler) error {
	code, err := loader.New().Load(opts)
	if err != nil {
		return fmt.Errorf("loading code: %w", err)
	}

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if writer != os.Stdout {
			_ = writer.Close()
		}
	}()

	l := listing.New(logger, options.Listing(opts, disasmOptions))
	stats, err := l.Write(ctx, writer, code)
	if err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}

	logger.Info("Disassembled file",
		log.String("input", opts.Input),
		log.Int("instructions", stats.Instructions),
		log.Int("data_bytes", stats.DataBytes))
	return nil
}

// PrintOpcodes writes the opcode coverage map of the decoder families.
func PrintOpcodes(w io.Writer) error {
	m := opcodemap.Build()
	if err := m.Write(w); err != nil {
		return fmt.Errorf("writing opcode map: %w", err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoFilesMatched, opts.Batch)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".asm"
}

func createWriter(opts options.Program) (*os.File, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	fmt.Println("[--------------------------------------------]")
	fmt.Println("[ i8080disasm - Intel 8080 code disassembler ]")
	fmt.Printf("[--------------------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}
