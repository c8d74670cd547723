// Package main implements a disassembler for Intel 8080 machine code
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/i8080disasm/internal/cli"
	"github.com/retroenv/i8080disasm/internal/config"
	"github.com/retroenv/i8080disasm/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, disasmOptions, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Flags)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Error("Parsing arguments failed", log.Err(err))
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Flags)

	if opts.Opcodes {
		if err := fileprocessor.PrintOpcodes(os.Stdout); err != nil {
			logger.Fatal("Printing opcode map failed", log.Err(err))
		}
		return
	}

	// the listing is written to stdout if no output file is given
	if opts.Output != "" || opts.Batch != "" {
		fileprocessor.PrintBanner(opts, version, commit, date)
	}

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		if errors.Is(err, fileprocessor.ErrNoFilesMatched) {
			logger.Warn("Nothing to disassemble", log.String("batch", opts.Batch))
			return
		}
		logger.Fatal("Getting files to process failed", log.Err(err))
	}

	failed := false
	for _, file := range files {
		opts.Input = file
		if opts.Batch != "" {
			opts.Output = fileprocessor.GenerateOutputFilename(file)
		}

		if err := fileprocessor.ProcessFile(ctx, logger, opts, disasmOptions); err != nil {
			// Handle context cancellation (Ctrl+C) gracefully
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				return
			}
			logger.Error("Disassembling failed", log.String("file", file), log.Err(err))
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
