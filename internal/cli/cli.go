// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/i8080disasm/internal/options"
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	return parseArgs(os.Args)
}

func parseArgs(osArgs []string) (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(osArgs[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard) // parse errors are reported by UsageError
	var opts options.Program
	var baseAddress string
	readOptionFlags(flags, &opts, &baseAddress)

	disasmOptions := options.NewDisassembler()
	noHexComments, noOffsets := readDisasmOptionFlags(flags)

	if err := flags.Parse(osArgs[1:]); err != nil {
		usageErr := &UsageError{flags: flags}
		if !errors.Is(err, flag.ErrHelp) {
			usageErr.msg = err.Error()
		}
		return opts, options.Disassembler{}, usageErr
	}

	args := flags.Args()
	if len(args) == 0 && opts.Input == "" && opts.Batch == "" && !opts.Opcodes {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Disassembler{}, err
	}

	address, err := parseAddress(baseAddress)
	if err != nil {
		return opts, options.Disassembler{}, err
	}
	opts.BaseAddress = address

	if opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	// Apply inverse logic for hex comments and offsets
	disasmOptions.HexComments = !*noHexComments
	disasmOptions.OffsetComments = !*noOffsets

	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and the flag defaults to stdout.
func (e *UsageError) ShowUsage() {
	e.WriteUsage(os.Stdout)
}

// WriteUsage writes the error message, if any, the usage and the flag
// defaults to w.
func (e *UsageError) WriteUsage(w io.Writer) {
	if e.msg != "" {
		fmt.Fprintf(w, "%s\n\n", e.msg)
	}
	fmt.Fprintf(w, "usage: i8080disasm [options] <file to disassemble>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(w)
		e.flags.PrintDefaults()
	}
	fmt.Fprintln(w)
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// parseAddress parses a 16 bit hex address with optional 0x or $ prefix.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	s = strings.TrimPrefix(s, "$")

	value, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid base address '%s': %w", s, err)
	}
	return uint16(value), nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program, baseAddress *string) {
	flags.StringVar(&opts.Input, "i", "", "name of the input binary file")
	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .asm file naming, for example *.bin")
	flags.StringVar(baseAddress, "base", "0000", "hex address that the first byte of the file is loaded to")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Dump, "dump", false, "dump every decoded instruction to the debug log")
	flags.BoolVar(&opts.Opcodes, "opcodes", false, "print the opcode coverage map of the decoder and exit")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readDisasmOptionFlags(flags *flag.FlagSet) (noHexComments, noOffsets *bool) {
	noHexComments = flags.Bool("nohexcomments", false, "do not output opcode bytes as hex values in comments")
	noOffsets = flags.Bool("nooffsets", false, "do not output offsets in comments")
	return noHexComments, noOffsets
}
