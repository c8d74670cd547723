// Package options contains the program options.
package options

import "github.com/retroenv/i8080disasm/internal/listing"

// Parameters contains file path options.
type Parameters struct {
	Input  string // input binary file
	Output string // output .asm file, stdout if empty
	Batch  string // batch process files matching a glob pattern
}

// Flags contains behavior options.
type Flags struct {
	BaseAddress uint16 // load address of the first input byte
	Debug       bool   // enable debug logging
	Dump        bool   // dump decoded instructions to the debug log
	Opcodes     bool   // print the opcode coverage map instead of disassembling
	Quiet       bool   // quiet mode
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
}

// Disassembler defines options to control the listing output.
type Disassembler struct {
	HexComments    bool
	OffsetComments bool
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		HexComments:    true,
		OffsetComments: true,
	}
}

// Listing returns the listing options for the program and disassembler options.
func Listing(opts Program, disasmOptions Disassembler) listing.Options {
	return listing.Options{
		BaseAddress:    opts.BaseAddress,
		HexComments:    disasmOptions.HexComments,
		OffsetComments: disasmOptions.OffsetComments,
		Dump:           opts.Dump,
	}
}
