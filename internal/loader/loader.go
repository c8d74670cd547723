// Package loader handles code file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/i8080disasm/internal/options"
)

// AddressSpace is the number of bytes addressable by the 8080.
const AddressSpace = 1 << 16

// ErrCodeTooLarge is returned when the loaded code does not fit into the
// address space at the requested base address.
var ErrCodeTooLarge = errors.New("code exceeds the address space")

// Loader handles loading raw machine code files from disk.
type Loader struct{}

// New creates a new code loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the input file of the options as raw machine code that is
// loaded to the base address of the options.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	return l.LoadReader(file, opts.BaseAddress)
}

// LoadReader reads raw machine code from a reader. Reading stops with an
// error as soon as the code would not fit between the base address and the
// end of the address space.
func (l *Loader) LoadReader(reader io.Reader, baseAddress uint16) ([]byte, error) {
	limit := int64(AddressSpace - int(baseAddress))
	code, err := io.ReadAll(io.LimitReader(reader, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading code: %w", err)
	}
	if int64(len(code)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes at base address $%04X",
			ErrCodeTooLarge, limit, baseAddress)
	}
	return code, nil
}
