// Package listing implements a linear sweep disassembly listing of 8080
// machine code.
package listing

import (
	"context"
	"fmt"
	"hash/crc32"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/retroenv/i8080disasm/internal/i8080"
	"github.com/retroenv/retrogolib/log"
)

const dataBytesPerLine = 16

// Options of the listing.
type Options struct {
	BaseAddress    uint16 // address that the first byte of code is loaded to
	HexComments    bool   // output instruction bytes as hex values in comments
	OffsetComments bool   // output addresses in comments
	Dump           bool   // dump every decoded instruction to the debug log
}

// Stats summarizes a written listing.
type Stats struct {
	Instructions int
	DataBytes    int
}

// Listing writes decoded instructions of a code buffer. Bytes that do not
// decode to an instruction are output as data and decoding resumes at the
// following byte.
type Listing struct {
	logger  *log.Logger
	options Options
	dumper  *spew.ConfigState
}

// New returns a new listing writer.
func New(logger *log.Logger, options Options) *Listing {
	return &Listing{
		logger:  logger,
		options: options,
		dumper: &spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		},
	}
}

// Write decodes code from start to end and writes one line per instruction
// or data line to w.
func (l *Listing) Write(ctx context.Context, w io.Writer, code []byte) (Stats, error) {
	var stats Stats
	if err := l.writeHeader(w, code); err != nil {
		return stats, err
	}

	var pending []byte // undecodable bytes that are not written yet
	pendingOffset := 0

	for offset := 0; offset < len(code); {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("writing listing: %w", err)
		}

		ins, ok := l.decode(code, offset)
		if !ok {
			if len(pending) == 0 {
				pendingOffset = offset
			}
			pending = append(pending, code[offset])
			offset++
			continue
		}

		if err := l.writeData(w, pendingOffset, pending); err != nil {
			return stats, err
		}
		stats.DataBytes += len(pending)
		pending = pending[:0]

		size := ins.Size()
		if err := l.writeCode(w, offset, ins, code[offset:offset+size]); err != nil {
			return stats, err
		}
		stats.Instructions++
		offset += size
	}

	if err := l.writeData(w, pendingOffset, pending); err != nil {
		return stats, err
	}
	stats.DataBytes += len(pending)
	return stats, nil
}

// decode returns the instruction at offset if it is decodable and fully
// contained in code.
func (l *Listing) decode(code []byte, offset int) (i8080.Instruction, bool) {
	address := l.address(offset)

	ins, err := i8080.DecodeAt(code, offset)
	if err != nil {
		l.logger.Debug("Undecodable byte",
			log.Hex("address", address),
			log.Err(err))
		return nil, false
	}
	if offset+ins.Size() > len(code) {
		l.logger.Debug("Instruction truncated by end of code",
			log.Hex("address", address),
			log.String("instruction", ins.Name()))
		return nil, false
	}

	if l.options.Dump {
		l.logger.Debug("Decoded instruction",
			log.Hex("address", address),
			log.String("dump", strings.TrimSpace(l.dumper.Sdump(ins))))
	}
	return ins, true
}

func (l *Listing) address(offset int) uint16 {
	return l.options.BaseAddress + uint16(offset)
}

// writeHeader writes the CRC32 checksum and base address as comments.
func (l *Listing) writeHeader(w io.Writer, code []byte) error {
	if _, err := fmt.Fprintf(w, "; CRC32 checksum: %08x\n", crc32.ChecksumIEEE(code)); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w, "; Code base address: $%04x\n\n", l.options.BaseAddress); err != nil {
		return fmt.Errorf("writing code base address: %w", err)
	}
	if _, err := fmt.Fprintf(w, ".org $%04X\n\n", l.options.BaseAddress); err != nil {
		return fmt.Errorf("writing origin: %w", err)
	}
	return nil
}

func (l *Listing) writeCode(w io.Writer, offset int, ins i8080.Instruction, data []byte) error {
	comment := l.comment(offset, data)
	if comment == "" {
		if _, err := fmt.Fprintf(w, "  %s\n", ins); err != nil {
			return fmt.Errorf("writing code line: %w", err)
		}
		return nil
	}
	if _, err := fmt.Fprintf(w, "  %-30s ; %s\n", ins, comment); err != nil {
		return fmt.Errorf("writing code line: %w", err)
	}
	return nil
}

// writeData bundles data bytes to dataBytesPerLine bytes per line.
func (l *Listing) writeData(w io.Writer, offset int, data []byte) error {
	for i := 0; i < len(data); i += dataBytesPerLine {
		toWrite := min(len(data)-i, dataBytesPerLine)

		buf := &strings.Builder{}
		buf.WriteString(".byte ")
		for j := range toWrite {
			fmt.Fprintf(buf, "$%02x, ", data[i+j])
		}
		line := strings.TrimRight(buf.String(), ", ")

		var err error
		if l.options.OffsetComments {
			_, err = fmt.Fprintf(w, "  %-30s ; $%04X\n", line, l.address(offset+i))
		} else {
			_, err = fmt.Fprintf(w, "  %s\n", line)
		}
		if err != nil {
			return fmt.Errorf("writing data line: %w", err)
		}
	}
	return nil
}

// comment returns the address and hex byte comment of a code line.
func (l *Listing) comment(offset int, data []byte) string {
	var comments []string

	if l.options.OffsetComments {
		comments = append(comments, fmt.Sprintf("$%04X", l.address(offset)))
	}
	if l.options.HexComments {
		comments = append(comments, hexCodeComment(data))
	}
	return strings.Join(comments, "  ")
}

func hexCodeComment(data []byte) string {
	buf := &strings.Builder{}
	for _, b := range data {
		fmt.Fprintf(buf, "%02X ", b)
	}
	return strings.TrimRight(buf.String(), " ")
}
