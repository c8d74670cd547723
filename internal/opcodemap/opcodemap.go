// Package opcodemap builds the coverage map of all 256 leading opcode bytes
// over the instruction families.
package opcodemap

import (
	"fmt"
	"io"
	"slices"

	"github.com/retroenv/i8080disasm/internal/i8080"
	"github.com/retroenv/retrogolib/set"
	"golang.org/x/exp/maps"
)

const opcodeCount = 256

// Entry describes how one leading byte decodes.
type Entry struct {
	Opcode byte
	Claims []i8080.Family // families whose decoder accepts the opcode
	Name   string         // mnemonic of the first claiming family
	Size   int            // instruction size of the first claiming family
}

// Defined returns whether any family decodes the opcode.
func (e Entry) Defined() bool {
	return len(e.Claims) > 0
}

// Map is the coverage map of the opcode space.
type Map struct {
	entries [opcodeCount]Entry
	claimed map[i8080.Family]set.Set[byte]
}

// Build decodes every leading byte with every family decoder. Operand bytes
// are zero.
func Build() *Map {
	m := &Map{
		claimed: make(map[i8080.Family]set.Set[byte]),
	}

	decoders := i8080.Decoders()
	for _, dec := range decoders {
		m.claimed[dec.Family()] = set.New[byte]()
	}

	for op := range opcodeCount {
		entry := Entry{Opcode: byte(op)}
		w := i8080.Window{byte(op)}

		for _, dec := range decoders {
			ins, err := dec.Parse(w)
			if err != nil {
				continue
			}
			if len(entry.Claims) == 0 {
				entry.Name = ins.Name()
				entry.Size = ins.Size()
			}
			entry.Claims = append(entry.Claims, dec.Family())
			claimed := m.claimed[dec.Family()]
			claimed.Add(byte(op))
		}

		m.entries[op] = entry
	}
	return m
}

// Entry returns the coverage entry of an opcode.
func (m *Map) Entry(opcode byte) Entry {
	return m.entries[opcode]
}

// Claimed returns the set of opcodes decoded by the given family.
func (m *Map) Claimed(family i8080.Family) set.Set[byte] {
	return m.claimed[family]
}

// Families returns the families of the map in priority order.
func (m *Map) Families() []i8080.Family {
	families := maps.Keys(m.claimed)
	slices.Sort(families)
	return families
}

// Overlaps returns the opcodes that are claimed by more than one family.
func (m *Map) Overlaps() []byte {
	var overlaps []byte
	for _, entry := range m.entries {
		if len(entry.Claims) > 1 {
			overlaps = append(overlaps, entry.Opcode)
		}
	}
	return overlaps
}

// Undefined returns the opcodes that no family decodes, sorted.
func (m *Map) Undefined() []byte {
	var undefined []byte
	for _, entry := range m.entries {
		if !entry.Defined() {
			undefined = append(undefined, entry.Opcode)
		}
	}
	return undefined
}

// Write outputs the map as a 16x16 table indexed by the high and low nibble
// of the opcode, followed by per family totals.
func (m *Map) Write(w io.Writer) error {
	if _, err := fmt.Fprint(w, "   "); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for low := range 16 {
		if _, err := fmt.Fprintf(w, " %-5X", low); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}

	for high := range 16 {
		if _, err := fmt.Fprintf(w, "%X_ ", high); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
		for low := range 16 {
			entry := m.entries[high<<4|low]
			name := "-"
			if entry.Defined() {
				name = entry.Name
			}
			if _, err := fmt.Fprintf(w, " %-5s", name); err != nil {
				return fmt.Errorf("writing entry: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	for _, family := range m.Families() {
		if _, err := fmt.Fprintf(w, "; %-10s %3d opcodes\n", family, len(m.claimed[family])); err != nil {
			return fmt.Errorf("writing family total: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "; %-10s %3d opcodes\n", "undefined", len(m.Undefined())); err != nil {
		return fmt.Errorf("writing undefined total: %w", err)
	}
	return nil
}
