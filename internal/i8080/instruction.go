package i8080

import "fmt"

// WindowSize is the number of bytes every decode call receives.
const WindowSize = 3

// Window holds an opcode byte followed by the two bytes that may be
// consumed as its operands. Near the end of a code stream the missing bytes
// are zero.
type Window [WindowSize]byte

// NewWindow returns the window starting at offset in code, zero padding
// bytes past the end of code.
func NewWindow(code []byte, offset int) Window {
	var w Window
	if offset >= 0 && offset < len(code) {
		copy(w[:], code[offset:])
	}
	return w
}

// Opcode returns the leading byte.
func (w Window) Opcode() byte {
	return w[0]
}

// Imm8 returns the 8 bit immediate that follows the opcode.
func (w Window) Imm8() uint8 {
	return w[1]
}

// Imm16 returns the little endian 16 bit operand that follows the opcode.
func (w Window) Imm16() uint16 {
	return uint16(w[1]) | uint16(w[2])<<8
}

// Family identifies one of the instruction families, each decoded by its
// own decoder.
type Family uint8

// Instruction families in decoding priority order. The arithmetic family
// comes first as dad (00pp1001) is a more specific match than lxi
// (00ppx001), the only opcodes claimed by two families.
const (
	ArithmeticFamily Family = iota
	DataFamily
	LogicalFamily
)

// Families returns all instruction families in decoding priority order.
func Families() []Family {
	return []Family{ArithmeticFamily, DataFamily, LogicalFamily}
}

func (f Family) String() string {
	switch f {
	case DataFamily:
		return "data"
	case ArithmeticFamily:
		return "arithmetic"
	case LogicalFamily:
		return "logical"
	default:
		return fmt.Sprintf("family(%d)", uint8(f))
	}
}

// Instruction is a decoded instruction of any family.
type Instruction interface {
	fmt.Stringer

	// Family returns the family that the instruction belongs to.
	Family() Family
	// Name returns the lower case mnemonic without operands.
	Name() string
	// Size returns the number of bytes the instruction occupies, 1 to 3.
	// It depends only on the instruction variant, never on operand values.
	Size() int
}

func formatImm8(name string, dst string, imm uint8) string {
	if dst == "" {
		return fmt.Sprintf("%s $%02X", name, imm)
	}
	return fmt.Sprintf("%s %s, $%02X", name, dst, imm)
}

func formatImm16(name string, dst string, imm uint16) string {
	if dst == "" {
		return fmt.Sprintf("%s $%04X", name, imm)
	}
	return fmt.Sprintf("%s %s, $%04X", name, dst, imm)
}

func formatOperand(name string, operand fmt.Stringer) string {
	return name + " " + operand.String()
}

const memoryOperand = "m"
