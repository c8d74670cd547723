package i8080

import "github.com/retroenv/i8080disasm/internal/bits"

// DataInstruction is a decoded data movement instruction.
type DataInstruction interface {
	Instruction
	dataInstruction()
}

type dataFamily struct{}

func (dataFamily) Family() Family   { return DataFamily }
func (dataFamily) dataInstruction() {}

// MovR moves register Src to register Dest.
type MovR struct {
	dataFamily
	Dest Register
	Src  Register
}

// MovFromM loads register Dest from memory at HL.
type MovFromM struct {
	dataFamily
	Dest Register
}

// MovToM stores register Src to memory at HL.
type MovToM struct {
	dataFamily
	Src Register
}

// Mvi loads an immediate into register Dest.
type Mvi struct {
	dataFamily
	Dest Register
	Imm  uint8
}

// MviM stores an immediate to memory at HL.
type MviM struct {
	dataFamily
	Imm uint8
}

// Lxi loads a 16 bit immediate into a register pair.
type Lxi struct {
	dataFamily
	Dest Pair
	Imm  uint16
}

// Lda loads the accumulator from a direct address.
type Lda struct {
	dataFamily
	Addr uint16
}

// Sta stores the accumulator to a direct address.
type Sta struct {
	dataFamily
	Addr uint16
}

// Lhld loads HL from a direct address.
type Lhld struct {
	dataFamily
	Addr uint16
}

// Shld stores HL to a direct address.
type Shld struct {
	dataFamily
	Addr uint16
}

// Ldax loads the accumulator from the address held in a register pair.
type Ldax struct {
	dataFamily
	Pair Pair
}

// Stax stores the accumulator to the address held in a register pair.
type Stax struct {
	dataFamily
	Pair Pair
}

// Xchg exchanges HL with DE.
type Xchg struct {
	dataFamily
}

func (MovR) Name() string     { return "mov" }
func (MovFromM) Name() string { return "mov" }
func (MovToM) Name() string   { return "mov" }
func (Mvi) Name() string      { return "mvi" }
func (MviM) Name() string     { return "mvi" }
func (Lxi) Name() string      { return "lxi" }
func (Lda) Name() string      { return "lda" }
func (Sta) Name() string      { return "sta" }
func (Lhld) Name() string     { return "lhld" }
func (Shld) Name() string     { return "shld" }
func (Ldax) Name() string     { return "ldax" }
func (Stax) Name() string     { return "stax" }
func (Xchg) Name() string     { return "xchg" }

func (MovR) Size() int     { return 1 }
func (MovFromM) Size() int { return 1 }
func (MovToM) Size() int   { return 1 }
func (Mvi) Size() int      { return 2 }
func (MviM) Size() int     { return 2 }
func (Lxi) Size() int      { return 3 }
func (Lda) Size() int      { return 3 }
func (Sta) Size() int      { return 3 }
func (Lhld) Size() int     { return 3 }
func (Shld) Size() int     { return 3 }
func (Ldax) Size() int     { return 1 }
func (Stax) Size() int     { return 1 }
func (Xchg) Size() int     { return 1 }

func (i MovR) String() string     { return "mov " + i.Dest.String() + ", " + i.Src.String() }
func (i MovFromM) String() string { return "mov " + i.Dest.String() + ", " + memoryOperand }
func (i MovToM) String() string   { return "mov " + memoryOperand + ", " + i.Src.String() }
func (i Mvi) String() string      { return formatImm8(i.Name(), i.Dest.String(), i.Imm) }
func (i MviM) String() string     { return formatImm8(i.Name(), memoryOperand, i.Imm) }
func (i Lxi) String() string      { return formatImm16(i.Name(), i.Dest.Operand(), i.Imm) }
func (i Lda) String() string      { return formatImm16(i.Name(), "", i.Addr) }
func (i Sta) String() string      { return formatImm16(i.Name(), "", i.Addr) }
func (i Lhld) String() string     { return formatImm16(i.Name(), "", i.Addr) }
func (i Shld) String() string     { return formatImm16(i.Name(), "", i.Addr) }
func (i Ldax) String() string     { return i.Name() + " " + i.Pair.Operand() }
func (i Stax) String() string     { return i.Name() + " " + i.Pair.Operand() }
func (i Xchg) String() string     { return i.Name() }

// Data movement opcodes that have no regular bit field shape.
const (
	opShld = 0x22
	opLhld = 0x2a
	opSta  = 0x32
	opMviM = 0x36
	opLda  = 0x3a
	opHlt  = 0x76
	opXchg = 0xeb
)

// ParseData decodes a data movement instruction.
func ParseData(w Window) (DataInstruction, error) {
	ins, err := parseData(w)
	if err != nil {
		return nil, withWindow(w, err)
	}
	return ins, nil
}

func parseData(w Window) (DataInstruction, error) {
	switch w.Opcode() {
	case opMviM:
		return MviM{Imm: w.Imm8()}, nil
	case opLda:
		return Lda{Addr: w.Imm16()}, nil
	case opSta:
		return Sta{Addr: w.Imm16()}, nil
	case opLhld:
		return Lhld{Addr: w.Imm16()}, nil
	case opShld:
		return Shld{Addr: w.Imm16()}, nil
	case opXchg:
		return Xchg{}, nil
	case opHlt:
		// mov m, m shape, not a data movement instruction
		return nil, ErrIllegalInstruction
	}

	b := bits.Byte(w.Opcode())
	prefix, middle, low := bits.Prefix.Extract(b), bits.Middle.Extract(b), bits.Low.Extract(b)

	switch prefix {
	case 0b00:
		return parseDataImmediate(w, b, middle, low)
	case 0b01:
		return parseMove(middle, low)
	default:
		return nil, ErrIllegalInstruction
	}
}

// parseDataImmediate decodes the immediate and register pair space of
// prefix 00.
func parseDataImmediate(w Window, b bits.Byte, middle, low uint8) (DataInstruction, error) {
	switch {
	case middle == MemoryCode && low == 0b110:
		return MviM{Imm: w.Imm8()}, nil

	case middle == 0b111 && low == 0b010:
		return Lda{Addr: w.Imm16()}, nil

	case low == 0b110:
		dest, err := RegisterFromCode(middle)
		if err != nil {
			return nil, err
		}
		return Mvi{Dest: dest, Imm: w.Imm8()}, nil

	case low == 0b001:
		dest, err := PairFromCode(middle >> 1)
		if err != nil {
			return nil, err
		}
		return Lxi{Dest: dest, Imm: w.Imm16()}, nil
	}

	pair, err := PairFromCode(bits.PairCode.Extract(b))
	if err != nil {
		return nil, err
	}
	switch bits.Discriminant.Extract(b) {
	case 0b1010:
		return Ldax{Pair: pair}, nil
	case 0b0010:
		return Stax{Pair: pair}, nil
	default:
		return nil, ErrIllegalInstruction
	}
}

// parseMove decodes the register move space of prefix 01.
func parseMove(middle, low uint8) (DataInstruction, error) {
	switch {
	case low == MemoryCode:
		dest, err := RegisterFromCode(middle)
		if err != nil {
			return nil, err
		}
		return MovFromM{Dest: dest}, nil

	case middle == MemoryCode:
		src, err := RegisterFromCode(low)
		if err != nil {
			return nil, err
		}
		return MovToM{Src: src}, nil

	default:
		dest, err := RegisterFromCode(middle)
		if err != nil {
			return nil, err
		}
		src, err := RegisterFromCode(low)
		if err != nil {
			return nil, err
		}
		return MovR{Dest: dest, Src: src}, nil
	}
}
