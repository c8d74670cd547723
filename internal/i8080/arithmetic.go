package i8080

import "github.com/retroenv/i8080disasm/internal/bits"

// ArithmeticInstruction is a decoded arithmetic instruction.
type ArithmeticInstruction interface {
	Instruction
	arithmeticInstruction()
}

type arithmeticFamily struct{}

func (arithmeticFamily) Family() Family         { return ArithmeticFamily }
func (arithmeticFamily) arithmeticInstruction() {}

// Add adds register Src to the accumulator.
type Add struct {
	arithmeticFamily
	Src Register
}

// AddM adds memory at HL to the accumulator.
type AddM struct{ arithmeticFamily }

// Adi adds an immediate to the accumulator.
type Adi struct {
	arithmeticFamily
	Imm uint8
}

// Adc adds register Src and the carry to the accumulator.
type Adc struct {
	arithmeticFamily
	Src Register
}

// AdcM adds memory at HL and the carry to the accumulator.
type AdcM struct{ arithmeticFamily }

// Aci adds an immediate and the carry to the accumulator.
type Aci struct {
	arithmeticFamily
	Imm uint8
}

// Sub subtracts register Src from the accumulator.
type Sub struct {
	arithmeticFamily
	Src Register
}

// SubM subtracts memory at HL from the accumulator.
type SubM struct{ arithmeticFamily }

// Sui subtracts an immediate from the accumulator.
type Sui struct {
	arithmeticFamily
	Imm uint8
}

// Sbb subtracts register Src and the borrow from the accumulator.
type Sbb struct {
	arithmeticFamily
	Src Register
}

// SbbM subtracts memory at HL and the borrow from the accumulator.
type SbbM struct{ arithmeticFamily }

// Sbi subtracts an immediate and the borrow from the accumulator.
type Sbi struct {
	arithmeticFamily
	Imm uint8
}

// Inr increments register Dest.
type Inr struct {
	arithmeticFamily
	Dest Register
}

// InrM increments memory at HL.
type InrM struct{ arithmeticFamily }

// Dcr decrements register Dest.
type Dcr struct {
	arithmeticFamily
	Dest Register
}

// DcrM decrements memory at HL.
type DcrM struct{ arithmeticFamily }

// Inx increments a register pair.
type Inx struct {
	arithmeticFamily
	Pair Pair
}

// Dcx decrements a register pair.
type Dcx struct {
	arithmeticFamily
	Pair Pair
}

// Dad adds a register pair to HL.
type Dad struct {
	arithmeticFamily
	Pair Pair
}

// Daa decimal adjusts the accumulator.
type Daa struct{ arithmeticFamily }

func (Add) Name() string  { return "add" }
func (AddM) Name() string { return "add" }
func (Adi) Name() string  { return "adi" }
func (Adc) Name() string  { return "adc" }
func (AdcM) Name() string { return "adc" }
func (Aci) Name() string  { return "aci" }
func (Sub) Name() string  { return "sub" }
func (SubM) Name() string { return "sub" }
func (Sui) Name() string  { return "sui" }
func (Sbb) Name() string  { return "sbb" }
func (SbbM) Name() string { return "sbb" }
func (Sbi) Name() string  { return "sbi" }
func (Inr) Name() string  { return "inr" }
func (InrM) Name() string { return "inr" }
func (Dcr) Name() string  { return "dcr" }
func (DcrM) Name() string { return "dcr" }
func (Inx) Name() string  { return "inx" }
func (Dcx) Name() string  { return "dcx" }
func (Dad) Name() string  { return "dad" }
func (Daa) Name() string  { return "daa" }

func (Add) Size() int  { return 1 }
func (AddM) Size() int { return 1 }
func (Adi) Size() int  { return 2 }
func (Adc) Size() int  { return 1 }
func (AdcM) Size() int { return 1 }
func (Aci) Size() int  { return 2 }
func (Sub) Size() int  { return 1 }
func (SubM) Size() int { return 1 }
func (Sui) Size() int  { return 2 }
func (Sbb) Size() int  { return 1 }
func (SbbM) Size() int { return 1 }
func (Sbi) Size() int  { return 2 }
func (Inr) Size() int  { return 1 }
func (InrM) Size() int { return 1 }
func (Dcr) Size() int  { return 1 }
func (DcrM) Size() int { return 1 }
func (Inx) Size() int  { return 1 }
func (Dcx) Size() int  { return 1 }
func (Dad) Size() int  { return 1 }
func (Daa) Size() int  { return 1 }

func (i Add) String() string  { return formatOperand(i.Name(), i.Src) }
func (i AddM) String() string { return i.Name() + " " + memoryOperand }
func (i Adi) String() string  { return formatImm8(i.Name(), "", i.Imm) }
func (i Adc) String() string  { return formatOperand(i.Name(), i.Src) }
func (i AdcM) String() string { return i.Name() + " " + memoryOperand }
func (i Aci) String() string  { return formatImm8(i.Name(), "", i.Imm) }
func (i Sub) String() string  { return formatOperand(i.Name(), i.Src) }
func (i SubM) String() string { return i.Name() + " " + memoryOperand }
func (i Sui) String() string  { return formatImm8(i.Name(), "", i.Imm) }
func (i Sbb) String() string  { return formatOperand(i.Name(), i.Src) }
func (i SbbM) String() string { return i.Name() + " " + memoryOperand }
func (i Sbi) String() string  { return formatImm8(i.Name(), "", i.Imm) }
func (i Inr) String() string  { return formatOperand(i.Name(), i.Dest) }
func (i InrM) String() string { return i.Name() + " " + memoryOperand }
func (i Dcr) String() string  { return formatOperand(i.Name(), i.Dest) }
func (i DcrM) String() string { return i.Name() + " " + memoryOperand }
func (i Inx) String() string  { return i.Name() + " " + i.Pair.Operand() }
func (i Dcx) String() string  { return i.Name() + " " + i.Pair.Operand() }
func (i Dad) String() string  { return i.Name() + " " + i.Pair.Operand() }
func (i Daa) String() string  { return i.Name() }

// Arithmetic opcodes that are decoded by exact match.
const (
	opDaa  = 0x27
	opInrM = 0x34
	opDcrM = 0x35
	opAddM = 0x86
	opAdcM = 0x8e
	opSubM = 0x96
	opSbbM = 0x9e
	opAdi  = 0xc6
	opAci  = 0xce
	opSui  = 0xd6
	opSbi  = 0xde
)

// ParseArithmetic decodes an arithmetic instruction.
func ParseArithmetic(w Window) (ArithmeticInstruction, error) {
	ins, err := parseArithmetic(w)
	if err != nil {
		return nil, withWindow(w, err)
	}
	return ins, nil
}

func parseArithmetic(w Window) (ArithmeticInstruction, error) {
	switch w.Opcode() {
	case opDaa:
		return Daa{}, nil
	case opInrM:
		return InrM{}, nil
	case opDcrM:
		return DcrM{}, nil
	case opAddM:
		return AddM{}, nil
	case opAdcM:
		return AdcM{}, nil
	case opSubM:
		return SubM{}, nil
	case opSbbM:
		return SbbM{}, nil
	case opAdi:
		return Adi{Imm: w.Imm8()}, nil
	case opAci:
		return Aci{Imm: w.Imm8()}, nil
	case opSui:
		return Sui{Imm: w.Imm8()}, nil
	case opSbi:
		return Sbi{Imm: w.Imm8()}, nil
	}

	b := bits.Byte(w.Opcode())
	prefix, middle, low := bits.Prefix.Extract(b), bits.Middle.Extract(b), bits.Low.Extract(b)

	switch prefix {
	case 0b00:
		return parseIncDec(b, middle, low)
	case 0b10:
		return parseAccumulatorArithmetic(middle, low)
	default:
		return nil, ErrIllegalInstruction
	}
}

// parseIncDec decodes the increment, decrement and 16 bit add space of
// prefix 00.
func parseIncDec(b bits.Byte, middle, low uint8) (ArithmeticInstruction, error) {
	switch low {
	case 0b100:
		dest, err := RegisterFromCode(middle)
		if err != nil {
			return nil, err
		}
		return Inr{Dest: dest}, nil

	case 0b101:
		dest, err := RegisterFromCode(middle)
		if err != nil {
			return nil, err
		}
		return Dcr{Dest: dest}, nil
	}

	pair, err := PairFromCode(bits.PairCode.Extract(b))
	if err != nil {
		return nil, err
	}
	switch bits.Discriminant.Extract(b) {
	case 0b0011:
		return Inx{Pair: pair}, nil
	case 0b1001:
		return Dad{Pair: pair}, nil
	case 0b1011:
		return Dcx{Pair: pair}, nil
	default:
		return nil, ErrIllegalInstruction
	}
}

// parseAccumulatorArithmetic decodes the register operand forms of prefix 10.
// Middle values 4 to 7 belong to the logical family.
func parseAccumulatorArithmetic(middle, low uint8) (ArithmeticInstruction, error) {
	if middle > 0b011 {
		return nil, ErrIllegalInstruction
	}
	src, err := RegisterFromCode(low)
	if err != nil {
		return nil, err
	}

	switch middle {
	case 0b000:
		return Add{Src: src}, nil
	case 0b001:
		return Adc{Src: src}, nil
	case 0b010:
		return Sub{Src: src}, nil
	default:
		return Sbb{Src: src}, nil
	}
}
