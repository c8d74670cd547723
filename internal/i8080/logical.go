package i8080

import "github.com/retroenv/i8080disasm/internal/bits"

// LogicalInstruction is a decoded logical, rotate or carry flag instruction.
type LogicalInstruction interface {
	Instruction
	logicalInstruction()
}

type logicalFamily struct{}

func (logicalFamily) Family() Family      { return LogicalFamily }
func (logicalFamily) logicalInstruction() {}

// Ana ands register Src with the accumulator.
type Ana struct {
	logicalFamily
	Src Register
}

// AnaM ands memory at HL with the accumulator.
type AnaM struct{ logicalFamily }

// Ani ands an immediate with the accumulator.
type Ani struct {
	logicalFamily
	Imm uint8
}

// Xra exclusive ors register Src with the accumulator.
type Xra struct {
	logicalFamily
	Src Register
}

// XraM exclusive ors memory at HL with the accumulator.
type XraM struct{ logicalFamily }

// Xri exclusive ors an immediate with the accumulator.
type Xri struct {
	logicalFamily
	Imm uint8
}

// Ora ors register Src with the accumulator.
type Ora struct {
	logicalFamily
	Src Register
}

// OraM ors memory at HL with the accumulator.
type OraM struct{ logicalFamily }

// Ori ors an immediate with the accumulator.
type Ori struct {
	logicalFamily
	Imm uint8
}

// Cmp compares register Src with the accumulator.
type Cmp struct {
	logicalFamily
	Src Register
}

// CmpM compares memory at HL with the accumulator.
type CmpM struct{ logicalFamily }

// Cpi compares an immediate with the accumulator.
type Cpi struct {
	logicalFamily
	Imm uint8
}

// Rlc rotates the accumulator left.
type Rlc struct{ logicalFamily }

// Rrc rotates the accumulator right.
type Rrc struct{ logicalFamily }

// Ral rotates the accumulator left through the carry.
type Ral struct{ logicalFamily }

// Rar rotates the accumulator right through the carry.
type Rar struct{ logicalFamily }

// Cma complements the accumulator.
type Cma struct{ logicalFamily }

// Cmc complements the carry flag.
type Cmc struct{ logicalFamily }

// Stc sets the carry flag.
type Stc struct{ logicalFamily }

func (Ana) Name() string  { return "ana" }
func (AnaM) Name() string { return "ana" }
func (Ani) Name() string  { return "ani" }
func (Xra) Name() string  { return "xra" }
func (XraM) Name() string { return "xra" }
func (Xri) Name() string  { return "xri" }
func (Ora) Name() string  { return "ora" }
func (OraM) Name() string { return "ora" }
func (Ori) Name() string  { return "ori" }
func (Cmp) Name() string  { return "cmp" }
func (CmpM) Name() string { return "cmp" }
func (Cpi) Name() string  { return "cpi" }
func (Rlc) Name() string  { return "rlc" }
func (Rrc) Name() string  { return "rrc" }
func (Ral) Name() string  { return "ral" }
func (Rar) Name() string  { return "rar" }
func (Cma) Name() string  { return "cma" }
func (Cmc) Name() string  { return "cmc" }
func (Stc) Name() string  { return "stc" }

func (Ana) Size() int  { return 1 }
func (AnaM) Size() int { return 1 }
func (Ani) Size() int  { return 2 }
func (Xra) Size() int  { return 1 }
func (XraM) Size() int { return 1 }
func (Xri) Size() int  { return 2 }
func (Ora) Size() int  { return 1 }
func (OraM) Size() int { return 1 }
func (Ori) Size() int  { return 2 }
func (Cmp) Size() int  { return 1 }
func (CmpM) Size() int { return 1 }
func (Cpi) Size() int  { return 2 }
func (Rlc) Size() int  { return 1 }
func (Rrc) Size() int  { return 1 }
func (Ral) Size() int  { return 1 }
func (Rar) Size() int  { return 1 }
func (Cma) Size() int  { return 1 }
func (Cmc) Size() int  { return 1 }
func (Stc) Size() int  { return 1 }

func (i Ana) String() string  { return formatOperand(i.Name(), i.Src) }
func (i AnaM) String() string { return i.Name() + " " + memoryOperand }
func (i Ani) String() string  { return formatImm8(i.Name(), "", i.Imm) }
func (i Xra) String() string  { return formatOperand(i.Name(), i.Src) }
func (i XraM) String() string { return i.Name() + " " + memoryOperand }
func (i Xri) String() string  { return formatImm8(i.Name(), "", i.Imm) }
func (i Ora) String() string  { return formatOperand(i.Name(), i.Src) }
func (i OraM) String() string { return i.Name() + " " + memoryOperand }
func (i Ori) String() string  { return formatImm8(i.Name(), "", i.Imm) }
func (i Cmp) String() string  { return formatOperand(i.Name(), i.Src) }
func (i CmpM) String() string { return i.Name() + " " + memoryOperand }
func (i Cpi) String() string  { return formatImm8(i.Name(), "", i.Imm) }
func (i Rlc) String() string  { return i.Name() }
func (i Rrc) String() string  { return i.Name() }
func (i Ral) String() string  { return i.Name() }
func (i Rar) String() string  { return i.Name() }
func (i Cma) String() string  { return i.Name() }
func (i Cmc) String() string  { return i.Name() }
func (i Stc) String() string  { return i.Name() }

// Logical opcodes that are decoded by exact match.
const (
	opRlc  = 0x07
	opRrc  = 0x0f
	opRal  = 0x17
	opRar  = 0x1f
	opCma  = 0x2f
	opStc  = 0x37
	opCmc  = 0x3f
	opAnaM = 0xa6
	opXraM = 0xae
	opOraM = 0xb6
	opCmpM = 0xbe
	opAni  = 0xe6
	opXri  = 0xee
	opOri  = 0xf6
	opCpi  = 0xfe
)

// ParseLogical decodes a logical, rotate or carry flag instruction.
func ParseLogical(w Window) (LogicalInstruction, error) {
	ins, err := parseLogical(w)
	if err != nil {
		return nil, withWindow(w, err)
	}
	return ins, nil
}

func parseLogical(w Window) (LogicalInstruction, error) {
	switch w.Opcode() {
	case opAnaM:
		return AnaM{}, nil
	case opXraM:
		return XraM{}, nil
	case opOraM:
		return OraM{}, nil
	case opCmpM:
		return CmpM{}, nil
	case opAni:
		return Ani{Imm: w.Imm8()}, nil
	case opXri:
		return Xri{Imm: w.Imm8()}, nil
	case opOri:
		return Ori{Imm: w.Imm8()}, nil
	case opCpi:
		return Cpi{Imm: w.Imm8()}, nil
	case opRlc:
		return Rlc{}, nil
	case opRrc:
		return Rrc{}, nil
	case opRal:
		return Ral{}, nil
	case opRar:
		return Rar{}, nil
	case opCma:
		return Cma{}, nil
	case opCmc:
		return Cmc{}, nil
	case opStc:
		return Stc{}, nil
	}

	b := bits.Byte(w.Opcode())
	if bits.Prefix.Extract(b) != 0b10 {
		return nil, ErrIllegalInstruction
	}
	middle := bits.Middle.Extract(b)
	if middle < 0b100 {
		return nil, ErrIllegalInstruction
	}
	src, err := RegisterFromCode(bits.Low.Extract(b))
	if err != nil {
		return nil, err
	}

	switch middle {
	case 0b100:
		return Ana{Src: src}, nil
	case 0b101:
		return Xra{Src: src}, nil
	case 0b110:
		return Ora{Src: src}, nil
	default:
		return Cmp{Src: src}, nil
	}
}
