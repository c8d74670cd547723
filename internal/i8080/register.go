package i8080

// Register is one of the seven 8 bit registers, its value is the 3 bit code
// used in opcodes. Code 0b110 selects the memory operand M and is not a
// register.
type Register uint8

// Registers by opcode code.
const (
	B Register = 0b000
	C Register = 0b001
	D Register = 0b010
	E Register = 0b011
	H Register = 0b100
	L Register = 0b101
	A Register = 0b111
)

// MemoryCode is the 3 bit register field value that addresses memory at HL.
const MemoryCode = 0b110

// Pair is one of the four 16 bit register pairs, its value is the 2 bit
// code used in opcodes.
type Pair uint8

// Register pairs by opcode code.
const (
	BC Pair = 0b00
	DE Pair = 0b01
	HL Pair = 0b10
	SP Pair = 0b11
)

type registerInfo struct {
	valid bool
	name  string
}

var registers = [8]registerInfo{
	B:          {valid: true, name: "b"},
	C:          {valid: true, name: "c"},
	D:          {valid: true, name: "d"},
	E:          {valid: true, name: "e"},
	H:          {valid: true, name: "h"},
	L:          {valid: true, name: "l"},
	MemoryCode: {name: "m"},
	A:          {valid: true, name: "a"},
}

var pairNames = [4]string{
	BC: "bc",
	DE: "de",
	HL: "hl",
	SP: "sp",
}

// pairOperands are the pair names as written in 8080 assembly.
var pairOperands = [4]string{
	BC: "b",
	DE: "d",
	HL: "h",
	SP: "sp",
}

// RegisterFromCode returns the register for a 3 bit opcode field.
func RegisterFromCode(code uint8) (Register, error) {
	if int(code) >= len(registers) || !registers[code].valid {
		return 0, &InvalidRegisterError{Code: code}
	}
	return Register(code), nil
}

// PairFromCode returns the register pair for a 2 bit opcode field.
func PairFromCode(code uint8) (Pair, error) {
	if int(code) >= len(pairNames) {
		return 0, &InvalidRegisterPairError{Code: code}
	}
	return Pair(code), nil
}

// Code returns the opcode encoding of the register.
func (r Register) Code() uint8 {
	return uint8(r)
}

func (r Register) String() string {
	if int(r) >= len(registers) || !registers[r].valid {
		return "?"
	}
	return registers[r].name
}

// Code returns the opcode encoding of the register pair.
func (p Pair) Code() uint8 {
	return uint8(p)
}

func (p Pair) String() string {
	if int(p) >= len(pairNames) {
		return "?"
	}
	return pairNames[p]
}

// Operand returns the name of the pair as used in assembly operands,
// b for BC, d for DE, h for HL and sp for SP.
func (p Pair) Operand() string {
	if int(p) >= len(pairOperands) {
		return "?"
	}
	return pairOperands[p]
}
