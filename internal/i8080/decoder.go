package i8080

import "errors"

// Decoder decodes the instructions of one family.
type Decoder interface {
	// Family returns the instruction family handled by the decoder.
	Family() Family
	// Parse decodes the instruction at the start of the window. It returns
	// an *IllegalInstructionError if the opcode is not part of the family.
	Parse(w Window) (Instruction, error)

	// decode is Parse without the window attached to illegal opcode
	// errors, it returns ErrIllegalInstruction itself.
	decode(w Window) (Instruction, error)
}

// decoders holds the family decoders in priority order.
var decoders = [...]Decoder{ArithmeticDecoder{}, DataDecoder{}, LogicalDecoder{}}

// DataDecoder decodes data movement instructions.
type DataDecoder struct{}

// Family returns DataFamily.
func (DataDecoder) Family() Family { return DataFamily }

// Parse decodes a data movement instruction.
func (d DataDecoder) Parse(w Window) (Instruction, error) {
	return parseWith(d, w)
}

func (DataDecoder) decode(w Window) (Instruction, error) {
	ins, err := parseData(w)
	if err != nil {
		return nil, err
	}
	return ins, nil
}

// ArithmeticDecoder decodes arithmetic instructions.
type ArithmeticDecoder struct{}

// Family returns ArithmeticFamily.
func (ArithmeticDecoder) Family() Family { return ArithmeticFamily }

// Parse decodes an arithmetic instruction.
func (d ArithmeticDecoder) Parse(w Window) (Instruction, error) {
	return parseWith(d, w)
}

func (ArithmeticDecoder) decode(w Window) (Instruction, error) {
	ins, err := parseArithmetic(w)
	if err != nil {
		return nil, err
	}
	return ins, nil
}

// LogicalDecoder decodes logical, rotate and carry flag instructions.
type LogicalDecoder struct{}

// Family returns LogicalFamily.
func (LogicalDecoder) Family() Family { return LogicalFamily }

// Parse decodes a logical, rotate or carry flag instruction.
func (d LogicalDecoder) Parse(w Window) (Instruction, error) {
	return parseWith(d, w)
}

func (LogicalDecoder) decode(w Window) (Instruction, error) {
	ins, err := parseLogical(w)
	if err != nil {
		return nil, err
	}
	return ins, nil
}

func parseWith(d Decoder, w Window) (Instruction, error) {
	ins, err := d.decode(w)
	if err != nil {
		return nil, withWindow(w, err)
	}
	return ins, nil
}

// Decoders returns the family decoders in priority order.
func Decoders() []Decoder {
	list := decoders
	return list[:]
}

// DecoderFor returns the decoder of the given family.
func DecoderFor(family Family) (Decoder, bool) {
	for _, dec := range decoders {
		if dec.Family() == family {
			return dec, true
		}
	}
	return nil, false
}

// Decode decodes the instruction at the start of the window by trying the
// family decoders in priority order, so that an opcode claimed by two
// families decodes as the more specific match. If no family claims the
// opcode an *IllegalInstructionError is returned. Register errors are
// returned as is.
func Decode(w Window) (Instruction, error) {
	for _, dec := range decoders {
		ins, err := dec.decode(w)
		if err == nil {
			return ins, nil
		}
		if !errors.Is(err, ErrIllegalInstruction) {
			return nil, err
		}
	}
	return nil, illegal(w)
}

// DecodeAt decodes the instruction at offset in code, treating bytes past
// the end of code as zero.
func DecodeAt(code []byte, offset int) (Instruction, error) {
	return Decode(NewWindow(code, offset))
}
