package i8080

import (
	"errors"
	"reflect"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// trailing byte patterns used to check that operand values never change
// the decoding result shape.
var trailingBytes = [][2]byte{{0x00, 0x00}, {0xff, 0xff}, {0xaa, 0x55}}

func TestDecoders_Exhaustive(t *testing.T) {
	for _, dec := range Decoders() {
		t.Run(dec.Family().String(), func(t *testing.T) {
			for op := range 256 {
				for _, trailing := range trailingBytes {
					w := Window{byte(op), trailing[0], trailing[1]}
					ins, err := dec.Parse(w)
					if err != nil {
						assert.Nil(t, ins)
						assert.True(t, errors.Is(err, ErrIllegalInstruction), "opcode %02x: %v", op, err)

						var illegalErr *IllegalInstructionError
						assert.True(t, errors.As(err, &illegalErr))
						assert.Equal(t, w, illegalErr.Window)
						continue
					}

					assert.Equal(t, dec.Family(), ins.Family())
					assert.True(t, ins.Size() >= 1 && ins.Size() <= WindowSize)
				}
			}
		})
	}
}

func TestDecoders_Overlap(t *testing.T) {
	// dad shares its opcodes with lxi, every other opcode has one family at most
	shared := map[byte]Pair{0x09: BC, 0x19: DE, 0x29: HL, 0x39: SP}

	for op := range 256 {
		w := Window{byte(op), 0x12, 0x34}
		var claims []Family
		for _, dec := range Decoders() {
			if _, err := dec.Parse(w); err == nil {
				claims = append(claims, dec.Family())
			}
		}

		pair, ok := shared[byte(op)]
		if !ok {
			assert.True(t, len(claims) <= 1, "opcode %02x claimed by %d families", op, len(claims))
			continue
		}

		assert.Equal(t, 2, len(claims), "opcode %02x", op)
		assert.Equal(t, ArithmeticFamily, claims[0])
		assert.Equal(t, DataFamily, claims[1])

		ins, err := Decode(w)
		assert.NoError(t, err)
		assert.Equal(t, Instruction(Dad{Pair: pair}), ins)
	}
}

func TestDecoders_PriorityOrder(t *testing.T) {
	families := Families()
	decs := Decoders()
	assert.Equal(t, len(families), len(decs))
	for i, dec := range decs {
		assert.Equal(t, families[i], dec.Family())
	}
	assert.Equal(t, ArithmeticFamily, families[0])
}

func TestDecoders_ReturnsCopy(t *testing.T) {
	decs := Decoders()
	decs[0], decs[1] = decs[1], decs[0]

	ins, err := Decode(Window{0x09, 0x34, 0x12})
	assert.NoError(t, err)
	assert.Equal(t, Instruction(Dad{Pair: BC}), ins)
	assert.Equal(t, ArithmeticFamily, Decoders()[0].Family())

	families := Families()
	families[0] = LogicalFamily
	assert.Equal(t, ArithmeticFamily, Families()[0])
}

func TestDecode_Allocations(t *testing.T) {
	tests := []struct {
		name   string
		window Window
	}{
		{"first family", Window{0x80, 0, 0}},
		{"second family", Window{0x21, 0x34, 0x12}},
		{"last family", Window{0xa7, 0, 0}},
		{"illegal", Window{0x00, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocs := testing.AllocsPerRun(100, func() {
				_, _ = Decode(tt.window)
			})
			// only the returned instruction or error may be allocated
			assert.True(t, allocs <= 1, "%v allocations", allocs)
		})
	}
}

func TestDecoders_ClaimedCounts(t *testing.T) {
	expected := map[Family]int{
		DataFamily:       88,
		ArithmeticFamily: 65,
		LogicalFamily:    43,
	}

	for _, dec := range Decoders() {
		count := 0
		for op := range 256 {
			if _, err := dec.Parse(Window{byte(op)}); err == nil {
				count++
			}
		}
		assert.Equal(t, expected[dec.Family()], count)
	}
}

func TestDecoders_SizeDependsOnVariantOnly(t *testing.T) {
	sizes := map[reflect.Type]int{}

	for op := range 256 {
		for _, trailing := range trailingBytes {
			ins, err := Decode(Window{byte(op), trailing[0], trailing[1]})
			if err != nil {
				continue
			}
			typ := reflect.TypeOf(ins)
			if size, ok := sizes[typ]; ok {
				assert.Equal(t, size, ins.Size())
				continue
			}
			sizes[typ] = ins.Size()
		}
	}
	assert.Equal(t, 52, len(sizes))
}

func TestDecoders_SizeMatchesOperandUse(t *testing.T) {
	for op := range 256 {
		first, err := Decode(Window{byte(op), 0x00, 0x00})
		if err != nil {
			continue
		}

		// bytes beyond the reported size must not influence the result
		switch first.Size() {
		case 1:
			other, err := Decode(Window{byte(op), 0xff, 0xff})
			assert.NoError(t, err)
			assert.Equal(t, first, other)
		case 2:
			other, err := Decode(Window{byte(op), 0x00, 0xff})
			assert.NoError(t, err)
			assert.Equal(t, first, other)
			changed, err := Decode(Window{byte(op), 0x01, 0x00})
			assert.NoError(t, err)
			assert.True(t, first != changed, "opcode %02x ignores its immediate", op)
		case 3:
			low, err := Decode(Window{byte(op), 0x01, 0x00})
			assert.NoError(t, err)
			high, err := Decode(Window{byte(op), 0x00, 0x01})
			assert.NoError(t, err)
			assert.True(t, first != low && first != high && low != high, "opcode %02x ignores an operand byte", op)
		}
	}
}

func TestDecode_NoRegisterErrors(t *testing.T) {
	for op := range 256 {
		_, err := Decode(Window{byte(op)})
		if err == nil {
			continue
		}
		assert.False(t, errors.Is(err, ErrInvalidRegister), "opcode %02x", op)
		assert.False(t, errors.Is(err, ErrInvalidRegisterPair), "opcode %02x", op)
	}
}

func TestDecode_Deterministic(t *testing.T) {
	for op := range 256 {
		w := Window{byte(op), 0xbe, 0xef}
		first, firstErr := Decode(w)
		second, secondErr := Decode(w)
		assert.Equal(t, first, second)
		assert.Equal(t, firstErr == nil, secondErr == nil)
	}
}

func TestDecode_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		window   Window
		expected Instruction
		size     int
	}{
		{"immediate load to memory", Window{0b00110110, 0xaa, 0x00}, MviM{Imm: 0xaa}, 2},
		{"accumulator load from address", Window{0b00111010, 0xff, 0xaa}, Lda{Addr: 0xaaff}, 3},
		{"register pair exchange", Window{0b11101011, 0, 0}, Xchg{}, 1},
		{"register to register move", Window{0b01000001, 0, 0}, MovR{Dest: B, Src: C}, 1},
		{"logical and", Window{0b10100111, 0, 0}, Ana{Src: A}, 1},
		{"increment pair", Window{0x23, 0, 0}, Inx{Pair: HL}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, err := Decode(tt.window)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ins)
			assert.Equal(t, tt.size, ins.Size())
		})
	}
}

func TestDecode_ZeroByteIsIllegal(t *testing.T) {
	ins, err := Decode(Window{0b00000000, 0, 0})
	assert.Nil(t, ins)

	var illegalErr *IllegalInstructionError
	assert.True(t, errors.As(err, &illegalErr))
	assert.Equal(t, Window{0, 0, 0}, illegalErr.Window)

	_, err = ParseData(Window{0b00000000, 0, 0})
	assert.True(t, errors.Is(err, ErrIllegalInstruction))
}

func TestDecodeAt(t *testing.T) {
	code := []byte{0x3e, 0x42, 0x21, 0x34}

	ins, err := DecodeAt(code, 0)
	assert.NoError(t, err)
	assert.Equal(t, Instruction(Mvi{Dest: A, Imm: 0x42}), ins)

	// lxi at the end of the stream reads zero padding for the high byte
	ins, err = DecodeAt(code, 2)
	assert.NoError(t, err)
	assert.Equal(t, Instruction(Lxi{Dest: HL, Imm: 0x0034}), ins)

	_, err = DecodeAt(code, len(code))
	assert.True(t, errors.Is(err, ErrIllegalInstruction))
}

func TestNewWindow(t *testing.T) {
	code := []byte{0x01, 0x02, 0x03, 0x04}

	assert.Equal(t, Window{0x01, 0x02, 0x03}, NewWindow(code, 0))
	assert.Equal(t, Window{0x03, 0x04, 0x00}, NewWindow(code, 2))
	assert.Equal(t, Window{0x04, 0x00, 0x00}, NewWindow(code, 3))
	assert.Equal(t, Window{}, NewWindow(code, 4))
	assert.Equal(t, Window{}, NewWindow(code, -1))
	assert.Equal(t, Window{}, NewWindow(nil, 0))
}

func TestWindow_Operands(t *testing.T) {
	w := Window{0x3a, 0xff, 0xaa}
	assert.Equal(t, byte(0x3a), w.Opcode())
	assert.Equal(t, uint8(0xff), w.Imm8())
	assert.Equal(t, uint16(0xaaff), w.Imm16())
}

func TestDecoderFor(t *testing.T) {
	for _, family := range Families() {
		dec, ok := DecoderFor(family)
		assert.True(t, ok)
		assert.Equal(t, family, dec.Family())
	}

	_, ok := DecoderFor(Family(42))
	assert.False(t, ok)
}

func TestFamily_String(t *testing.T) {
	assert.Equal(t, "data", DataFamily.String())
	assert.Equal(t, "arithmetic", ArithmeticFamily.String())
	assert.Equal(t, "logical", LogicalFamily.String())
	assert.Equal(t, "family(9)", Family(9).String())
}

func TestIllegalInstructionError_Error(t *testing.T) {
	err := &IllegalInstructionError{Window: Window{0x00, 0x01, 0xff}}
	assert.Equal(t, "illegal instruction: [00000000, 00000001, 11111111]", err.Error())
}
