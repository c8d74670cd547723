package i8080

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestRegisterFromCode(t *testing.T) {
	tests := []struct {
		code     uint8
		expected Register
		name     string
	}{
		{0b000, B, "b"},
		{0b001, C, "c"},
		{0b010, D, "d"},
		{0b011, E, "e"},
		{0b100, H, "h"},
		{0b101, L, "l"},
		{0b111, A, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := RegisterFromCode(tt.code)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, reg)
			assert.Equal(t, tt.code, reg.Code())
			assert.Equal(t, tt.name, reg.String())
		})
	}
}

func TestRegisterFromCode_Invalid(t *testing.T) {
	for _, code := range []uint8{MemoryCode, 0b1000, 0xff} {
		_, err := RegisterFromCode(code)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidRegister))

		var regErr *InvalidRegisterError
		assert.True(t, errors.As(err, &regErr))
		assert.Equal(t, code, regErr.Code)
	}
}

func TestPairFromCode(t *testing.T) {
	tests := []struct {
		code     uint8
		expected Pair
		name     string
		operand  string
	}{
		{0b00, BC, "bc", "b"},
		{0b01, DE, "de", "d"},
		{0b10, HL, "hl", "h"},
		{0b11, SP, "sp", "sp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := PairFromCode(tt.code)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, pair)
			assert.Equal(t, tt.code, pair.Code())
			assert.Equal(t, tt.name, pair.String())
			assert.Equal(t, tt.operand, pair.Operand())
		})
	}
}

func TestPairFromCode_Invalid(t *testing.T) {
	_, err := PairFromCode(0b100)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRegisterPair))
	assert.ErrorContains(t, err, "100")
}

func TestRegister_StringOfMemoryCode(t *testing.T) {
	assert.Equal(t, "?", Register(MemoryCode).String())
	assert.Equal(t, "?", Pair(4).String())
}
