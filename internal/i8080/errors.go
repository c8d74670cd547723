package i8080

import (
	"errors"
	"fmt"
)

// Sentinel errors that the typed decode errors match with errors.Is.
var (
	ErrIllegalInstruction  = errors.New("illegal instruction")
	ErrInvalidRegister     = errors.New("invalid register")
	ErrInvalidRegisterPair = errors.New("invalid register pair")
)

// IllegalInstructionError is returned when a window does not encode any
// instruction of the decoding family.
type IllegalInstructionError struct {
	Window Window
}

func (e *IllegalInstructionError) Error() string {
	return fmt.Sprintf("illegal instruction: [%08b, %08b, %08b]", e.Window[0], e.Window[1], e.Window[2])
}

// Is reports whether target is ErrIllegalInstruction.
func (e *IllegalInstructionError) Is(target error) bool {
	return target == ErrIllegalInstruction
}

// InvalidRegisterError is returned for a 3 bit register code that does not
// select a register.
type InvalidRegisterError struct {
	Code uint8
}

func (e *InvalidRegisterError) Error() string {
	return fmt.Sprintf("could not interpret %03b as a register", e.Code)
}

// Is reports whether target is ErrInvalidRegister.
func (e *InvalidRegisterError) Is(target error) bool {
	return target == ErrInvalidRegister
}

// InvalidRegisterPairError is returned for a register pair code outside of
// the 2 bit range.
type InvalidRegisterPairError struct {
	Code uint8
}

func (e *InvalidRegisterPairError) Error() string {
	return fmt.Sprintf("could not interpret %02b as a register pair", e.Code)
}

// Is reports whether target is ErrInvalidRegisterPair.
func (e *InvalidRegisterPairError) Is(target error) bool {
	return target == ErrInvalidRegisterPair
}

func illegal(w Window) error {
	return &IllegalInstructionError{Window: w}
}

// withWindow replaces the bare ErrIllegalInstruction returned by the family
// parsers with an error carrying the rejected window.
func withWindow(w Window, err error) error {
	if errors.Is(err, ErrIllegalInstruction) {
		return illegal(w)
	}
	return err
}
