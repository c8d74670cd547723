// Package i8080 decodes Intel 8080 machine code into typed instructions.
//
// # Decoding
//
// Every decode call receives a Window of three bytes: the opcode followed by
// the two bytes that may hold its operands. Callers zero pad the window near
// the end of a code stream; padding is never part of a decoded instruction
// since Size reports how many bytes were used.
//
// The opcode space is split into three families, each with its own decoder:
//   - data movement: mov, mvi, lxi, lda, sta, lhld, shld, ldax, stax, xchg
//   - arithmetic: add, adc, sub, sbb and their immediate and memory forms,
//     inr, dcr, inx, dcx, dad, daa
//   - logical: ana, xra, ora, cmp and their immediate and memory forms,
//     rlc, rrc, ral, rar, cma, cmc, stc
//
// Each decoder first matches opcodes with no regular shape exactly, then
// splits the opcode into a 2 bit prefix and two 3 bit fields:
//
//	 7 6   5 4 3   2 1 0
//	prefix middle   low
//
// The family decoders only share the dad opcodes 0x09, 0x19, 0x29 and 0x39,
// which the data decoder reads as lxi. Decode tries the families in the
// order of Families and returns dad for them. Opcodes outside all families,
// such as nop, hlt, jumps, calls, returns, stack and I/O instructions, decode
// to an *IllegalInstructionError.
//
// # Usage
//
//	ins, err := i8080.DecodeAt(code, pc)
//	if err != nil {
//		// resynchronize, for example by skipping one byte
//	}
//	pc += ins.Size()
//
// Decoding is free of shared state and safe for concurrent use.
package i8080
