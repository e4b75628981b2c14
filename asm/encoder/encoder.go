// Package encoder translates a decoded instruction into 1-3 output words
// with correct addressing-mode and A.R.E. encoding (C6).
package encoder

import (
	"fmt"

	"github.com/oscasm/casm/isa"
)

// isRegisterMode returns true if op is present and addressed through a
// register (RegIndirect or RegDirect).
func isRegisterMode(op *Operand) bool {
	return op != nil && (op.Mode == isa.RegIndirect || op.Mode == isa.RegDirect)
}

// bothRegisters returns true if both operands are present and both are
// register-addressed — the case that packs into a single shared word.
func bothRegisters(source, target *Operand) bool {
	return source != nil && target != nil && isRegisterMode(source) && isRegisterMode(target)
}

// Len returns the number of words opcode's encoding occupies given its
// source and target operands, applying the register-pair packing
// exception (§4.5): base word 1, plus one word per present operand,
// except that two register-addressed operands together cost only one
// extra word instead of two.
func Len(source, target *Operand) int {
	size := 1
	if bothRegisters(source, target) {
		return size + 1
	}
	if source != nil {
		size++
	}
	if target != nil {
		size++
	}
	return size
}

// Encode produces the output words for one instruction. argc is the
// opcode's expected operand count (from isa.Argc); for a 1-operand
// instruction the caller passes the single parsed operand as source and
// nil as target — Encode relocates it into the target slot itself, per
// spec §4.6 ("Unary instructions").
func Encode(opcode, argc int, source, target *Operand, resolve Resolver) ([]Word, error) {
	if argc == 1 && target == nil {
		source, target = nil, source
	}

	first := uint16(opcode&0xF) << 11
	if source != nil {
		first |= 1 << (7 + uint(source.Mode))
	}
	if target != nil {
		first |= 1 << (3 + uint(target.Mode))
	}
	first |= uint16(isa.Absolute)

	words := []Word{{Value: first}}

	if bothRegisters(source, target) {
		w := uint16(source.Value&7)<<6 | uint16(target.Value&7)<<3 | uint16(isa.Absolute)
		return append(words, Word{Value: w}), nil
	}

	if source != nil {
		w, err := encodeOperand(source, 6, resolve)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if target != nil {
		w, err := encodeOperand(target, 3, resolve)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, nil
}

// encodeOperand encodes a single, non-register-paired operand. shift is
// the register-field shift to use if op addresses a register (6 for the
// source position, 3 for the target position).
func encodeOperand(op *Operand, shift uint, resolve Resolver) (Word, error) {
	switch op.Mode {
	case isa.Immediate:
		return Word{Value: uint16(op.Value&0xFFF)<<3 | uint16(isa.Absolute)}, nil

	case isa.Direct:
		addr, external, ok := resolve(op.Symbol)
		if !ok {
			return Word{}, fmt.Errorf("undefined symbol %q", op.Symbol)
		}
		if external {
			return Word{Value: uint16(isa.External), External: op.Symbol}, nil
		}
		return Word{Value: uint16(addr&0xFFF)<<3 | uint16(isa.Relocatable)}, nil

	case isa.RegIndirect, isa.RegDirect:
		return Word{Value: uint16(op.Value&7)<<shift | uint16(isa.Absolute)}, nil
	}

	return Word{}, fmt.Errorf("unknown addressing mode %d", op.Mode)
}
