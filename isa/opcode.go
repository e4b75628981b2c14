// Package isa defines the instruction set: the fixed mnemonic table, the
// four addressing modes, the register file, and the A.R.E. relocation
// tags used by the encoder.
package isa

import "strings"

// Known opcodes. The numeric value IS the encoded opcode field; the
// ordering below is significant and fixed by the architecture.
const (
	MOV = iota
	CMP
	ADD
	SUB
	LEA
	CLR
	NOT
	INC
	DEC
	JMP
	BNE
	RED
	PRN
	JSR
	RTS
	STOP
)

// Opcode returns the opcode for the given mnemonic and the number of
// operands it expects. Returns ok=false if the mnemonic is not recognized.
func Opcode(mnemonic string) (opcode, operands int, ok bool) {
	switch strings.ToLower(mnemonic) {
	case "mov":
		return MOV, 2, true
	case "cmp":
		return CMP, 2, true
	case "add":
		return ADD, 2, true
	case "sub":
		return SUB, 2, true
	case "lea":
		return LEA, 2, true
	case "clr":
		return CLR, 1, true
	case "not":
		return NOT, 1, true
	case "inc":
		return INC, 1, true
	case "dec":
		return DEC, 1, true
	case "jmp":
		return JMP, 1, true
	case "bne":
		return BNE, 1, true
	case "red":
		return RED, 1, true
	case "prn":
		return PRN, 1, true
	case "jsr":
		return JSR, 1, true
	case "rts":
		return RTS, 0, true
	case "stop":
		return STOP, 0, true
	}
	return 0, 0, false
}

// Name returns the mnemonic for the given opcode. Returns ok=false if the
// opcode is not recognized.
func Name(opcode int) (name string, ok bool) {
	switch opcode {
	case MOV:
		return "mov", true
	case CMP:
		return "cmp", true
	case ADD:
		return "add", true
	case SUB:
		return "sub", true
	case LEA:
		return "lea", true
	case CLR:
		return "clr", true
	case NOT:
		return "not", true
	case INC:
		return "inc", true
	case DEC:
		return "dec", true
	case JMP:
		return "jmp", true
	case BNE:
		return "bne", true
	case RED:
		return "red", true
	case PRN:
		return "prn", true
	case JSR:
		return "jsr", true
	case RTS:
		return "rts", true
	case STOP:
		return "stop", true
	}
	return "", false
}

// Argc returns the number of operands the given opcode expects.
// Returns -1 if the opcode is not recognized.
func Argc(opcode int) int {
	switch opcode {
	case MOV, CMP, ADD, SUB, LEA:
		return 2
	case CLR, NOT, INC, DEC, JMP, BNE, RED, PRN, JSR:
		return 1
	case RTS, STOP:
		return 0
	}
	return -1
}

// IsMnemonic returns true if name names one of the 16 known instructions.
func IsMnemonic(name string) bool {
	_, _, ok := Opcode(name)
	return ok
}
