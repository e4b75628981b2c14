package isa

// FirstAddress is the architectural base address: the first instruction
// in a program is always placed here.
const FirstAddress = 100

// Mode defines an operand's addressing mode.
type Mode int

// Known addressing modes. Absent names the "no operand" value of the
// mode field; the encoder does not use it and represents an empty
// operand slot as a nil *encoder.Operand instead.
const (
	Immediate   Mode = 0 // #N
	Direct      Mode = 1 // NAME
	RegIndirect Mode = 2 // *rK
	RegDirect   Mode = 3 // rK
	Absent      Mode = 4
)

// ARE is the 3-bit Absolute/Relocatable/External relocation tag attached
// to every operand word.
type ARE int

// Known A.R.E. values. Other bit patterns are unused.
const (
	External    ARE = 1
	Relocatable ARE = 2
	Absolute    ARE = 4
)
