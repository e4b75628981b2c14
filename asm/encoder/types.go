package encoder

import "github.com/oscasm/casm/isa"

// Operand is a decoded operand: one of Immediate, Direct (symbol
// reference), RegIndirect, or RegDirect. A nil *Operand represents the
// Absent sentinel (no operand in that slot).
type Operand struct {
	Mode   isa.Mode
	Value  int    // immediate literal, or register index for Reg* modes
	Symbol string // symbol name, for Direct mode
}

// Word is one encoded output word together with an optional pending
// external-symbol reference. Callers (the second pass) register the
// reference's address with the symbol table once they know the word's
// absolute address.
type Word struct {
	Value    uint16
	External string // symbol name if this word is an unresolved external reference, else ""
}

// Resolver looks up a symbol's address. isExternal is true if the symbol
// was declared via .extern (its address is always 0 and it must be
// encoded as an external reference rather than a relocatable address).
// ok is false if the symbol is undefined.
type Resolver func(name string) (addr int, isExternal bool, ok bool)
