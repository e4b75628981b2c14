// Package macro implements the macro pre-processor (C3): it expands
// argument-free, non-nested macr/endmacr blocks into a flat, expanded
// source, exactly as spec.md §4.3 describes.
package macro

// Table maps a macro name to its ordered body lines, captured verbatim
// (untrimmed) between "macr NAME" and "endmacr". Lifetime: created by
// Expand, consulted once by the first pass for name-collision checks,
// then discarded before the second pass runs (see asm.AssembleFile).
type Table struct {
	bodies map[string][]string
}

// NewTable creates an empty macro table.
func NewTable() *Table {
	return &Table{bodies: make(map[string][]string)}
}

// Define records name's body. Overwrites any prior definition of the same
// name — the pre-processor rejects invalid names before calling this, but
// does not reject a second definition of an existing name.
func (t *Table) Define(name string, body []string) {
	t.bodies[name] = body
}

// Lookup returns the body lines for name and whether name is defined.
func (t *Table) Lookup(name string) ([]string, bool) {
	b, ok := t.bodies[name]
	return b, ok
}

// Has returns true if name is a known macro.
func (t *Table) Has(name string) bool {
	_, ok := t.bodies[name]
	return ok
}
