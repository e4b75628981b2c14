// Package symtab implements the symbol table (C4): a unique-name store
// for code/data/entry/external symbols, plus the external-reference
// index consulted by the .ext emitter.
package symtab

import "fmt"

// MaxExternalRefs caps the number of recorded references per external
// symbol name, per spec §4.4.
const MaxExternalRefs = 100

// Table is a per-file symbol table. It is created fresh for every input
// file (§5): nothing here survives across files.
type Table struct {
	symbols     map[string]*Symbol
	externRefs  map[string][]int
	hasEntries  bool
	hasExterns  bool
	macroLookup func(name string) bool
}

// New creates an empty symbol table. macroLookup, if non-nil, is
// consulted by Add to reject a symbol name that collides with a known
// macro name (§3 invariant: a macro name may not coincide with a symbol
// name).
func New(macroLookup func(name string) bool) *Table {
	return &Table{
		symbols:     make(map[string]*Symbol),
		externRefs:  make(map[string][]int),
		macroLookup: macroLookup,
	}
}

// Add inserts a new symbol. Names are matched case-sensitively, like the
// C `strcmp` identifier comparisons this assignment is modeled on: "LOOP"
// and "loop" are distinct symbols. It fails if the name already exists in
// the table or collides with a known macro name.
func (t *Table) Add(name string, address int, kind Kind) error {
	if _, exists := t.symbols[name]; exists {
		return fmt.Errorf("duplicate symbol definition %q", name)
	}
	if t.macroLookup != nil && t.macroLookup(name) {
		return fmt.Errorf("symbol %q collides with macro name", name)
	}

	t.symbols[name] = &Symbol{Name: name, Address: address, Kind: kind}

	switch kind {
	case Entry:
		t.hasEntries = true
	case External:
		t.hasExterns = true
	}

	return nil
}

// Find returns the symbol named name, if any. Matching is case-sensitive.
func (t *Table) Find(name string) (*Symbol, bool) {
	s, ok := t.symbols[name]
	return s, ok
}

// Promote changes an existing symbol's kind to Entry. Returns an error if
// the symbol doesn't exist or is External (External and Entry are
// mutually exclusive, per the §3 invariant).
func (t *Table) Promote(name string) error {
	s, ok := t.Find(name)
	if !ok {
		return fmt.Errorf("undefined symbol %q", name)
	}
	if s.Kind == External {
		return fmt.Errorf("external symbol %q cannot be declared an entry", name)
	}
	s.Kind = Entry
	t.hasEntries = true
	return nil
}

// RebaseData adds offset to the address of every Data symbol. Called once
// the first pass knows the final instruction count, so data symbols sit
// after the code segment in the combined address space.
func (t *Table) RebaseData(offset int) {
	for _, s := range t.symbols {
		if s.Kind == Data {
			s.Address += offset
		}
	}
}

// AddExternalRef appends address to the list of code addresses where name
// was referenced. Creates the entry if absent. Caps at MaxExternalRefs
// references per name; further references are dropped silently. Matching
// is case-sensitive, same as Add/Find.
func (t *Table) AddExternalRef(name string, address int) {
	if len(t.externRefs[name]) >= MaxExternalRefs {
		return
	}
	t.externRefs[name] = append(t.externRefs[name], address)
}

// ExternalRefs returns the recorded addresses for name, in the order they
// were added.
func (t *Table) ExternalRefs(name string) []int {
	return t.externRefs[name]
}

// MarkHasEntries records that the source declared at least one .entry
// directive, independent of whether the named symbol has been (or will
// be) successfully promoted. Mirrors spec §4.5's first-pass behavior for
// .entry: "ignored... except to set has_entries = true".
func (t *Table) MarkHasEntries() {
	t.hasEntries = true
}

// HasEntries returns true if any symbol was added as or promoted to kind
// Entry, or if MarkHasEntries was called.
func (t *Table) HasEntries() bool {
	return t.hasEntries
}

// HasExterns returns true if any symbol is kind External.
func (t *Table) HasExterns() bool {
	return t.hasExterns
}

// All returns every symbol in the table. Order is not significant.
func (t *Table) All() []*Symbol {
	out := make([]*Symbol, 0, len(t.symbols))
	for _, s := range t.symbols {
		out = append(out, s)
	}
	return out
}

// Entries returns every symbol of kind Entry.
func (t *Table) Entries() []*Symbol {
	var out []*Symbol
	for _, s := range t.symbols {
		if s.Kind == Entry {
			out = append(out, s)
		}
	}
	return out
}
