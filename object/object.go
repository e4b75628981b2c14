// Package object implements the three output emitters described in
// spec.md §6: the .ob object listing, the .ent entry index, and the
// .ext external-reference index. Each is a thin, line-oriented dump —
// the "on-disk formatting of the final output files" spec.md names as
// an external collaborator rather than core assembler logic.
//
// The shape mirrors the teacher's ar.Archive.Save: a single entry point
// per file, writing through a buffered io.Writer. Write errors are returned
// unwrapped; the caller (asm.AssembleFile) wraps them with
// github.com/pkg/errors at the OS boundary. Unlike the teacher's gzip
// binary archive, these formats are plain ASCII text and there is no
// corresponding Load — spec.md's Non-goals rule out a loader entirely.
package object

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/oscasm/casm/asm/symtab"
	"github.com/oscasm/casm/isa"
)

// Program is the fully assembled program ready for emission.
type Program struct {
	Code     []uint16 // words at addresses [100, 100+len(Code))
	Data     []uint16 // words at addresses [DataBase, DataBase+len(Data))
	DataBase int
	Symbols  *symtab.Table
}

// WriteObject writes the .ob listing: a header line "<codeWords> <dataWords>"
// followed by one "<ADDR> <WORD>" line per word, code first then data, in
// ascending address order.
func WriteObject(w io.Writer, p Program) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d %d\n", len(p.Code), len(p.Data)); err != nil {
		return err
	}

	addr := isa.FirstAddress
	for _, word := range p.Code {
		if _, err := fmt.Fprintf(bw, "%04d %05o\n", addr, word); err != nil {
			return err
		}
		addr++
	}

	addr = p.DataBase
	for _, word := range p.Data {
		if _, err := fmt.Fprintf(bw, "%04d %05o\n", addr, word); err != nil {
			return err
		}
		addr++
	}

	return bw.Flush()
}

// WriteEntries writes the .ent index: one "<NAME> <4-digit address>" line
// per symbol of kind Entry, in ascending address order. Callers should
// only invoke this when p.Symbols.HasEntries() is true (spec: emitted
// only if the file defines at least one entry).
//
// Map iteration order is randomized per process, so the symbols are
// sorted here before emission — otherwise two runs of the same input
// could emit the same lines in different order, violating the
// determinism invariant (spec §8: re-running on the same input produces
// byte-identical output files).
func WriteEntries(w io.Writer, p Program) error {
	entries := p.Symbols.Entries()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Address != entries[j].Address {
			return entries[i].Address < entries[j].Address
		}
		return entries[i].Name < entries[j].Name
	})

	bw := bufio.NewWriter(w)
	for _, sym := range entries {
		if _, err := fmt.Fprintf(bw, "%s %04d\n", sym.Name, sym.Address); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteExternals writes the .ext index: one "<NAME> <4-digit address>"
// line per recorded *reference* (not per symbol) to an external symbol,
// in ascending address order (see WriteEntries for why sorting is
// required for determinism). Callers should only invoke this when the
// table has any externals with recorded references (spec: emitted only
// if the file references at least one external).
func WriteExternals(w io.Writer, p Program) error {
	type ref struct {
		name string
		addr int
	}

	var refs []ref
	for _, sym := range p.Symbols.All() {
		if sym.Kind != symtab.External {
			continue
		}
		for _, addr := range p.Symbols.ExternalRefs(sym.Name) {
			refs = append(refs, ref{name: sym.Name, addr: addr})
		}
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].addr != refs[j].addr {
			return refs[i].addr < refs[j].addr
		}
		return refs[i].name < refs[j].name
	})

	bw := bufio.NewWriter(w)
	for _, r := range refs {
		if _, err := fmt.Fprintf(bw, "%s %04d\n", r.name, r.addr); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// HasExternalReferences returns true if at least one external symbol in
// symbols has a recorded reference address.
func HasExternalReferences(symbols *symtab.Table) bool {
	for _, sym := range symbols.All() {
		if sym.Kind == symtab.External && len(symbols.ExternalRefs(sym.Name)) > 0 {
			return true
		}
	}
	return false
}
