package object

import (
	"strings"
	"testing"

	"github.com/oscasm/casm/asm/symtab"
)

func TestWriteObject(t *testing.T) {
	symbols := symtab.New(nil)
	p := Program{
		Code:     []uint16{0123, 0456},
		Data:     []uint16{5, 7, 9},
		DataBase: 102,
		Symbols:  symbols,
	}

	var buf strings.Builder
	if err := WriteObject(&buf, p); err != nil {
		t.Fatalf("WriteObject: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6 (header + 2 code + 3 data)", len(lines))
	}
	if lines[0] != "2 3" {
		t.Errorf("header = %q, want %q", lines[0], "2 3")
	}
	if lines[1] != "0100 00123" {
		t.Errorf("line[1] = %q, want %q", lines[1], "0100 00123")
	}
	if lines[3] != "0102 00005" {
		t.Errorf("line[3] = %q, want %q", lines[3], "0102 00005")
	}
}

func TestWriteEntriesOnlyEntryKind(t *testing.T) {
	symbols := symtab.New(nil)
	symbols.Add("LOOP", 100, symtab.Code)
	symbols.Promote("LOOP")

	p := Program{Symbols: symbols}
	var buf strings.Builder
	if err := WriteEntries(&buf, p); err != nil {
		t.Fatalf("WriteEntries: %v", err)
	}

	want := "LOOP 0100\n"
	if buf.String() != want {
		t.Errorf("WriteEntries = %q, want %q", buf.String(), want)
	}
}

func TestWriteExternalsPerReference(t *testing.T) {
	symbols := symtab.New(nil)
	symbols.Add("FOO", 0, symtab.External)
	symbols.AddExternalRef("FOO", 101)
	symbols.AddExternalRef("FOO", 110)

	p := Program{Symbols: symbols}
	var buf strings.Builder
	if err := WriteExternals(&buf, p); err != nil {
		t.Fatalf("WriteExternals: %v", err)
	}

	want := "FOO 0101\nFOO 0110\n"
	if buf.String() != want {
		t.Errorf("WriteExternals = %q, want %q", buf.String(), want)
	}
}

func TestWriteEntriesDeterministicOrder(t *testing.T) {
	symbols := symtab.New(nil)
	symbols.Add("ZEBRA", 105, symtab.Code)
	symbols.Add("ALPHA", 100, symtab.Code)
	symbols.Add("MID", 102, symtab.Code)
	symbols.Promote("ZEBRA")
	symbols.Promote("ALPHA")
	symbols.Promote("MID")

	p := Program{Symbols: symbols}

	want := "ALPHA 0100\nMID 0102\nZEBRA 0105\n"
	for i := 0; i < 5; i++ {
		var buf strings.Builder
		if err := WriteEntries(&buf, p); err != nil {
			t.Fatalf("WriteEntries: %v", err)
		}
		if buf.String() != want {
			t.Fatalf("run %d: WriteEntries = %q, want %q (order must be stable across runs, not map iteration order)", i, buf.String(), want)
		}
	}
}

func TestWriteExternalsDeterministicOrder(t *testing.T) {
	symbols := symtab.New(nil)
	symbols.Add("ZEBRA", 0, symtab.External)
	symbols.Add("ALPHA", 0, symtab.External)
	symbols.AddExternalRef("ZEBRA", 103)
	symbols.AddExternalRef("ALPHA", 101)
	symbols.AddExternalRef("ZEBRA", 107)

	p := Program{Symbols: symbols}

	want := "ALPHA 0101\nZEBRA 0103\nZEBRA 0107\n"
	for i := 0; i < 5; i++ {
		var buf strings.Builder
		if err := WriteExternals(&buf, p); err != nil {
			t.Fatalf("WriteExternals: %v", err)
		}
		if buf.String() != want {
			t.Fatalf("run %d: WriteExternals = %q, want %q (order must be stable across runs, not map iteration order)", i, buf.String(), want)
		}
	}
}

func TestHasExternalReferences(t *testing.T) {
	symbols := symtab.New(nil)
	symbols.Add("FOO", 0, symtab.External)
	if HasExternalReferences(symbols) {
		t.Error("no references recorded yet, should be false")
	}
	symbols.AddExternalRef("FOO", 101)
	if !HasExternalReferences(symbols) {
		t.Error("a recorded reference should make this true")
	}
}
