package symtab

import "testing"

func noMacros(string) bool { return false }

func TestAddAndFind(t *testing.T) {
	tbl := New(noMacros)
	if err := tbl.Add("LOOP", 100, Code); err != nil {
		t.Fatalf("Add: %v", err)
	}
	sym, ok := tbl.Find("LOOP")
	if !ok || sym.Address != 100 || sym.Kind != Code {
		t.Errorf("Find = %+v, %v", sym, ok)
	}
}

func TestFindIsCaseSensitive(t *testing.T) {
	tbl := New(noMacros)
	tbl.Add("LOOP", 100, Code)
	if _, ok := tbl.Find("loop"); ok {
		t.Error("Find(\"loop\") should not match symbol \"LOOP\" — names are case-sensitive")
	}
	if err := tbl.Add("loop", 200, Data); err != nil {
		t.Errorf("Add(\"loop\") should succeed alongside distinct symbol \"LOOP\": %v", err)
	}
}

func TestAddDuplicate(t *testing.T) {
	tbl := New(noMacros)
	tbl.Add("LOOP", 100, Code)
	if err := tbl.Add("LOOP", 200, Data); err == nil {
		t.Error("duplicate symbol should fail")
	}
}

func TestAddCollidesWithMacro(t *testing.T) {
	tbl := New(func(name string) bool { return name == "M" })
	if err := tbl.Add("M", 100, Code); err == nil {
		t.Error("symbol colliding with macro name should fail")
	}
	if err := tbl.Add("m", 100, Code); err != nil {
		t.Errorf("symbol \"m\" should not collide with macro \"M\" (case-sensitive): %v", err)
	}
}

func TestPromote(t *testing.T) {
	tbl := New(noMacros)
	tbl.Add("LOOP", 100, Code)
	if err := tbl.Promote("LOOP"); err != nil {
		t.Fatalf("Promote: %v", err)
	}
	sym, _ := tbl.Find("LOOP")
	if sym.Kind != Entry {
		t.Errorf("Kind = %v, want Entry", sym.Kind)
	}
	if !tbl.HasEntries() {
		t.Error("HasEntries() should be true")
	}
}

func TestPromoteExternalFails(t *testing.T) {
	tbl := New(noMacros)
	tbl.Add("FOO", 0, External)
	if err := tbl.Promote("FOO"); err == nil {
		t.Error("promoting an external symbol should fail")
	}
}

func TestPromoteUndefinedFails(t *testing.T) {
	tbl := New(noMacros)
	if err := tbl.Promote("NOPE"); err == nil {
		t.Error("promoting an undefined symbol should fail")
	}
}

func TestRebaseData(t *testing.T) {
	tbl := New(noMacros)
	tbl.Add("CODE", 100, Code)
	tbl.Add("DATA", 0, Data)
	tbl.RebaseData(105)

	code, _ := tbl.Find("CODE")
	data, _ := tbl.Find("DATA")
	if code.Address != 100 {
		t.Errorf("code address changed: %d", code.Address)
	}
	if data.Address != 105 {
		t.Errorf("data address = %d, want 105", data.Address)
	}
}

func TestExternalRefsCap(t *testing.T) {
	tbl := New(noMacros)
	tbl.Add("FOO", 0, External)
	for i := 0; i < MaxExternalRefs+10; i++ {
		tbl.AddExternalRef("FOO", 100+i)
	}
	if n := len(tbl.ExternalRefs("FOO")); n != MaxExternalRefs {
		t.Errorf("ExternalRefs len = %d, want %d", n, MaxExternalRefs)
	}
}

func TestMarkHasEntries(t *testing.T) {
	tbl := New(noMacros)
	tbl.MarkHasEntries()
	if !tbl.HasEntries() {
		t.Error("MarkHasEntries should set HasEntries")
	}
}
