package errlog

import (
	"strings"
	"testing"
)

func TestSinkLogAndCapacity(t *testing.T) {
	s := New()
	if !s.Empty() {
		t.Fatal("new sink should be empty")
	}

	s.Log(Syntax, "a.as", 3, "bad token %q", "xyz")
	if s.Empty() || s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}

	for i := 0; i < Capacity+10; i++ {
		s.Log(Semantic, "a.as", i, "overflow")
	}
	if s.Len() != Capacity {
		t.Errorf("Len() = %d, want capped at %d", s.Len(), Capacity)
	}
}

func TestSinkSummary(t *testing.T) {
	s := New()
	s.Log(Symbol, "a.as", 5, "duplicate symbol %q", "LOOP")

	var buf strings.Builder
	s.Summary(&buf)

	got := buf.String()
	if !strings.Contains(got, "LOOP") || !strings.Contains(got, "Symbol") || !strings.Contains(got, "a.as:5") {
		t.Errorf("Summary() = %q, missing expected content", got)
	}
}

func TestSinkSummaryEmpty(t *testing.T) {
	s := New()
	var buf strings.Builder
	s.Summary(&buf)
	if buf.Len() != 0 {
		t.Errorf("Summary() of empty sink should write nothing, got %q", buf.String())
	}
}
