package encoder

import (
	"testing"

	"github.com/oscasm/casm/isa"
)

func TestParseOperandImmediate(t *testing.T) {
	op, err := ParseOperand("#5")
	if err != nil {
		t.Fatalf("ParseOperand: %v", err)
	}
	if op.Mode != isa.Immediate || op.Value != 5 {
		t.Errorf("op = %+v", op)
	}
}

func TestParseOperandNegativeImmediate(t *testing.T) {
	op, err := ParseOperand("#-5")
	if err != nil {
		t.Fatalf("ParseOperand: %v", err)
	}
	if op.Mode != isa.Immediate || op.Value != -5 {
		t.Errorf("op = %+v", op)
	}
}

func TestParseOperandRegIndirect(t *testing.T) {
	op, err := ParseOperand("*r3")
	if err != nil {
		t.Fatalf("ParseOperand: %v", err)
	}
	if op.Mode != isa.RegIndirect || op.Value != 3 {
		t.Errorf("op = %+v", op)
	}
}

func TestParseOperandRegDirect(t *testing.T) {
	op, err := ParseOperand("r7")
	if err != nil {
		t.Fatalf("ParseOperand: %v", err)
	}
	if op.Mode != isa.RegDirect || op.Value != 7 {
		t.Errorf("op = %+v", op)
	}
}

func TestParseOperandDirect(t *testing.T) {
	op, err := ParseOperand("LOOP")
	if err != nil {
		t.Fatalf("ParseOperand: %v", err)
	}
	if op.Mode != isa.Direct || op.Symbol != "LOOP" {
		t.Errorf("op = %+v", op)
	}
}

func TestParseOperandMalformed(t *testing.T) {
	cases := []string{"", "*r9", "1LOOP", "#abc"}
	for _, c := range cases {
		if _, err := ParseOperand(c); err == nil {
			t.Errorf("ParseOperand(%q) should fail", c)
		}
	}
}
