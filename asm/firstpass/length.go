package firstpass

import (
	"fmt"

	"github.com/oscasm/casm/asm/encoder"
	"github.com/oscasm/casm/asm/lex"
)

func errOperandCount(expected, got int) error {
	return fmt.Errorf("expected %d operand(s), got %d", expected, got)
}

// parseOperands splits the operand text of an instruction into its
// source and target operand tokens, per §4.5: split on the first comma;
// a single operand is the source placeholder (it is relocated into the
// target slot at encode time — see encoder.Encode).
func parseOperands(text string) (sourceTok, targetTok string, count int) {
	text = lex.Trim(text)
	if text == "" {
		return "", "", 0
	}
	first, rest, hasComma := lex.SplitFirstComma(text)
	if !hasComma {
		return first, "", 1
	}
	return first, rest, 2
}

// InstructionLen computes the number of words an instruction occupies,
// given its raw operand text and the opcode's expected operand count.
// Returns an error if the operand shapes are invalid or the operand
// count doesn't match expected.
func InstructionLen(operandText string, expected int) (int, error) {
	sourceTok, targetTok, count := parseOperands(operandText)
	if count != expected {
		return 0, errOperandCount(expected, count)
	}

	var source, target *encoder.Operand
	var err error

	if count >= 1 && expected >= 1 {
		source, err = encoder.ParseOperand(sourceTok)
		if err != nil {
			return 0, err
		}
	}
	if count == 2 {
		target, err = encoder.ParseOperand(targetTok)
		if err != nil {
			return 0, err
		}
	}

	// For a 1-operand instruction the encoder treats the sole operand as
	// the target; the length rule (both-register packing) must see it
	// in that slot too.
	if expected == 1 {
		source, target = nil, source
	}

	return encoder.Len(source, target), nil
}
