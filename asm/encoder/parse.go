package encoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oscasm/casm/asm/lex"
	"github.com/oscasm/casm/isa"
)

// ParseOperand classifies and parses a single operand token into its
// addressing mode and value, per the four syntaxes in spec §4.6:
// "#N" (Immediate), "*rK" (RegIndirect), "rK" (RegDirect), or a bare
// identifier (Direct).
func ParseOperand(token string) (*Operand, error) {
	token = lex.Trim(token)
	if token == "" {
		return nil, fmt.Errorf("empty operand")
	}

	if strings.HasPrefix(token, "#") {
		n, err := strconv.Atoi(token[1:])
		if err != nil {
			return nil, fmt.Errorf("invalid immediate value %q", token)
		}
		return &Operand{Mode: isa.Immediate, Value: n}, nil
	}

	if strings.HasPrefix(token, "*") {
		reg := token[1:]
		if !isa.IsRegister(reg) {
			return nil, fmt.Errorf("invalid register-indirect operand %q", token)
		}
		return &Operand{Mode: isa.RegIndirect, Value: isa.RegisterIndex(reg)}, nil
	}

	if isa.IsRegister(token) {
		return &Operand{Mode: isa.RegDirect, Value: isa.RegisterIndex(token)}, nil
	}

	if lex.IsLabel(token) {
		return &Operand{Mode: isa.Direct, Symbol: token}, nil
	}

	return nil, fmt.Errorf("malformed operand %q", token)
}
