// Package secondpass implements the second pass (C7): it re-scans the
// macro-expanded source, resolves every symbol reference against the
// table the first pass built, and encodes each instruction into its
// final word form. Code and data words are assembled into independent,
// in-memory streams (no temporary file, per the redesign notes) and
// concatenated by the caller, with data based at the final IC.
package secondpass

import (
	"strings"

	"github.com/oscasm/casm/asm/encoder"
	"github.com/oscasm/casm/asm/errlog"
	"github.com/oscasm/casm/asm/lex"
	"github.com/oscasm/casm/asm/symtab"
	"github.com/oscasm/casm/isa"
)

// Result holds the fully encoded program.
type Result struct {
	Code []uint16 // words at addresses [100, 100+len(Code))
	Data []uint16 // words at addresses [dataBase, dataBase+len(Data))
}

// Run re-scans source and produces the encoded code and data streams.
// Diagnostics are logged to errs; the caller must check errs.Len() grew
// by zero (relative to its state on entry) before emitting output files.
func Run(source, filename string, symbols *symtab.Table, errs *errlog.Sink) Result {
	var result Result

	instrAddr := isa.FirstAddress

	lines := strings.Split(source, "\n")
	for i, raw := range lines {
		lineNo := i + 1
		line := lex.Trim(lex.NormalizeWhitespace(lex.StripComment(raw)))
		if line == "" {
			continue
		}

		_, rest, hasLabel := extractLabel(line)
		if hasLabel {
			line = rest
		}

		op, operandText := lex.SplitWord(line)
		if op == "" {
			continue
		}

		switch strings.ToLower(op) {
		case ".data":
			result.Data = append(result.Data, encodeData(operandText)...)

		case ".string":
			result.Data = append(result.Data, encodeString(operandText)...)

		case ".entry":
			name := lex.Trim(operandText)
			if name == "" {
				errs.Log(errlog.Syntax, filename, lineNo, "missing .entry operand")
				continue
			}
			if sym, ok := symbols.Find(name); !ok {
				errs.Log(errlog.Symbol, filename, lineNo, "undefined entry symbol %q", name)
			} else if sym.Kind == symtab.External {
				errs.Log(errlog.Symbol, filename, lineNo, "entry symbol %q is external", name)
			} else if err := symbols.Promote(name); err != nil {
				errs.Log(errlog.Symbol, filename, lineNo, "%s", err)
			}

		case ".extern":
			// Handled in the first pass.

		default:
			opcode, expected, ok := isa.Opcode(op)
			if !ok {
				// Already reported by the first pass; don't double-log.
				continue
			}
			words, n := encodeInstruction(opcode, expected, operandText, instrAddr, symbols, filename, lineNo, errs)
			result.Code = append(result.Code, words...)
			instrAddr += n
		}
	}

	return result
}

func extractLabel(line string) (label, rest string, hasLabel bool) {
	word, tail := lex.SplitWord(line)
	if !strings.HasSuffix(word, ":") {
		return "", line, false
	}
	return word[:len(word)-1], tail, true
}

func encodeInstruction(opcode, expected int, operandText string, addr int, symbols *symtab.Table, filename string, lineNo int, errs *errlog.Sink) ([]uint16, int) {
	sourceTok, targetTok, count := splitOperands(operandText)
	if count != expected {
		errs.Log(errlog.Syntax, filename, lineNo, "expected %d operand(s), got %d", expected, count)
		return nil, 0
	}

	var source, target *encoder.Operand
	var err error

	if count >= 1 {
		source, err = encoder.ParseOperand(sourceTok)
		if err != nil {
			errs.Log(errlog.Syntax, filename, lineNo, "%s", err)
			return nil, 0
		}
	}
	if count == 2 {
		target, err = encoder.ParseOperand(targetTok)
		if err != nil {
			errs.Log(errlog.Syntax, filename, lineNo, "%s", err)
			return nil, 0
		}
	}

	resolve := func(name string) (int, bool, bool) {
		sym, ok := symbols.Find(name)
		if !ok {
			return 0, false, false
		}
		return sym.Address, sym.Kind == symtab.External, true
	}

	words, err := encoder.Encode(opcode, expected, source, target, resolve)
	if err != nil {
		errs.Log(errlog.Semantic, filename, lineNo, "%s", err)
		return nil, 0
	}

	out := make([]uint16, len(words))
	for i, w := range words {
		out[i] = w.Value
		if w.External != "" {
			symbols.AddExternalRef(w.External, addr+i)
		}
	}

	return out, len(words)
}

// splitOperands mirrors firstpass's operand split (kept independent so
// this package does not depend on package firstpass).
func splitOperands(text string) (sourceTok, targetTok string, count int) {
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

func encodeData(operandText string) []uint16 {
	operands := lex.SplitOperands(operandText)
	out := make([]uint16, 0, len(operands))
	for _, o := range operands {
		n := parseSignedDecimal(o)
		out = append(out, uint16(n&0x7FFF))
	}
	return out
}

func encodeString(operandText string) []uint16 {
	operandText = lex.Trim(operandText)
	if len(operandText) < 2 {
		return nil
	}
	body := operandText[1 : len(operandText)-1]
	out := make([]uint16, 0, len(body)+1)
	for _, r := range body {
		out = append(out, uint16(r))
	}
	return append(out, 0)
}

func parseSignedDecimal(s string) int64 {
	neg := false
	if strings.HasPrefix(s, "#") {
		s = s[1:]
	}
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	var v int64
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		v = v*10 + int64(r-'0')
	}
	if neg {
		v = -v
	}
	return v
}
