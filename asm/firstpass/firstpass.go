// Package firstpass implements the first pass (C5): it builds the symbol
// table and computes instruction/data sizes over the macro-expanded
// source, without resolving any operand addresses.
package firstpass

import (
	"strings"

	"github.com/oscasm/casm/asm/errlog"
	"github.com/oscasm/casm/asm/lex"
	"github.com/oscasm/casm/asm/macro"
	"github.com/oscasm/casm/asm/symtab"
	"github.com/oscasm/casm/isa"
)

// Result is everything the second pass needs from the first.
type Result struct {
	Symbols *symtab.Table
	IC      int // final instruction counter
	DC      int // final (pre-rebase) data counter
}

// Run scans the expanded source once, populating a fresh symbol table and
// sizing every instruction and data directive. It logs diagnostics to
// errs and keeps scanning after an error (§7); the caller must check that
// errs.Len() did not grow during Run before handing off to the second pass.
func Run(source, filename string, errs *errlog.Sink, macros *macro.Table) Result {
	table := symtab.New(macros.Has)

	ic := isa.FirstAddress
	dc := 0

	lines := strings.Split(source, "\n")
	for i, raw := range lines {
		lineNo := i + 1
		line := lex.Trim(lex.NormalizeWhitespace(lex.StripComment(raw)))
		if line == "" {
			continue
		}

		label, rest, hasLabel := extractLabel(line)
		if hasLabel && !lex.IsLabel(label) {
			errs.Log(errlog.Syntax, filename, lineNo, "illegal label %q", label)
			continue
		}

		op, operandText := lex.SplitWord(rest)
		if op == "" {
			errs.Log(errlog.Syntax, filename, lineNo, "missing operation")
			continue
		}

		switch strings.ToLower(op) {
		case ".data":
			dc = handleData(table, label, hasLabel, operandText, dc, filename, lineNo, errs)

		case ".string":
			dc = handleString(table, label, hasLabel, operandText, dc, filename, lineNo, errs)

		case ".entry":
			table.MarkHasEntries()

		case ".extern":
			handleExtern(table, operandText, filename, lineNo, errs)

		default:
			_, expected, ok := isa.Opcode(op)
			if !ok {
				errs.Log(errlog.Syntax, filename, lineNo, "unknown operation %q", op)
				continue
			}
			ic = handleInstruction(table, label, hasLabel, operandText, expected, ic, filename, lineNo, errs)
		}
	}

	table.RebaseData(ic)

	return Result{Symbols: table, IC: ic, DC: dc}
}

// extractLabel detects an optional leading "NAME:" token. Returns the bare
// name (without colon), the remainder of the line, and whether a label
// token was present at all (a malformed one is still reported as present
// so the caller can raise "illegal label").
func extractLabel(line string) (label, rest string, hasLabel bool) {
	word, tail := lex.SplitWord(line)
	if !strings.HasSuffix(word, ":") {
		return "", line, false
	}
	return word[:len(word)-1], tail, true
}

func handleData(table *symtab.Table, label string, hasLabel bool, operandText string, dc int, filename string, lineNo int, errs *errlog.Sink) int {
	operands := lex.SplitOperands(operandText)
	if len(operands) == 0 {
		errs.Log(errlog.Syntax, filename, lineNo, "missing .data operands")
		return dc
	}
	for _, o := range operands {
		if !lex.IsNumber(o) {
			errs.Log(errlog.Syntax, filename, lineNo, "invalid .data operand %q", o)
			return dc
		}
	}

	if hasLabel {
		if err := table.Add(label, dc, symtab.Data); err != nil {
			errs.Log(errlog.Symbol, filename, lineNo, "%s", err)
		}
	}

	return dc + len(operands)
}

func handleString(table *symtab.Table, label string, hasLabel bool, operandText string, dc int, filename string, lineNo int, errs *errlog.Sink) int {
	operandText = lex.Trim(operandText)
	if len(operandText) < 2 || operandText[0] != '"' || operandText[len(operandText)-1] != '"' ||
		strings.Count(operandText[1:len(operandText)-1], "\"") > 0 {
		errs.Log(errlog.Syntax, filename, lineNo, "malformed string literal %q", operandText)
		return dc
	}

	if hasLabel {
		if err := table.Add(label, dc, symtab.Data); err != nil {
			errs.Log(errlog.Symbol, filename, lineNo, "%s", err)
		}
	}

	return dc + (len(operandText)-2) + 1
}

func handleExtern(table *symtab.Table, operandText string, filename string, lineNo int, errs *errlog.Sink) {
	names := lex.SplitOperands(operandText)
	if len(names) == 0 {
		errs.Log(errlog.Syntax, filename, lineNo, "missing .extern operand")
		return
	}
	for _, name := range names {
		if !lex.IsLabel(name) {
			errs.Log(errlog.Syntax, filename, lineNo, "illegal external name %q", name)
			continue
		}
		if err := table.Add(name, 0, symtab.External); err != nil {
			errs.Log(errlog.Symbol, filename, lineNo, "%s", err)
		}
	}
}

func handleInstruction(table *symtab.Table, label string, hasLabel bool, operandText string, expected, ic int, filename string, lineNo int, errs *errlog.Sink) int {
	length, err := InstructionLen(operandText, expected)
	if err != nil {
		errs.Log(errlog.Syntax, filename, lineNo, "%s", err)
		return ic
	}

	if hasLabel {
		if err := table.Add(label, ic, symtab.Code); err != nil {
			errs.Log(errlog.Symbol, filename, lineNo, "%s", err)
		}
	}

	return ic + length
}
