package macro

import (
	"bufio"
	"io"
	"strings"

	"github.com/oscasm/casm/asm/errlog"
	"github.com/oscasm/casm/asm/lex"
)

const reservedMacroWord = "macr"
const endMacroWord = "endmacr"

// Expand reads source lines from r, expands every macr/endmacr block into
// the returned Table, and returns the expanded source (the ".am" contents)
// with every macro invocation replaced by its stored body and every
// macr/endmacr line removed. Diagnostics are logged to errs; Expand
// itself never returns an error — ok is false if any diagnostic was
// logged, and callers consult it to decide whether the expanded output
// may be consumed (spec §4.3).
func Expand(r io.Reader, filename string, errs *errlog.Sink) (expanded string, table *Table, ok bool) {
	table = NewTable()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	var out strings.Builder
	ok = true
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()

		if len(raw) > lex.MaxLineLength {
			errs.Log(errlog.Syntax, filename, lineNo, "line exceeds %d characters", lex.MaxLineLength)
			ok = false
			continue
		}

		trimmed := lex.Trim(lex.StripComment(raw))

		if trimmed == endMacroWord {
			// endmacr outside a macro definition: drop silently (§4.3.2).
			continue
		}

		word, rest := lex.SplitWord(trimmed)
		if strings.ToLower(word) == reservedMacroWord {
			name := lex.Trim(rest)
			if !isValidMacroName(name) {
				errs.Log(errlog.Macro, filename, lineNo, "illegal macro name %q", name)
				ok = false
				// Still consume the body so the scan doesn't desync.
				consumeBody(scanner, &lineNo)
				continue
			}

			body, closed := readBody(scanner, &lineNo)
			if !closed {
				errs.Log(errlog.Macro, filename, lineNo, "macro %q missing endmacr", name)
				ok = false
			}
			table.Define(name, body)
			continue
		}

		if table.Has(trimmed) {
			body, _ := table.Lookup(trimmed)
			for _, b := range body {
				out.WriteString(b)
				out.WriteByte('\n')
			}
			continue
		}

		out.WriteString(raw)
		out.WriteByte('\n')
	}

	if err := scanner.Err(); err != nil {
		errs.Log(errlog.FileInput, filename, lineNo, "%v", err)
		ok = false
	}

	return out.String(), table, ok
}

// isValidMacroName validates a macro name against the identifier rules
// (C1) and rejects the reserved words "macr"/"endmacr" in addition to
// mnemonics and register names (already covered by lex.IsLabel).
func isValidMacroName(name string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	if lower == reservedMacroWord || lower == endMacroWord {
		return false
	}
	return lex.IsLabel(name)
}

// readBody consumes raw lines, untrimmed, until a line whose trimmed
// content is exactly "endmacr" (which is itself consumed but not
// included in the returned body). Returns closed=false if the scanner
// runs out of input first.
func readBody(scanner *bufio.Scanner, lineNo *int) (body []string, closed bool) {
	for scanner.Scan() {
		*lineNo++
		raw := scanner.Text()
		if lex.Trim(raw) == endMacroWord {
			return body, true
		}
		body = append(body, raw)
	}
	return body, false
}

// consumeBody skips a malformed macro's body without recording it, so an
// invalid-name error doesn't cascade into spurious errors on every line
// of the macro's body.
func consumeBody(scanner *bufio.Scanner, lineNo *int) {
	for scanner.Scan() {
		*lineNo++
		if lex.Trim(scanner.Text()) == endMacroWord {
			return
		}
	}
}
