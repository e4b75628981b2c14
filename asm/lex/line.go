// Package lex implements the lexical utilities shared by every pass:
// comment stripping, whitespace normalization, trimming, and token
// classification. Every function here is pure — it returns a freshly
// built string rather than mutating its input, per the redesign notes
// (the source this spec is drawn from mutates line buffers via strtok;
// this port never does).
package lex

import "strings"

// MaxLineLength is the maximum number of characters permitted on a
// logical source line, excluding the trailing newline.
const MaxLineLength = 80

// StripComment truncates line at the first ';', dropping the comment and
// everything after it. A line with no ';' is returned unchanged.
func StripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i]
	}
	return line
}

// Trim removes leading and trailing whitespace.
func Trim(line string) string {
	return strings.TrimSpace(line)
}

// NormalizeWhitespace collapses runs of whitespace to a single space and
// removes any space adjacent to a comma, so that "a ,  b" and "a,b" and
// "a , b" all normalize to "a,b".
func NormalizeWhitespace(line string) string {
	var b strings.Builder
	b.Grow(len(line))

	inSpace := false
	for _, r := range line {
		if r == ' ' || r == '\t' {
			inSpace = true
			continue
		}
		if inSpace {
			// Drop the pending space if either side of it is a comma.
			if r != ',' && !endsWithComma(b.String()) {
				b.WriteByte(' ')
			}
			inSpace = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

func endsWithComma(s string) bool {
	return len(s) > 0 && s[len(s)-1] == ','
}

// SplitOperands splits a comma-separated operand list into its trimmed
// parts. An empty (or all-whitespace) input yields nil.
func SplitOperands(operands string) []string {
	operands = Trim(operands)
	if operands == "" {
		return nil
	}
	parts := strings.Split(operands, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = Trim(p)
	}
	return out
}

// SplitFirstComma splits operands into the text before and after the
// first comma. If there is no comma, rest is "" and ok is false.
func SplitFirstComma(operands string) (first, rest string, ok bool) {
	i := strings.IndexByte(operands, ',')
	if i < 0 {
		return Trim(operands), "", false
	}
	return Trim(operands[:i]), Trim(operands[i+1:]), true
}

// SplitWord splits line into its first whitespace-delimited word and the
// (trimmed) remainder.
func SplitWord(line string) (word, rest string) {
	line = Trim(line)
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], Trim(line[i+1:])
}
