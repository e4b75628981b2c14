package lex

import (
	"strings"

	"github.com/oscasm/casm/isa"
)

// MaxLabelLength is the maximum length of a label or symbol name.
const MaxLabelLength = 31

// directives is the fixed set of recognized directive keywords.
var directives = map[string]bool{
	".data":   true,
	".string": true,
	".entry":  true,
	".extern": true,
}

// IsDirective returns true if word is exactly one of the four known
// directive keywords, compared case-insensitively.
func IsDirective(word string) bool {
	return directives[strings.ToLower(word)]
}

// IsRegister returns true if word is exactly r0..r7, compared
// case-insensitively (so "R7" is also a register).
func IsRegister(word string) bool {
	return isa.IsRegister(word)
}

// IsNumber returns true if word is an optional leading '#', an optional
// sign, then one or more decimal digits.
func IsNumber(word string) bool {
	if word == "" {
		return false
	}
	if word[0] == '#' {
		word = word[1:]
	}
	if word == "" {
		return false
	}
	if word[0] == '+' || word[0] == '-' {
		word = word[1:]
	}
	if word == "" {
		return false
	}
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsLabel returns true if name is a valid label/symbol identifier: it is
// non-empty, no longer than MaxLabelLength, begins with an ASCII letter,
// continues with alphanumerics only, and is neither a register name nor
// a reserved mnemonic.
func IsLabel(name string) bool {
	if name == "" || len(name) > MaxLabelLength {
		return false
	}

	first := name[0]
	if !isAlpha(first) {
		return false
	}

	for i := 1; i < len(name); i++ {
		if !isAlnum(name[i]) {
			return false
		}
	}

	if IsRegister(name) || isa.IsMnemonic(name) {
		return false
	}

	return true
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlnum(b byte) bool {
	return isAlpha(b) || (b >= '0' && b <= '9')
}
