package isa

import "strings"

// IsRegister returns true if name is one of r0..r7.
func IsRegister(name string) bool {
	return RegisterIndex(name) >= 0
}

// RegisterIndex returns the register number for name, 0 through 7.
// Returns -1 if name is not a known register.
func RegisterIndex(name string) int {
	switch strings.ToLower(name) {
	case "r0":
		return 0
	case "r1":
		return 1
	case "r2":
		return 2
	case "r3":
		return 3
	case "r4":
		return 4
	case "r5":
		return 5
	case "r6":
		return 6
	case "r7":
		return 7
	}
	return -1
}

// RegisterName returns the canonical name for register n.
// Returns "" if n is out of range.
func RegisterName(n int) string {
	if n < 0 || n > 7 {
		return ""
	}
	return "r" + string(rune('0'+n))
}
