package model

import "strings"

// ArgumentList is the ordered token sequence passed to the extraction tool.
// A flag that takes a value is immediately followed by its value token.
type ArgumentList []string

// Has returns true if flag appears as a token
func (a ArgumentList) Has(flag string) bool {
	for _, tok := range a {
		if tok == flag {
			return true
		}
	}
	return false
}

// Value returns the token following the first occurrence of flag
func (a ArgumentList) Value(flag string) (string, bool) {
	for i, tok := range a {
		if tok == flag && i+1 < len(a) {
			return a[i+1], true
		}
	}
	return "", false
}

// Index returns the position of the first occurrence of flag, or -1
func (a ArgumentList) Index(flag string) int {
	for i, tok := range a {
		if tok == flag {
			return i
		}
	}
	return -1
}

// String renders the list as a shell-pasteable line
func (a ArgumentList) String() string {
	parts := make([]string, len(a))
	for i, tok := range a {
		parts[i] = shellQuote(tok)
	}
	return strings.Join(parts, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`*?[]{}()<>|&;#~!") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
