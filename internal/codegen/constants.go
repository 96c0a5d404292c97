// Package codegen provides code generation helpers and constants.
package codegen

import (
	"fmt"
	"strings"
	"unicode"
)

// Variable names used in generated code
const (
	InputName  = "input"
	StateName  = "state"
	NextName   = "next"
	SymbolName = "r"
	OKName     = "ok"
)

// Table names for the generated automaton, prefixed with the lower-cased
// type name.
func TransitionsName(name string) string { return LowerFirst(name) + "Transitions" }
func AcceptingName(name string) string   { return LowerFirst(name) + "Accepting" }
func StateNamesName(name string) string  { return LowerFirst(name) + "StateNames" }
func RunName(name string) string         { return LowerFirst(name) + "Run" }

// CompiledName is the name of the ready-to-use matcher variable.
func CompiledName(name string) string {
	return fmt.Sprintf("Compiled%s", name)
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}

// Identifier turns an arbitrary label into an exported Go identifier,
// e.g. "my-automaton.json" becomes "MyAutomatonJson".
func Identifier(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) || r > unicode.MaxASCII {
			upper = true
			continue
		}
		if b.Len() == 0 && unicode.IsDigit(r) {
			b.WriteString("A")
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "Automaton"
	}
	return b.String()
}
