package glsl

import (
	"unicode"
	"unicode/utf8"
)

// Accessor suffixes understood by kernels referencing generated functions.
const (
	suffixNone        = ""
	suffixFlat        = "Flat"
	suffixAtOutCoords = "AtOutCoords"
)

// outputCoordsName is the fixed name of the output coordinate decoder.
const outputCoordsName = "getOutputCoords"

// accessorName derives a generated function name from an input identifier:
// "get" + identifier with its first rune upper-cased + suffix. The mapping
// is deterministic; kernel bodies must reference these exact names.
func accessorName(identifier, suffix string) string {
	return "get" + capitalize(identifier) + suffix
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
