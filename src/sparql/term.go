package sparql

import "strings"

// indentUnit is one level of indentation in rendered query text.
const indentUnit = "   "

// Term is a single SPARQL syntax construct that can render itself to a
// fragment of query text. Build is pure: it never mutates the term and may
// be called any number of times.
type Term interface {
	// Build returns the SPARQL representation of the term. On failure it
	// returns an empty string and a *BuildError naming the component.
	Build() (string, error)
}

// Raw is a literal query fragment used verbatim wherever a Term is expected,
// e.g. a variable reference or a quoted literal inside a BIND value.
type Raw string

// Build implements the Term interface for Raw.
func (r Raw) Build() (string, error) {
	return string(r), nil
}

// indentFor returns the indentation prefix for a nesting depth.
func indentFor(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(indentUnit, depth)
}
