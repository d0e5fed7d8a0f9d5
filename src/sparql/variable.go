package sparql

import "strings"

// Variable is a SPARQL variable reference. Names are lower-cased at
// construction and render with the leading space a projection list expects.
type Variable struct {
	name string
}

// NewVariable creates a Variable from a bare name (without the "?").
func NewVariable(name string) Variable {
	return Variable{name: strings.ToLower(name)}
}

// Build implements the Term interface for Variable.
func (v Variable) Build() (string, error) {
	return " ?" + v.name, nil
}
