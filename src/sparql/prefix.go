package sparql

import "fmt"

// Prefix declares a short-name alias for a namespace URI.
type Prefix struct {
	Name      string
	Namespace string
}

// Build implements the Term interface for Prefix.
func (p Prefix) Build() (string, error) {
	return fmt.Sprintf("PREFIX %s: <%s>\n", p.Name, p.Namespace), nil
}
