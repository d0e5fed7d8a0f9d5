package sparql

// Having wraps a free-form HAVING expression, e.g. "COUNT(?person) > 5".
type Having struct {
	Expression string
}

// Build implements the Term interface for Having.
func (h Having) Build() (string, error) {
	return "HAVING (" + h.Expression + ")", nil
}
