package sparql

// Filter wraps a free-form FILTER expression, e.g. "?age > 30".
type Filter struct {
	Expression string
}

// Build implements the Term interface for Filter.
func (f Filter) Build() (string, error) {
	return "FILTER (" + f.Expression + ")", nil
}
