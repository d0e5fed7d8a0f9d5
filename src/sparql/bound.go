package sparql

// Bound tests whether a variable is bound. Variable is usually a Raw
// reference like Raw("?name") but may be any nested term.
type Bound struct {
	Variable Term
}

// Build implements the Term interface for Bound.
func (b Bound) Build() (string, error) {
	if b.Variable == nil {
		return "", failf("Bound", "nil variable expression")
	}
	variable, err := b.Variable.Build()
	if err != nil {
		return "", wrapBuild("Bound", err)
	}
	return "BOUND (" + variable + ")", nil
}
