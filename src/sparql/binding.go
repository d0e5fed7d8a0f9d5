package sparql

// Binding assigns a value to a variable with a BIND statement. Value is
// either a Raw fragment or a nested term such as an IfClause or Bound, to
// arbitrary depth.
type Binding struct {
	Value    Term
	Variable string
}

// Build implements the Term interface for Binding.
func (b Binding) Build() (string, error) {
	if b.Value == nil {
		return "", failf("Binding", "nil value expression")
	}
	value, err := b.Value.Build()
	if err != nil {
		return "", wrapBuild("Binding", err)
	}
	return "BIND (" + value + " AS " + b.Variable + ")", nil
}
