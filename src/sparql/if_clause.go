package sparql

// IfClause is a conditional expression. Each slot is independently a Raw
// fragment or another nested term, so conditionals compose to any depth.
type IfClause struct {
	Condition  Term
	TrueValue  Term
	FalseValue Term
}

// Build implements the Term interface for IfClause.
func (c IfClause) Build() (string, error) {
	if c.Condition == nil || c.TrueValue == nil || c.FalseValue == nil {
		return "", failf("IfClause", "nil clause slot")
	}
	condition, err := c.Condition.Build()
	if err != nil {
		return "", wrapBuild("IfClause", err)
	}
	trueValue, err := c.TrueValue.Build()
	if err != nil {
		return "", wrapBuild("IfClause", err)
	}
	falseValue, err := c.FalseValue.Build()
	if err != nil {
		return "", wrapBuild("IfClause", err)
	}
	return "IF (" + condition + ", " + trueValue + ", " + falseValue + ")", nil
}
