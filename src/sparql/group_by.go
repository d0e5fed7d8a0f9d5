package sparql

import "strings"

// GroupBy is an ordered grouping clause over variable names.
type GroupBy struct {
	Variables []string
}

// Build implements the Term interface for GroupBy.
func (g GroupBy) Build() (string, error) {
	return "GROUP BY " + strings.Join(g.Variables, " "), nil
}
