package sparql

import "fmt"

// Triple is a subject-predicate-object statement, the atomic unit of a graph
// pattern. All three slots are plain SPARQL tokens (variables, prefixed
// names, bracketed URIs or literals).
type Triple struct {
	Subject   string
	Predicate string
	Object    string
}

// Build implements the Term interface for Triple. The trailing space before
// the period is part of the wire format.
func (t Triple) Build() (string, error) {
	return fmt.Sprintf("%s %s %s . \n", t.Subject, t.Predicate, t.Object), nil
}

// incomplete reports whether any slot is missing. AddTriples rejects such
// statements before they reach the graph.
func (t Triple) incomplete() bool {
	return t.Subject == "" || t.Predicate == "" || t.Object == ""
}
