package sparql

import "strings"

// commonPrefixes is the static table of well-known namespaces available at
// query construction. The slice keeps declaration order deterministic.
var commonPrefixes = []Prefix{
	{Name: "rdf", Namespace: "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
	{Name: "rdfs", Namespace: "http://www.w3.org/2000/01/rdf-schema#"},
	{Name: "xml", Namespace: "http://www.w3.org/2001/XMLSchema#"},
	{Name: "owl", Namespace: "http://www.w3.org/2002/07/owl#"},
	{Name: "prov", Namespace: "http://www.w3.org/ns/prov#"},
	{Name: "foaf", Namespace: "http://xmlns.com/foaf/0.1/"},
}

// query carries the parts shared by select and update queries: the ordered
// prefix declarations and the WHERE pattern.
type query struct {
	prefixes []Prefix
	where    *GraphPattern
}

// AddPrefix appends a PREFIX declaration to the query. A prefix with an
// empty short name is rejected with ErrInvalidArgument.
func (q *query) AddPrefix(p Prefix) error {
	if p.Name == "" {
		return ErrInvalidArgument
	}
	q.prefixes = append(q.prefixes, p)
	return nil
}

// SetWherePattern sets the graph pattern used for the WHERE part.
func (q *query) SetWherePattern(pattern *GraphPattern) error {
	if pattern == nil {
		return ErrInvalidArgument
	}
	q.where = pattern
	return nil
}

func (q *query) addCommonPrefixes() {
	q.prefixes = append(q.prefixes, commonPrefixes...)
}

// buildPrefixes renders the prefix block shared by both query kinds.
func (q *query) buildPrefixes(b *strings.Builder) error {
	for _, p := range q.prefixes {
		text, err := p.Build()
		if err != nil {
			return err
		}
		b.WriteString(text)
	}
	return nil
}
