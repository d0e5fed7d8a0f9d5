// Package sparql builds SPARQL graph patterns and queries programmatically.
//
// The object model is the AST: callers assemble terms (triples, filters,
// bindings) into graph patterns, patterns into select or update queries, and
// render the whole tree to query text. There is no parser and no execution;
// the only boundary is "build a tree, call Build, get a string".
//
//	query := sparql.NewSelectQuery(sparql.SelectOptions{Distinct: true, Limit: 100})
//	query.AddPrefix(sparql.Prefix{Name: "ex", Namespace: "http://www.example.com#"})
//	query.AddVariables("?person", "?age")
//
//	where := sparql.NewGraphPattern()
//	where.AddTriples(
//		sparql.Triple{Subject: "?person", Predicate: "rdf:type", Object: "ex:Person"},
//		sparql.Triple{Subject: "?person", Predicate: "ex:hasAge", Object: "?age"},
//	)
//	query.SetWherePattern(where)
//
//	text, err := query.Build()
package sparql
