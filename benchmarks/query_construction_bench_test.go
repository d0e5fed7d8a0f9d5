package benchmarks

import (
	"testing"

	"github.com/seuros/gopher-sparql/src/sparql"
)

func BenchmarkSimpleQueryConstruction(b *testing.B) {
	for i := 0; i < b.N; i++ {
		query := sparql.NewSelectQuery(sparql.SelectOptions{})
		query.AddVariables("?s", "?o")

		where := sparql.NewGraphPattern()
		where.AddTriples(sparql.Triple{Subject: "?s", Predicate: "rdf:type", Object: "?o"})
		query.SetWherePattern(where)

		query.Build()
	}
}

func BenchmarkComplexQueryConstruction(b *testing.B) {
	for i := 0; i < b.N; i++ {
		query := sparql.NewSelectQuery(sparql.SelectOptions{Distinct: true, Limit: 100})
		query.AddPrefix(sparql.Prefix{Name: "ex", Namespace: "http://www.example.com#"})
		query.AddVariables("?person", "?name", "?age")

		where := sparql.NewGraphPattern()
		where.AddTriples(
			sparql.Triple{Subject: "?person", Predicate: "rdf:type", Object: "ex:Person"},
			sparql.Triple{Subject: "?person", Predicate: "ex:hasName", Object: "?name"},
		)

		optional := sparql.NewOptionalPattern()
		optional.AddTriples(sparql.Triple{Subject: "?person", Predicate: "ex:hasAge", Object: "?age"})
		where.AddNestedGraphPattern(optional)

		where.AddBinding(sparql.Binding{
			Value: sparql.IfClause{
				Condition:  sparql.Bound{Variable: sparql.Raw("?age")},
				TrueValue:  sparql.Raw("?age"),
				FalseValue: sparql.Raw("'unknown'"),
			},
			Variable: "?age_or_unknown",
		})
		where.AddFilter(sparql.Filter{Expression: "?name != ''"})
		query.SetWherePattern(where)
		query.AddGroupBy(sparql.GroupBy{Variables: []string{"?age"}})

		query.Build()
	}
}

func BenchmarkDeeplyNestedPatternConstruction(b *testing.B) {
	for i := 0; i < b.N; i++ {
		root := sparql.NewGraphPattern()
		current := root
		for depth := 0; depth < 8; depth++ {
			nested := sparql.NewGraphPattern()
			nested.AddTriples(sparql.Triple{Subject: "?s", Predicate: "?p", Object: "?o"})
			current.AddNestedGraphPattern(nested)
			current = nested
		}
		root.Build(0)
	}
}
