package sparql

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// Golden fixtures pin the full wire format of rendered queries.
// To regenerate after an intentional format change, run:
//
//	go test ./src/sparql -run TestGolden -update
func goldenAssert(t *testing.T, name, actual string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(actual))
}

func TestGoldenSelectQuery(t *testing.T) {
	query := NewSelectQuery(SelectOptions{Distinct: true, Limit: 100, Offset: 100})
	require.NoError(t, query.AddPrefix(Prefix{Name: "ex", Namespace: "http://www.example.com#"}))
	require.NoError(t, query.AddVariables("?person", "?age"))

	where := NewGraphPattern()
	require.NoError(t, where.AddTriples(
		Triple{Subject: "?person", Predicate: "rdf:type", Object: "ex:Person"},
		Triple{Subject: "?person", Predicate: "ex:hasAge", Object: "?age"},
		Triple{Subject: "?person", Predicate: "ex:address", Object: "?address"},
	))
	require.NoError(t, query.SetWherePattern(where))
	require.NoError(t, query.AddGroupBy(GroupBy{Variables: []string{"?age"}}))

	out, err := query.Build()
	require.NoError(t, err)
	goldenAssert(t, "select_full", out)
}

func TestGoldenUpdateQuery(t *testing.T) {
	query := NewUpdateQuery(UpdateOptions{})
	require.NoError(t, query.AddPrefix(Prefix{Name: "ex", Namespace: "http://www.example.com#"}))

	deletePattern := NewGraphPattern()
	require.NoError(t, deletePattern.AddTriples(
		Triple{Subject: "?person", Predicate: "ex:hasAge", Object: "?age"},
	))
	insertPattern := NewGraphPattern()
	require.NoError(t, insertPattern.AddTriples(
		Triple{Subject: "?person", Predicate: "ex:hasAge", Object: "32"},
	))
	wherePattern := NewGraphPattern()
	require.NoError(t, wherePattern.AddTriples(
		Triple{Subject: "?person", Predicate: "rdf:type", Object: "ex:Person"},
		Triple{Subject: "?person", Predicate: "ex:hasAge", Object: "?age"},
	))

	require.NoError(t, query.SetDeletePattern(deletePattern))
	require.NoError(t, query.SetInsertPattern(insertPattern))
	require.NoError(t, query.SetWherePattern(wherePattern))

	out, err := query.Build()
	require.NoError(t, err)
	goldenAssert(t, "update_full", out)
}

func TestGoldenSelectWithOptional(t *testing.T) {
	query := NewSelectQuery(SelectOptions{})
	require.NoError(t, query.AddPrefix(Prefix{Name: "ex", Namespace: "http://www.example.com#"}))
	require.NoError(t, query.AddVariables("?person", "?age"))

	where := NewGraphPattern()
	require.NoError(t, where.AddTriples(
		Triple{Subject: "?person", Predicate: "rdf:type", Object: "ex:Person"},
	))
	optional := NewOptionalPattern()
	require.NoError(t, optional.AddTriples(
		Triple{Subject: "?person", Predicate: "ex:hasAge", Object: "?age"},
	))
	require.NoError(t, where.AddNestedGraphPattern(optional))
	require.NoError(t, query.SetWherePattern(where))

	out, err := query.Build()
	require.NoError(t, err)
	goldenAssert(t, "select_optional", out)
}
