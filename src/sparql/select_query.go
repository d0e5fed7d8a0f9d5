package sparql

import (
	"context"
	"fmt"
	"strings"
)

// SelectOptions configures a select query at construction.
type SelectOptions struct {
	// Distinct emits SELECT DISTINCT.
	Distinct bool
	// Limit caps the result count when positive.
	Limit int
	// Offset skips results when positive.
	Offset int
	// CommonPrefixes preloads the well-known namespace prefixes
	// (rdf, rdfs, xml, owl, prov, foaf).
	CommonPrefixes bool
}

// SelectQuery renders a SPARQL SELECT query: prefixes, projection, WHERE
// pattern, grouping and pagination.
type SelectQuery struct {
	query
	distinct  bool
	limit     int
	offset    int
	variables []string
	groupBy   []GroupBy
}

// NewSelectQuery creates a select query with the given options.
func NewSelectQuery(opts SelectOptions) *SelectQuery {
	s := &SelectQuery{
		distinct: opts.Distinct,
		limit:    opts.Limit,
		offset:   opts.Offset,
	}
	if opts.CommonPrefixes {
		s.addCommonPrefixes()
	}
	return s
}

// AddVariables appends variables to the projection list. If any name is
// empty the whole call is rejected with ErrInvalidArgument and nothing is
// added.
func (s *SelectQuery) AddVariables(variables ...string) error {
	for _, v := range variables {
		if v == "" {
			return ErrInvalidArgument
		}
	}
	s.variables = append(s.variables, variables...)
	return nil
}

// AddGroupBy appends a GROUP BY clause to the query.
func (s *SelectQuery) AddGroupBy(g GroupBy) error {
	s.groupBy = append(s.groupBy, g)
	return nil
}

// Build renders the query. On failure the result is an empty string and a
// *BuildError; partial text is never returned.
func (s *SelectQuery) Build() (string, error) {
	return s.BuildContext(context.Background())
}

// BuildContext renders the query with tracing attached to ctx.
func (s *SelectQuery) BuildContext(ctx context.Context) (string, error) {
	return instrumentedBuild(ctx, kindSelect, func() (string, error) {
		return buildSafely("SelectQuery", func() (string, error) {
			return s.build(0)
		})
	})
}

func (s *SelectQuery) build(depth int) (string, error) {
	outer := indentFor(depth)

	var b strings.Builder
	if err := s.buildPrefixes(&b); err != nil {
		return "", wrapBuild("SelectQuery", err)
	}

	b.WriteString("\n" + outer + "SELECT ")
	if s.distinct {
		b.WriteString("DISTINCT ")
	}
	if len(s.variables) > 0 {
		b.WriteString(strings.Join(s.variables, " "))
	} else {
		b.WriteString(" *")
	}

	// The WHERE token is always emitted, even with no pattern set.
	b.WriteString("\n" + outer + "WHERE ")
	if s.where != nil {
		text, err := s.where.build(depth)
		if err != nil {
			return "", wrapBuild("SelectQuery", err)
		}
		b.WriteString(strings.TrimSuffix(text, "\n"))
	}

	for _, g := range s.groupBy {
		text, err := g.Build()
		if err != nil {
			return "", wrapBuild("SelectQuery", err)
		}
		b.WriteString("\n" + outer + text)
	}

	if s.limit > 0 {
		fmt.Fprintf(&b, "\nLIMIT %d", s.limit)
	}
	if s.offset > 0 {
		fmt.Fprintf(&b, "\nOFFSET %d", s.offset)
	}

	return b.String(), nil
}

// graphText implements graphEntry for a nested select query: two levels
// deeper, wrapped in an extra brace pair at the parent's inner indent.
func (s *SelectQuery) graphText(depth int) (string, error) {
	inner := indentFor(depth + 1)
	text, err := s.build(depth + 2)
	if err != nil {
		return "", err
	}
	return inner + "{" + text + inner + "}\n", nil
}
