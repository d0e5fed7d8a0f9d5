package sparql

import "strings"

// graphEntry is a member of a pattern's graph body: a triple, a nested
// pattern, or a nested select query. Each variant knows how to splice itself
// into the parent's text at a given nesting depth.
type graphEntry interface {
	graphText(depth int) (string, error)
}

// GraphPattern is the central composite of the builder. It accumulates
// triples, nested patterns, nested select queries, VALUES, BIND and
// FILTER/HAVING clauses in insertion order and renders them inside a braced
// block. The optional/union markers are fixed at construction.
type GraphPattern struct {
	optional    bool
	union       bool
	graph       []graphEntry
	values      []Values
	bindings    []Binding
	constraints []Term
}

// NewGraphPattern creates an empty graph pattern.
func NewGraphPattern() *GraphPattern {
	return &GraphPattern{}
}

// NewOptionalPattern creates a pattern rendered inside an OPTIONAL block.
func NewOptionalPattern() *GraphPattern {
	return &GraphPattern{optional: true}
}

// NewUnionPattern creates a pattern preceded by a UNION keyword, associating
// it with the preceding sibling pattern.
func NewUnionPattern() *GraphPattern {
	return &GraphPattern{union: true}
}

// AddTriples appends triples to the graph body. If any triple has an empty
// slot the whole call is rejected with ErrInvalidArgument and nothing is
// added.
func (p *GraphPattern) AddTriples(triples ...Triple) error {
	for _, t := range triples {
		if t.incomplete() {
			return ErrInvalidArgument
		}
	}
	for _, t := range triples {
		p.graph = append(p.graph, t)
	}
	return nil
}

// AddNestedGraphPattern nests another pattern inside this one.
func (p *GraphPattern) AddNestedGraphPattern(nested *GraphPattern) error {
	if nested == nil {
		return ErrInvalidArgument
	}
	p.graph = append(p.graph, nested)
	return nil
}

// AddNestedSelectQuery nests a select query as a subquery of this pattern.
func (p *GraphPattern) AddNestedSelectQuery(nested *SelectQuery) error {
	if nested == nil {
		return ErrInvalidArgument
	}
	p.graph = append(p.graph, nested)
	return nil
}

// AddFilter appends a FILTER clause.
func (p *GraphPattern) AddFilter(f Filter) error {
	p.constraints = append(p.constraints, f)
	return nil
}

// AddHaving appends a HAVING clause. Filters and havings share one ordered
// list, so interleaved additions keep their relative order in the output.
func (p *GraphPattern) AddHaving(h Having) error {
	p.constraints = append(p.constraints, h)
	return nil
}

// AddBinding appends a BIND clause. A binding without a value expression is
// rejected with ErrInvalidArgument.
func (p *GraphPattern) AddBinding(b Binding) error {
	if b.Value == nil {
		return ErrInvalidArgument
	}
	p.bindings = append(p.bindings, b)
	return nil
}

// AddValue appends a VALUES clause.
func (p *GraphPattern) AddValue(v Values) error {
	p.values = append(p.values, v)
	return nil
}

// Build renders the pattern at the given nesting depth. A failure in any
// nested child aborts the whole render: the result is then an empty string
// and a *BuildError, never partial text.
func (p *GraphPattern) Build(depth int) (string, error) {
	return buildSafely("GraphPattern", func() (string, error) {
		return p.build(depth)
	})
}

func (p *GraphPattern) build(depth int) (string, error) {
	outer := indentFor(depth)
	inner := indentFor(depth + 1)

	var b strings.Builder
	switch {
	case p.optional:
		b.WriteString(outer + "OPTIONAL {\n")
	case p.union:
		b.WriteString(outer + "UNION\n" + outer + "{\n")
	default:
		b.WriteString(outer + "{\n")
	}

	for _, v := range p.values {
		text, err := v.Build()
		if err != nil {
			return "", wrapBuild("GraphPattern", err)
		}
		b.WriteString(inner + text + "\n")
	}

	for _, entry := range p.graph {
		text, err := entry.graphText(depth)
		if err != nil {
			return "", wrapBuild("GraphPattern", err)
		}
		b.WriteString(text)
	}

	for _, binding := range p.bindings {
		text, err := binding.Build()
		if err != nil {
			return "", wrapBuild("GraphPattern", err)
		}
		b.WriteString(inner + text + "\n")
	}

	for _, constraint := range p.constraints {
		text, err := constraint.Build()
		if err != nil {
			return "", wrapBuild("GraphPattern", err)
		}
		b.WriteString(inner + text + "\n")
	}

	b.WriteString(outer + "}\n")
	return b.String(), nil
}

// graphText implements graphEntry for a nested pattern: one level deeper,
// spliced in whole.
func (p *GraphPattern) graphText(depth int) (string, error) {
	return p.build(depth + 1)
}

// graphText implements graphEntry for Triple: a single statement line at the
// inner indent.
func (t Triple) graphText(depth int) (string, error) {
	text, err := t.Build()
	if err != nil {
		return "", err
	}
	return indentFor(depth+1) + text, nil
}
