package sparql

import (
	"context"
	"strings"
)

// UpdateOptions configures an update query at construction.
type UpdateOptions struct {
	// CommonPrefixes preloads the well-known namespace prefixes.
	CommonPrefixes bool
}

// UpdateQuery renders a SPARQL update: DELETE, INSERT and WHERE sections,
// each backed by its own graph pattern and emitted only when set.
type UpdateQuery struct {
	query
	delete *GraphPattern
	insert *GraphPattern
}

// NewUpdateQuery creates an update query with the given options.
func NewUpdateQuery(opts UpdateOptions) *UpdateQuery {
	u := &UpdateQuery{}
	if opts.CommonPrefixes {
		u.addCommonPrefixes()
	}
	return u
}

// SetDeletePattern sets the graph pattern used for the DELETE part.
func (u *UpdateQuery) SetDeletePattern(pattern *GraphPattern) error {
	if pattern == nil {
		return ErrInvalidArgument
	}
	u.delete = pattern
	return nil
}

// SetInsertPattern sets the graph pattern used for the INSERT part.
func (u *UpdateQuery) SetInsertPattern(pattern *GraphPattern) error {
	if pattern == nil {
		return ErrInvalidArgument
	}
	u.insert = pattern
	return nil
}

// Build renders the query. On failure the result is an empty string and a
// *BuildError; partial text is never returned.
func (u *UpdateQuery) Build() (string, error) {
	return u.BuildContext(context.Background())
}

// BuildContext renders the query with tracing attached to ctx.
func (u *UpdateQuery) BuildContext(ctx context.Context) (string, error) {
	return instrumentedBuild(ctx, kindUpdate, func() (string, error) {
		return buildSafely("UpdateQuery", func() (string, error) {
			return u.build(0)
		})
	})
}

func (u *UpdateQuery) build(depth int) (string, error) {
	outer := indentFor(depth)

	var b strings.Builder
	if err := u.buildPrefixes(&b); err != nil {
		return "", wrapBuild("UpdateQuery", err)
	}

	sections := []struct {
		keyword string
		pattern *GraphPattern
	}{
		{"DELETE", u.delete},
		{"INSERT", u.insert},
		{"WHERE", u.where},
	}
	for _, section := range sections {
		if section.pattern == nil {
			continue
		}
		text, err := section.pattern.build(depth)
		if err != nil {
			return "", wrapBuild("UpdateQuery", err)
		}
		b.WriteString("\n" + outer + section.keyword + " ")
		b.WriteString(strings.TrimSuffix(text, "\n"))
	}

	return b.String(), nil
}
