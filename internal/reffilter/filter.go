// Package reffilter selects ref names using doublestar glob patterns.
package reffilter

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/jokarl/gitref/internal/refs"
)

// Filter holds the include and exclude patterns for ref filtering
type Filter struct {
	include []string
	exclude []string
	parent  *Filter
}

// New creates a new Filter with the given include and exclude patterns.
// An empty include list matches every name.
func New(include, exclude []string) *Filter {
	return &Filter{
		include: include,
		exclude: exclude,
	}
}

// DefaultFilter returns a filter matching every ref
func DefaultFilter() *Filter {
	return New([]string{"**"}, nil)
}

// Narrow returns a filter that additionally requires a match against
// pattern. An empty pattern returns f unchanged.
func (f *Filter) Narrow(pattern string) *Filter {
	if pattern == "" {
		return f
	}
	return &Filter{
		include: []string{pattern},
		parent:  f,
	}
}

// Match checks if a ref name matches the filter criteria
func (f *Filter) Match(name string) (bool, error) {
	if f.parent != nil {
		ok, err := f.parent.Match(name)
		if err != nil || !ok {
			return false, err
		}
	}

	included := len(f.include) == 0
	for _, pattern := range f.include {
		match, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, err
		}
		if match {
			included = true
			break
		}
	}

	if !included {
		return false, nil
	}

	for _, pattern := range f.exclude {
		match, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, err
		}
		if match {
			return false, nil
		}
	}

	return true, nil
}

// Docs returns the docs whose names match, preserving order
func (f *Filter) Docs(docs []refs.Doc) ([]refs.Doc, error) {
	result := make([]refs.Doc, 0, len(docs))
	for _, d := range docs {
		match, err := f.Match(d.Name)
		if err != nil {
			return nil, err
		}
		if match {
			result = append(result, d)
		}
	}
	return result, nil
}

// DocMap returns the entries of m whose doc names match
func (f *Filter) DocMap(m map[string]refs.Doc) (map[string]refs.Doc, error) {
	result := make(map[string]refs.Doc, len(m))
	for k, d := range m {
		match, err := f.Match(d.Name)
		if err != nil {
			return nil, err
		}
		if match {
			result[k] = d
		}
	}
	return result, nil
}
