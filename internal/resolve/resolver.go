// Package resolve matches a committish against a remote ref index.
package resolve

import (
	"regexp"

	"github.com/jokarl/gitref/internal/refs"
)

var semverCommittish = regexp.MustCompile(`^semver:v?(.*)`)

// Resolver resolves committishes: literal ref names, commit shas and
// "semver:<range>" requests.
type Resolver struct {
	picker Picker
}

// New creates a Resolver using the semver picker.
func New() *Resolver {
	return NewWithPicker(SemverPicker{})
}

// NewWithPicker creates a Resolver with a custom version picker.
func NewWithPicker(picker Picker) *Resolver {
	return &Resolver{picker: picker}
}

// SemverRange reports whether committish is a semver request and returns
// its range with any leading "v" removed.
func SemverRange(committish string) (string, bool) {
	m := semverCommittish.FindStringSubmatch(committish)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Resolve looks committish up in idx. name identifies the package in
// version errors. idx may be nil when the remote could not be listed.
//
// Semver requests are delegated to the picker even without an index and
// return its errors. Otherwise a ref name is tried first, then a sha, which
// resolves to the first ref listed for it. ErrNotResolvable is returned when
// nothing matches.
func (r *Resolver) Resolve(idx *refs.Index, committish, name string) (refs.Doc, error) {
	if rng, ok := SemverRange(committish); ok {
		catalog := Catalog{Name: name}
		if idx != nil {
			catalog.Versions = idx.VersionMap()
			catalog.DistTags = idx.DistTags()
		}
		return r.picker.Pick(catalog, rng)
	}

	if idx == nil {
		return refs.Doc{}, ErrNotResolvable
	}

	if doc, ok := idx.Ref(committish); ok {
		return doc, nil
	}
	if doc, ok := idx.BySHA(committish); ok {
		return doc, nil
	}

	return refs.Doc{}, ErrNotResolvable
}
