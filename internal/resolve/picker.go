package resolve

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/jokarl/gitref/internal/refs"
)

// Catalog is the set of published versions of a package.
type Catalog struct {
	Name     string
	Versions map[string]refs.Doc
	DistTags map[string]refs.Doc
}

// Picker selects the ref satisfying a version range.
type Picker interface {
	Pick(catalog Catalog, rng string) (refs.Doc, error)
}

// SemverPicker picks the highest version satisfying a range, preferring the
// version the "latest" dist-tag points at when it satisfies the range too.
type SemverPicker struct{}

var _ Picker = SemverPicker{}

// Pick returns the ref of the best version in catalog for rng. A blank
// range means any version.
func (SemverPicker) Pick(catalog Catalog, rng string) (refs.Doc, error) {
	if strings.TrimSpace(rng) == "" {
		rng = "*"
	}
	constraint, err := semver.NewConstraint(rng)
	if err != nil {
		return refs.Doc{}, &InvalidRangeError{Range: rng, Err: err}
	}

	var candidates semver.Collection
	byVersion := make(map[*semver.Version]string, len(catalog.Versions))
	for raw := range catalog.Versions {
		v, err := semver.StrictNewVersion(raw)
		if err != nil {
			continue
		}
		candidates = append(candidates, v)
		byVersion[v] = raw
	}

	sort.Sort(sort.Reverse(candidates))

	if latest, ok := catalog.DistTags["latest"]; ok {
		for _, v := range candidates {
			if catalog.Versions[byVersion[v]].SHA == latest.SHA && constraint.Check(v) {
				return catalog.Versions[byVersion[v]], nil
			}
		}
	}

	for _, v := range candidates {
		if constraint.Check(v) {
			return catalog.Versions[byVersion[v]], nil
		}
	}

	available := make([]string, 0, len(catalog.Versions))
	for raw := range catalog.Versions {
		available = append(available, raw)
	}
	sort.Strings(available)

	return refs.Doc{}, &NoMatchingVersionError{
		Name:      catalog.Name,
		Range:     rng,
		Available: available,
	}
}
