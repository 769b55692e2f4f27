// Package manifest resolves a git dependency specifier into a cacheable
// manifest using only the remote ref listing.
package manifest

import (
	"fmt"
	"regexp"

	"github.com/jokarl/gitref/internal/refs"
)

// Spec is a git dependency as written by the user.
type Spec struct {
	// Name is the package name, used in version error messages.
	Name string `json:"name"`
	// Locator is the repository URL, optionally followed by "#<committish>".
	// The committish may be URL-encoded.
	Locator string `json:"locator"`
}

func (s Spec) String() string {
	return fmt.Sprintf("%s@%s", s.Name, s.Locator)
}

// Manifest is the outcome of resolving a Spec.
//
// Resolved and UniqueResolved are equal when set. When both are empty the
// commit is unknown and the caller has to clone. When they are set but Ref is
// nil, the committish is a full sha that was not confirmed remotely: the
// identifier is safe to cache but the content still has to be cloned.
type Manifest struct {
	RepositoryURL  string    `json:"repository_url"`
	Resolved       string    `json:"resolved,omitempty"`
	Spec           Spec      `json:"spec"`
	Ref            *refs.Doc `json:"ref,omitempty"`
	RawCommittish  string    `json:"raw_committish"`
	UniqueResolved string    `json:"unique_resolved,omitempty"`

	// RemoteErr is the error from listing the remote, if it failed and
	// resolution fell back to the committish alone.
	RemoteErr error `json:"-"`
}

// NeedsClone reports whether the content can only be obtained by a clone
// that also discovers the commit.
func (m *Manifest) NeedsClone() bool {
	return m.Resolved == ""
}

var fullSHA = regexp.MustCompile(`^[a-f0-9]{40}$`)

// IsFullSHA reports whether committish is a full lowercase commit id.
func IsFullSHA(committish string) bool {
	return fullSHA.MatchString(committish)
}

func resolvedID(url, sha string) string {
	return url + "#" + sha
}
