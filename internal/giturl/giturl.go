// Package giturl turns a git dependency locator such as
// "git+ssh://git@github.com:org/repo.git#v1.0.0" into a URL git understands
// and the committish named by its fragment.
package giturl

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultBranch is the committish used when a locator has no fragment.
const DefaultBranch = "master"

// ErrEmptyLocator is returned for a blank locator.
var ErrEmptyLocator = errors.New("empty repository locator")

// Normalized is a canonical locator.
type Normalized struct {
	// URL is passed to git as-is.
	URL string
	// Branch is the fragment, still URL-encoded.
	Branch string
}

var (
	// ssh://host:path, where path does not start with a port number.
	sshSCPLike = regexp.MustCompile(`^ssh://([^/]+?):([^0-9/][^/]*(?:/.*)?)$`)
	// https://host:path written with a colon instead of a slash.
	httpColonPath = regexp.MustCompile(`^(https?://(?:[^/@]+@)?[^/:@]+):([^0-9@/][^@/]*(?:/.*)?)$`)
)

// Normalize splits locator into a git URL and a committish.
//
// A "git+" scheme prefix is removed, "ssh://host:path" becomes the scp-like
// "host:path", and "https://host:org/repo" becomes "https://host/org/repo".
// Everything after the first "#" is the branch; DefaultBranch is used when
// it is missing or empty.
func Normalize(locator string) (Normalized, error) {
	locator = strings.TrimSpace(locator)
	if locator == "" {
		return Normalized{}, ErrEmptyLocator
	}

	base, branch, _ := strings.Cut(locator, "#")
	if branch == "" {
		branch = DefaultBranch
	}

	base = strings.TrimPrefix(base, "git+")
	if m := sshSCPLike.FindStringSubmatch(base); m != nil {
		base = m[1] + ":" + m[2]
	} else if m := httpColonPath.FindStringSubmatch(base); m != nil {
		base = m[1] + "/" + m[2]
	}

	if base == "" {
		return Normalized{}, fmt.Errorf("locator %q has no repository URL", locator)
	}

	return Normalized{URL: base, Branch: branch}, nil
}

// PackageName guesses a package name from a git URL: the last path element
// without a ".git" suffix.
func PackageName(gitURL string) string {
	trimmed := strings.TrimRight(gitURL, "/")
	if i := strings.LastIndexAny(trimmed, "/:"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	return strings.TrimSuffix(trimmed, ".git")
}
