package refs

import "strings"

// Kind classifies a remote ref by its full path.
type Kind string

const (
	KindTag    Kind = "tag"
	KindBranch Kind = "branch"
	KindHead   Kind = "head"
	KindOther  Kind = "other"
)

// Classify returns the Kind of a ref path or ls-remote line. Patterns are
// checked in order: refs/tags/, refs/heads/, a trailing HEAD, then other.
func Classify(ref string) Kind {
	switch {
	case strings.Contains(ref, "refs/tags/"):
		return KindTag
	case strings.Contains(ref, "refs/heads/"):
		return KindBranch
	case strings.HasSuffix(ref, "HEAD"):
		return KindHead
	default:
		return KindOther
	}
}
