package resolve

import (
	"errors"
	"fmt"
)

// ErrNotResolvable is returned when a committish cannot be matched against
// the remote listing. The commit can only be found by cloning.
var ErrNotResolvable = errors.New("committish cannot be resolved from the remote listing")

// InvalidRangeError is returned when a semver: committish carries a range
// that cannot be parsed.
type InvalidRangeError struct {
	Range string
	Err   error
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid semver range %q: %v", e.Range, e.Err)
}

func (e *InvalidRangeError) Unwrap() error {
	return e.Err
}

// NoMatchingVersionError is returned when no tagged version satisfies a range.
type NoMatchingVersionError struct {
	Name      string
	Range     string
	Available []string
}

func (e *NoMatchingVersionError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("no matching version found for %s@%s: the remote has no version tags", e.Name, e.Range)
	}
	return fmt.Sprintf("no matching version found for %s@%s (available: %v)", e.Name, e.Range, e.Available)
}
