package git

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
)

// Version represents a parsed git version.
type Version struct {
	Major int
	Minor int
	Patch int
	Raw   string
}

// String returns the version as "major.minor.patch".
func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// versionRegex matches git version strings like:
// - "git version 2.39.0"
// - "git version 2.39.0 (Apple Git-143)"
// - "git version 2.39.0.windows.1"
var versionRegex = regexp.MustCompile(`git version (\d+)\.(\d+)(?:\.(\d+))?`)

// Version returns the version of the configured git executable.
func (c *Client) Version(ctx context.Context) (*Version, error) {
	out, err := c.Run(ctx, []string{"--version"})
	if err != nil {
		return nil, fmt.Errorf("failed to get git version: %w", err)
	}
	return ParseVersion(out)
}

// ParseVersion parses a git version string.
func ParseVersion(s string) (*Version, error) {
	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil {
		return nil, fmt.Errorf("failed to parse git version: %q", s)
	}

	major, _ := strconv.Atoi(matches[1])
	minor, _ := strconv.Atoi(matches[2])
	patch := 0
	if len(matches) > 3 && matches[3] != "" {
		patch, _ = strconv.Atoi(matches[3])
	}

	return &Version{
		Major: major,
		Minor: minor,
		Patch: patch,
		Raw:   s,
	}, nil
}
