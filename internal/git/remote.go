package git

import (
	"context"
	"fmt"
)

// ListRemoteRefs lists the refs of a remote repository without cloning it.
// The raw stdout of git ls-remote is returned, one "<sha>\t<ref>" line per
// ref.
//
// Options after the URL are taken as patterns, so "-t" and "-h" filter
// nothing and "*" matches every ref: the listing includes HEAD and refs
// outside refs/heads and refs/tags, such as refs/pull/*.
func (c *Client) ListRemoteRefs(ctx context.Context, url string) (string, error) {
	out, err := c.run(ctx, []string{"ls-remote", url, "-t", "-h", "*"})
	if err != nil {
		return "", fmt.Errorf("failed to list remote refs of %q: %w", url, err)
	}
	return out, nil
}
