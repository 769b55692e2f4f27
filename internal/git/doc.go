// Package git provides a safe wrapper around git command execution.
//
// This package delegates all git operations to the system git binary,
// leveraging the user's existing git configuration for authentication.
// It does not store or manage credentials.
//
// Key features:
//   - Command execution bound to a context, with stderr capture for diagnostics
//   - Configurable executable path, extra environment and process uid/gid
//   - Remote ref listing (git ls-remote) without cloning
//   - Git version detection
//   - Structured error types with actionable messages
//
// Example usage:
//
//	client := git.NewClient(git.Settings{Path: "git"})
//
//	// List the refs of a remote repository
//	listing, err := client.ListRemoteRefs(ctx, "https://github.com/org/repo.git")
//	if errors.Is(err, git.ErrGitNotFound) {
//	    // git is not installed
//	}
package git
