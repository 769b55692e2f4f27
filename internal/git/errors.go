package git

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGitNotFound is returned when git is not installed or not in PATH.
var ErrGitNotFound = errors.New("git is not installed or not in PATH")

// GitError wraps errors from git command execution with full context.
type GitError struct {
	Command  []string
	ExitCode int
	Stderr   string
}

func (e *GitError) Error() string {
	name := "command"
	if len(e.Command) > 0 {
		name = e.Command[0]
	}
	if e.Stderr != "" {
		return fmt.Sprintf("git %s failed (exit %d): %s", name, e.ExitCode, strings.TrimSpace(e.Stderr))
	}
	return fmt.Sprintf("git %s failed (exit %d)", name, e.ExitCode)
}

// IsAuthError returns true if the error indicates an authentication failure.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}

	var gitErr *GitError
	if !errors.As(err, &gitErr) {
		return false
	}

	return isAuthErrorStderr(strings.ToLower(gitErr.Stderr))
}

// IsRepositoryNotFound returns true if the remote reported that the
// repository does not exist.
func IsRepositoryNotFound(err error) bool {
	var gitErr *GitError
	if !errors.As(err, &gitErr) {
		return false
	}

	stderr := strings.ToLower(gitErr.Stderr)
	return strings.Contains(stderr, "repository not found") ||
		strings.Contains(stderr, "does not appear to be a git repository") ||
		(strings.Contains(stderr, "repository") && strings.Contains(stderr, "does not exist"))
}

// isAuthErrorStderr checks stderr content for authentication error patterns.
func isAuthErrorStderr(stderr string) bool {
	// SSH authentication failures
	if strings.Contains(stderr, "permission denied") ||
		strings.Contains(stderr, "publickey") ||
		strings.Contains(stderr, "authentication failed") ||
		strings.Contains(stderr, "host key verification failed") ||
		strings.Contains(stderr, "connection refused") {
		return true
	}

	// HTTPS authentication failures
	if strings.Contains(stderr, "401") ||
		strings.Contains(stderr, "403") ||
		strings.Contains(stderr, "invalid credentials") ||
		strings.Contains(stderr, "could not authenticate") ||
		strings.Contains(stderr, "terminal prompts disabled") ||
		strings.Contains(stderr, "permission to") { // e.g. "Permission to org/repo.git denied"
		return true
	}

	return false
}
