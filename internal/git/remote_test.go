package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestListRemoteRefs_LocalRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed, skipping test")
	}

	remoteDir := setupRemoteWithTags(t, "v1.0.0", "release-1")

	listing, err := NewClient(Settings{}).ListRemoteRefs(context.Background(), remoteDir)
	if err != nil {
		t.Fatalf("ListRemoteRefs() error = %v", err)
	}

	// Options after the URL are patterns, so HEAD is listed too.
	for _, want := range []string{"\tHEAD\n", "refs/heads/", "refs/tags/v1.0.0", "refs/tags/release-1"} {
		if !strings.Contains(listing, want) {
			t.Errorf("ListRemoteRefs() output missing %q:\n%s", want, listing)
		}
	}

	for _, line := range strings.Split(strings.TrimSpace(listing), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			t.Errorf("unexpected listing line %q", line)
			continue
		}
		if len(fields[0]) != 40 {
			t.Errorf("sha %q is not 40 characters", fields[0])
		}
	}
}

func TestListRemoteRefs_InvalidURL(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed, skipping test")
	}

	missing := filepath.Join(t.TempDir(), "missing.git")

	_, err := NewClient(Settings{}).ListRemoteRefs(context.Background(), missing)
	if err == nil {
		t.Fatal("ListRemoteRefs() on a missing repository should fail")
	}

	var gitErr *GitError
	if !errors.As(err, &gitErr) {
		t.Fatalf("expected *GitError, got %T", err)
	}
	if !IsRepositoryNotFound(err) {
		t.Errorf("IsRepositoryNotFound() = false for %q", gitErr.Stderr)
	}
}

func TestListRemoteRefs_GitMissing(t *testing.T) {
	client := NewClient(Settings{Path: "gitref-no-such-git-binary"})

	_, err := client.ListRemoteRefs(context.Background(), "https://example.com/repo.git")
	if !errors.Is(err, ErrGitNotFound) {
		t.Fatalf("ListRemoteRefs() error = %v, want ErrGitNotFound", err)
	}
}

// setupRemoteWithTags creates a bare repository with one commit on the
// default branch and the given lightweight tags, and returns its path.
func setupRemoteWithTags(t *testing.T, tags ...string) string {
	t.Helper()

	root := t.TempDir()
	localDir := filepath.Join(root, "local")
	remoteDir := filepath.Join(root, "remote.git")
	for _, dir := range []string{localDir, remoteDir} {
		if err := os.Mkdir(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	runGit(t, remoteDir, "init", "--bare")
	initGitRepo(t, localDir)

	if err := os.WriteFile(filepath.Join(localDir, "README.md"), []byte("# Test\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	runGit(t, localDir, "add", "README.md")
	runGit(t, localDir, "commit", "-m", "Initial commit")
	for _, tag := range tags {
		runGit(t, localDir, "tag", tag)
	}

	runGit(t, localDir, "remote", "add", "origin", remoteDir)
	runGit(t, localDir, "push", "origin", "HEAD", "--tags")

	return remoteDir
}
