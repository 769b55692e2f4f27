//go:build !unix

package git

import "os/exec"

// applyCredential is a no-op: switching uid/gid is only supported on unix.
func applyCredential(_ *exec.Cmd, _ Settings) {}
