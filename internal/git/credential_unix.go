//go:build unix

package git

import (
	"os"
	"os/exec"
	"syscall"
)

// applyCredential runs cmd as Settings.UID/GID when either is set.
// An unset id keeps the current process value.
func applyCredential(cmd *exec.Cmd, s Settings) {
	if s.UID == nil && s.GID == nil {
		return
	}

	cred := &syscall.Credential{
		Uid: uint32(os.Getuid()),
		Gid: uint32(os.Getgid()),
	}
	if s.UID != nil {
		cred.Uid = uint32(*s.UID)
	}
	if s.GID != nil {
		cred.Gid = uint32(*s.GID)
	}

	cmd.SysProcAttr = &syscall.SysProcAttr{Credential: cred}
}
