//go:build !windows

package player

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// sysProcAttr puts the player in its own process group so a kill also
// reaches helpers it forks (ssh, mplayer's own children).
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setpgid: true,
	}
}

func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}
