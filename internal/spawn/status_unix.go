//go:build !windows

package spawn

import (
	"os/exec"
	"syscall"
)

// childExitCode recovers the exit status of a child that ran and terminated.
// A signal death has no exit code of its own, so it is mapped to the shell
// convention 128+signal; a segfault caught by the fault handler surfaces as
// 139, not as a start failure.
func childExitCode(err *exec.ExitError) ExitCode {
	if ws, ok := err.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return ExitCode(128 + int(ws.Signal()))
	}
	return ExitCode(err.ExitCode())
}
