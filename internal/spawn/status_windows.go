//go:build windows

package spawn

import "os/exec"

// childExitCode passes the Windows exit status through verbatim. NTSTATUS
// values such as an access violation (0xC0000005) exceed a byte but are
// still the child's true result.
func childExitCode(err *exec.ExitError) ExitCode {
	return ExitCode(err.ExitCode())
}
