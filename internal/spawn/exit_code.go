// SPDX-License-Identifier: MPL-2.0

package spawn

import "strconv"

// ExitCode represents a process exit status code. The zero value (0) means
// success. Codes are passed through from the child verbatim: POSIX children
// report 0-255, a signal death is mapped to the shell convention 128+signal,
// and Windows children may report full NTSTATUS values above a byte.
type ExitCode int

// Exit codes produced by the spawner itself rather than the child.
const (
	// ExitCodeSpawnFailure is reported when the child could not be started
	// for reasons other than "program not found" (permissions, bad workdir).
	ExitCodeSpawnFailure ExitCode = 1
	// ExitCodeNotFound is reported when the requested program does not
	// exist on the search path, following the shell convention.
	ExitCodeNotFound ExitCode = 127
)

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
