// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"rundbg-cli/internal/spawn"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE
// handlers. Execute unwraps it and terminates the process with the carried
// code, so the launcher's own exit status mirrors the child's.
type ExitError struct {
	Code spawn.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
