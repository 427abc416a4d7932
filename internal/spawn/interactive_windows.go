//go:build windows

package spawn

import (
	"io"
	"os/exec"
	"time"
)

// runInteractive degrades to a plain pipe-attached run on Windows, where the
// creack/pty ConPTY path is not wired up. The child still runs to completion
// with its streams connected; it simply does not see a TTY. WaitDelay keeps
// Wait from blocking on the stdin copier after the child has exited.
func runInteractive(cmd *exec.Cmd, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = time.Second
	return cmd.Run()
}
