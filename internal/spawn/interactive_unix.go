//go:build !windows

package spawn

import (
	"io"
	"os/exec"

	"github.com/creack/pty"
)

// gatedReader stops handing out reads once done closes, so a plain stdin
// forwarder does not outlive the child it feeds.
type gatedReader struct {
	r    io.Reader
	done <-chan struct{}
}

func (g *gatedReader) Read(p []byte) (int, error) {
	select {
	case <-g.done:
		return 0, io.EOF
	default:
		return g.r.Read(p)
	}
}

// runInteractive starts the command attached to a pseudo-terminal and blocks
// until it exits. Child output (stdout and stderr are merged by the PTY) is
// streamed to stdout; stdin is forwarded to the PTY only while the child is
// alive. A StdinRelay forwarder additionally hands bytes that arrive around
// child exit back to the relay, so a later read of the same stream sees them.
func runInteractive(cmd *exec.Cmd, stdin io.Reader, stdout, _ io.Writer) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	if stdin != nil {
		if relay, ok := stdin.(*StdinRelay); ok {
			go relay.pump(ptmx, done)
		} else {
			go func() { _, _ = io.Copy(ptmx, &gatedReader{r: stdin, done: done}) }()
		}
	}
	if stdout != nil {
		// Read errors (EIO on child exit) just end the copy.
		_, _ = io.Copy(stdout, ptmx)
	}

	err = cmd.Wait()
	close(done)
	_ = ptmx.Close()
	return err
}
