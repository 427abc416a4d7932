// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"rundbg-cli/internal/interpreter"
	"rundbg-cli/internal/issue"
	"rundbg-cli/internal/spawn"
)

// dividerWidth matches the banner width so the report frames the child
// output symmetrically.
const dividerWidth = 64

// printBanner writes the fixed DEBUG MODE header identifying what is about
// to run and from where.
func (l *Launcher) printBanner(inv Invocation) {
	title := "== DEBUG MODE "
	fmt.Fprintln(l.Stdout, title+strings.Repeat("=", dividerWidth-len(title)))
	fmt.Fprintf(l.Stdout, "Target:  %s\n", inv.Target)
	fmt.Fprintf(l.Stdout, "Workdir: %s\n", inv.WorkDir)
}

// printProbe writes one line per candidate, path or absence, so a failed
// spawn below is immediately explainable.
func (l *Launcher) printProbe(results []interpreter.ProbeResult) {
	fmt.Fprintln(l.Stdout, "Interpreter probe:")
	for _, r := range results {
		if r.Found {
			fmt.Fprintf(l.Stdout, "  %-8s %s\n", r.Name, r.Path)
		} else {
			fmt.Fprintf(l.Stdout, "  %-8s not found\n", r.Name)
		}
	}
}

func (l *Launcher) printDivider() {
	fmt.Fprintln(l.Stdout, strings.Repeat("-", dividerWidth))
}

// printExitCode displays the child's exit status verbatim.
func (l *Launcher) printExitCode(code spawn.ExitCode) {
	fmt.Fprintf(l.Stdout, "Exit code: %s\n", code)
}

// renderFailure writes the failure card matching a spawn error to stderr,
// falling back to the plain error text when rendering fails.
func (l *Launcher) renderFailure(err error) {
	id := issue.SpawnFailedId
	if errors.Is(err, exec.ErrNotFound) {
		id = issue.InterpreterNotFoundId
	}
	if !l.renderCard(id) {
		fmt.Fprintln(l.Stderr, "rundbg:", err)
	}
}

// renderCard writes the catalog card for id to stderr, reporting whether
// anything was written.
func (l *Launcher) renderCard(id issue.Id) bool {
	iss := issue.Get(id)
	if iss == nil {
		return false
	}
	card, err := iss.Render("auto")
	if err != nil {
		return false
	}
	fmt.Fprint(l.Stderr, card)
	return true
}

// pause blocks until the operator acknowledges by pressing Enter. The input
// content is ignored; the read exists purely so a terminal window that would
// auto-close stays open long enough to read any failure above. The reader is
// the same stream handed to the child, relay included, so input typed around
// child exit is not lost.
func (l *Launcher) pause(stdin io.Reader) {
	fmt.Fprint(l.Stdout, "Press Enter to close (review any errors above)... ")
	if stdin == nil {
		return
	}
	_, _ = bufio.NewReader(stdin).ReadString('\n')
}
