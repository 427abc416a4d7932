// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"rundbg-cli/internal/interpreter"
	"rundbg-cli/internal/issue"
	"rundbg-cli/internal/spawn"

	"github.com/charmbracelet/log"
)

type (
	// Invocation is the immutable description of one launch. It is built
	// once from flags and configuration and discarded when the run ends.
	Invocation struct {
		// Target is the script filename handed to the interpreter.
		Target string
		// WorkDir is the resolved working directory for the run.
		WorkDir string
		// Style selects the interpreter invocation form.
		Style interpreter.Style
		// Candidates are the launcher names probed for diagnostics.
		Candidates []string
		// Env holds the environment overrides scoped to the child.
		// Nil means DefaultEnv().
		Env map[string]string
		// Interactive attaches the child to a pseudo-terminal.
		Interactive bool
	}

	// Launcher orchestrates a debug-mode run: enter the working directory,
	// probe for interpreters, spawn the target with instrumentation flags,
	// report the exit code and hold the terminal open for the operator.
	//
	// All collaborators are injectable so each step is testable in
	// isolation; zero fields are filled with production defaults by New.
	Launcher struct {
		Spawner  spawn.Spawner
		LookPath interpreter.LookPathFunc
		// Chdir changes the launcher's own working directory so relative
		// paths in the target resolve correctly.
		Chdir func(dir string) error
		// Stat checks the target before the spawn, for diagnostics only.
		Stat   func(name string) (os.FileInfo, error)
		Stdout io.Writer
		Stderr io.Writer
		Stdin  io.Reader
		// Pause enables the blocking acknowledgment prompt after the
		// child exits.
		Pause  bool
		Logger *log.Logger
	}
)

// New creates a Launcher with production defaults: a real spawner, real
// chdir, the process's standard streams, pausing enabled, and a warn-level
// logger on stderr.
func New() *Launcher {
	return &Launcher{
		Spawner: spawn.NewExecSpawner(),
		Chdir:   os.Chdir,
		Stat:    os.Stat,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
		Pause:   true,
		Logger:  log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel}),
	}
}

// DefaultEnv returns the environment overrides forcing UTF-8 text I/O in
// the child regardless of the ambient locale: PYTHONIOENCODING fixes the
// stream encoding and PYTHONUTF8 enables the interpreter's strict UTF-8
// mode. They are passed to the spawn call only, never set in the parent.
func DefaultEnv() map[string]string {
	return map[string]string{
		"PYTHONIOENCODING": "utf-8",
		"PYTHONUTF8":       "1",
	}
}

// ExecutableDir returns the directory containing the running executable,
// the default working directory for a launch.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", issue.WrapWithOperation(err, "locate the launcher executable")
	}
	return filepath.Dir(exe), nil
}

// Run performs the launch sequence and returns the exit code to propagate.
//
// A non-nil error means setup failed before any child was spawned (working
// directory unavailable). Every other failure mode, including "interpreter
// not found", flows through the spawn result so the report/hold step is
// always reached and the operator sees the outcome.
func (l *Launcher) Run(ctx context.Context, inv Invocation) (spawn.ExitCode, error) {
	// Step 1: enter the working directory. Fatal before any spawn.
	if err := l.Chdir(inv.WorkDir); err != nil {
		l.renderCard(issue.WorkdirUnavailableId)
		return spawn.ExitCodeSpawnFailure, issue.NewErrorContext().
			WithOperation("enter working directory").
			WithResource(inv.WorkDir).
			WithSuggestion("Check that the directory exists and is readable").
			WithSuggestion("Override it with --workdir").
			Wrap(err).
			BuildError()
	}
	l.Logger.Debug("entered working directory", "dir", inv.WorkDir)

	l.printBanner(inv)

	// Step 2: diagnostic-only interpreter probe. Never gates the spawn.
	probe := &interpreter.Probe{LookPath: l.LookPath}
	results := probe.Run(inv.Candidates)
	l.printProbe(results)
	for _, r := range results {
		l.Logger.Debug("probed interpreter candidate", "name", r.Name, "found", r.Found, "path", r.Path)
	}

	// Like the probe, the target check is diagnostic only: a typo or stale
	// config is explained up front, but the spawn still decides the outcome.
	if stat := l.Stat; stat != nil {
		if _, statErr := stat(inv.Target); statErr != nil {
			l.Logger.Warn("target script not found in working directory", "target", inv.Target)
			l.renderCard(issue.TargetNotFoundId)
		}
	}

	// Steps 3-4: scoped environment plus debug-instrumented command line.
	env := inv.Env
	if env == nil {
		env = DefaultEnv()
	}
	argv := inv.Style.Argv(inv.Style.Resolve(l.LookPath), inv.Target)
	l.Logger.Debug("launching target", "argv", argv, "interactive", inv.Interactive)

	// An interactive child is fed through a relay so input typed around
	// child exit is replayed to the pause read instead of being lost to the
	// terminal pump.
	stdin := l.Stdin
	if inv.Interactive && stdin != nil {
		stdin = spawn.NewStdinRelay(stdin)
	}

	l.printDivider()
	result := l.Spawner.Spawn(ctx, spawn.Request{
		Argv:        argv,
		Dir:         inv.WorkDir,
		Env:         env,
		Stdout:      l.Stdout,
		Stderr:      l.Stderr,
		Stdin:       stdin,
		Interactive: inv.Interactive,
	})

	// Steps 5-6: report the verbatim exit code, then hold for the
	// operator. Spawn failures are displayed, never swallowed.
	if result.Error != nil {
		l.Logger.Error("failed to start target", "err", result.Error)
		l.renderFailure(result.Error)
	}
	l.printDivider()
	l.printExitCode(result.ExitCode)

	if l.Pause {
		l.pause(stdin)
	}

	// Step 7: the caller exits with this code.
	return result.ExitCode, nil
}
