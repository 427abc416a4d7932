// SPDX-License-Identifier: MPL-2.0

// Package spawn runs a single child process with a scoped environment and
// reports its exit status.
//
// The package deliberately separates "the child failed" from "the child could
// not be started": a non-zero exit from the child yields a Result with that
// code and a nil Error, while a failed spawn (program not found, unusable
// working directory) yields a Result with a synthetic code and the underlying
// error. Callers that only care about the final status can read ExitCode in
// both cases.
package spawn

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sort"
)

type (
	// Request describes one child invocation. Argv must have at least one
	// element; Argv[0] is the program to run and is resolved against PATH.
	Request struct {
		// Argv is the full command line, program first.
		Argv []string
		// Dir is the working directory for the child ("" inherits).
		Dir string
		// Env holds environment overrides visible to the child only.
		// They are appended to the inherited environment, so they win over
		// any inherited value of the same name. The parent environment is
		// never mutated.
		Env map[string]string
		// Stdout, Stderr and Stdin are the child's standard streams.
		// Nil streams are left unattached.
		Stdout io.Writer
		Stderr io.Writer
		Stdin  io.Reader
		// Interactive attaches the child to a pseudo-terminal where the
		// platform supports it, so targets that probe for a TTY behave as
		// they would in a real terminal.
		Interactive bool
	}

	// Result is the outcome of a spawn. ExitCode is always meaningful;
	// Error is non-nil only for infrastructure failures, never for a child
	// that ran and exited non-zero.
	Result struct {
		ExitCode ExitCode
		Error    error
	}

	// Spawner starts a child process and blocks until it terminates.
	Spawner interface {
		Spawn(ctx context.Context, req Request) Result
	}

	// ExecSpawner is the production Spawner backed by os/exec.
	ExecSpawner struct{}
)

// NewExecSpawner creates the production spawner.
func NewExecSpawner() *ExecSpawner {
	return &ExecSpawner{}
}

// Spawn runs the requested command and waits for it to exit.
func (s *ExecSpawner) Spawn(ctx context.Context, req Request) Result {
	if len(req.Argv) == 0 {
		return Result{ExitCode: ExitCodeSpawnFailure, Error: errors.New("empty command line")}
	}

	cmd := exec.CommandContext(ctx, req.Argv[0], req.Argv[1:]...)
	if req.Dir != "" {
		cmd.Dir = req.Dir
	}
	cmd.Env = append(os.Environ(), EnvToSlice(req.Env)...)

	var runErr error
	if req.Interactive {
		runErr = runInteractive(cmd, req.Stdin, req.Stdout, req.Stderr)
	} else {
		cmd.Stdout = req.Stdout
		cmd.Stderr = req.Stderr
		cmd.Stdin = req.Stdin
		runErr = cmd.Run()
	}

	return extractExitCode(runErr)
}

// extractExitCode determines the exit code from a command execution error.
func extractExitCode(err error) Result {
	if err == nil {
		return Result{}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The child executed and terminated; its status is authoritative,
		// signal deaths included. Never report it as a start failure.
		return Result{ExitCode: childExitCode(exitErr)}
	}

	if errors.Is(err, exec.ErrNotFound) {
		return Result{ExitCode: ExitCodeNotFound, Error: err}
	}

	return Result{ExitCode: ExitCodeSpawnFailure, Error: err}
}

// EnvToSlice converts an environment override map to "KEY=VALUE" entries,
// sorted by key so the child environment is deterministic.
func EnvToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}
