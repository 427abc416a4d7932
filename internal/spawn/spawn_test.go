// SPDX-License-Identifier: MPL-2.0

package spawn

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"testing"
)

func requirePOSIXShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test relies on a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecSpawnerSuccess(t *testing.T) {
	t.Parallel()
	requirePOSIXShell(t)

	var out bytes.Buffer
	result := NewExecSpawner().Spawn(context.Background(), Request{
		Argv:   []string{"sh", "-c", "echo OK"},
		Stdout: &out,
	})

	if result.Error != nil {
		t.Fatalf("Spawn() error = %v", result.Error)
	}
	if result.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}
	if got := out.String(); got != "OK\n" {
		t.Errorf("stdout = %q, want %q", got, "OK\n")
	}
}

func TestExecSpawnerChildExitCodePropagates(t *testing.T) {
	t.Parallel()
	requirePOSIXShell(t)

	result := NewExecSpawner().Spawn(context.Background(), Request{
		Argv: []string{"sh", "-c", "exit 7"},
	})

	if result.Error != nil {
		t.Fatalf("child exit must not be an infrastructure error, got %v", result.Error)
	}
	if result.ExitCode != 7 {
		t.Errorf("ExitCode = %d, want 7", result.ExitCode)
	}
}

func TestExecSpawnerSignalDeathIsChildResultNotSpawnFailure(t *testing.T) {
	t.Parallel()
	requirePOSIXShell(t)

	// The child runs and kills itself with SIGSEGV. That is a child
	// outcome, reported as 128+signal, never as an infrastructure error.
	result := NewExecSpawner().Spawn(context.Background(), Request{
		Argv: []string{"sh", "-c", "kill -SEGV $$"},
	})

	if result.Error != nil {
		t.Fatalf("signal death reported as infrastructure error: %v", result.Error)
	}
	want := ExitCode(128 + 11) // SIGSEGV
	if result.ExitCode != want {
		t.Errorf("ExitCode = %d, want %d", result.ExitCode, want)
	}
}

func TestExecSpawnerEnvOverrideScopedToChild(t *testing.T) {
	requirePOSIXShell(t)

	// The override must reach the child without being set in our own
	// environment first.
	if os.Getenv("RUNDBG_SPAWN_TEST_VAR") != "" {
		t.Skip("RUNDBG_SPAWN_TEST_VAR already set in parent environment")
	}

	var out bytes.Buffer
	result := NewExecSpawner().Spawn(context.Background(), Request{
		Argv:   []string{"sh", "-c", `printf '%s' "$RUNDBG_SPAWN_TEST_VAR"`},
		Env:    map[string]string{"RUNDBG_SPAWN_TEST_VAR": "utf-8"},
		Stdout: &out,
	})

	if result.Error != nil {
		t.Fatalf("Spawn() error = %v", result.Error)
	}
	if got := out.String(); got != "utf-8" {
		t.Errorf("child saw %q, want %q", got, "utf-8")
	}
	if os.Getenv("RUNDBG_SPAWN_TEST_VAR") != "" {
		t.Error("override leaked into the parent environment")
	}
}

func TestExecSpawnerProgramNotFound(t *testing.T) {
	t.Parallel()

	result := NewExecSpawner().Spawn(context.Background(), Request{
		Argv: []string{"rundbg-no-such-interpreter-zz"},
	})

	if result.Error == nil {
		t.Fatal("expected an infrastructure error for a missing program")
	}
	if !errors.Is(result.Error, exec.ErrNotFound) {
		t.Errorf("error = %v, want exec.ErrNotFound", result.Error)
	}
	if result.ExitCode != ExitCodeNotFound {
		t.Errorf("ExitCode = %d, want %d", result.ExitCode, ExitCodeNotFound)
	}
}

func TestExecSpawnerEmptyArgv(t *testing.T) {
	t.Parallel()

	result := NewExecSpawner().Spawn(context.Background(), Request{})
	if result.Error == nil {
		t.Fatal("expected an error for an empty command line")
	}
	if result.ExitCode == 0 {
		t.Error("empty command line must not report success")
	}
}

func TestEnvToSlice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
		want []string
	}{
		{name: "nil map", env: nil, want: []string{}},
		{
			name: "sorted by key",
			env:  map[string]string{"PYTHONUTF8": "1", "PYTHONIOENCODING": "utf-8"},
			want: []string{"PYTHONIOENCODING=utf-8", "PYTHONUTF8=1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := EnvToSlice(tt.env)
			if len(got) != len(tt.want) {
				t.Fatalf("EnvToSlice() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("EnvToSlice()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
