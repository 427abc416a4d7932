// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "launch target"},
			want: "failed to launch target",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "launch target", Resource: "app.py"},
			want: "failed to launch target: app.py",
		},
		{
			name: "full chain",
			err: &ActionableError{
				Operation: "resolve working directory",
				Resource:  "/opt/tools",
				Cause:     errors.New("permission denied"),
			},
			want: "failed to resolve working directory: /opt/tools: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := WrapWithOperation(cause, "launch target")
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestWrapWithOperationNil(t *testing.T) {
	t.Parallel()

	if got := WrapWithOperation(nil, "launch target"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}
}

func TestFormatIncludesSuggestions(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("Run 'rundbg config init'").
		WithSuggestion("Check the TOML syntax").
		Build()

	out := err.Format(false)
	if !strings.Contains(out, "Run 'rundbg config init'") {
		t.Errorf("Format() missing first suggestion: %q", out)
	}
	if !strings.Contains(out, "Check the TOML syntax") {
		t.Errorf("Format() missing second suggestion: %q", out)
	}
}

func TestFormatVerboseShowsErrorChain(t *testing.T) {
	t.Parallel()

	inner := errors.New("no such file or directory")
	err := NewErrorContext().
		WithOperation("launch target").
		Wrap(WrapWithOperation(inner, "spawn child")).
		Build()

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("verbose Format() missing error chain: %q", verbose)
	}
	if !strings.Contains(verbose, "no such file or directory") {
		t.Errorf("verbose Format() missing innermost cause: %q", verbose)
	}

	terse := err.Format(false)
	if strings.Contains(terse, "Error chain:") {
		t.Errorf("non-verbose Format() must not include the chain: %q", terse)
	}
}

func TestBuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().WithResource("app.py").Build(); got != nil {
		t.Errorf("Build() without operation = %v, want nil", got)
	}
	if got := NewErrorContext().WithResource("app.py").BuildError(); got != nil {
		t.Errorf("BuildError() without operation = %v, want nil", got)
	}
}
