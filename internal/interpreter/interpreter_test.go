// SPDX-License-Identifier: MPL-2.0

package interpreter

import (
	"errors"
	"reflect"
	"testing"
)

var errNotOnPath = errors.New("executable file not found in $PATH")

// fakeLookPath resolves only the given names, mapping each to /usr/bin/<name>.
func fakeLookPath(found ...string) LookPathFunc {
	return func(name string) (string, error) {
		for _, f := range found {
			if f == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errNotOnPath
	}
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Style
		wantErr bool
	}{
		{input: "py", want: StylePyLauncher},
		{input: "direct", want: StyleDirect},
		{input: "", wantErr: true},
		{input: "python", wantErr: true},
		{input: "PY", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseStyle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStyle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseStyle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestProbeRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		onPath     []string
		candidates []string
		want       []ProbeResult
	}{
		{
			name:       "all found",
			onPath:     []string{"py", "python3", "python"},
			candidates: DefaultCandidates,
			want: []ProbeResult{
				{Name: "py", Path: "/usr/bin/py", Found: true},
				{Name: "python3", Path: "/usr/bin/python3", Found: true},
				{Name: "python", Path: "/usr/bin/python", Found: true},
			},
		},
		{
			name:       "none found",
			onPath:     nil,
			candidates: []string{"py", "python3"},
			want: []ProbeResult{
				{Name: "py", Found: false},
				{Name: "python3", Found: false},
			},
		},
		{
			name:       "partial",
			onPath:     []string{"python3"},
			candidates: DefaultCandidates,
			want: []ProbeResult{
				{Name: "py", Found: false},
				{Name: "python3", Path: "/usr/bin/python3", Found: true},
				{Name: "python", Found: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			probe := &Probe{LookPath: fakeLookPath(tt.onPath...)}
			got := probe.Run(tt.candidates)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Probe.Run() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProbeRunIsSideEffectFree(t *testing.T) {
	t.Parallel()

	// Probing must not depend on any candidate existing.
	probe := &Probe{LookPath: fakeLookPath()}
	got := probe.Run(DefaultCandidates)
	if len(got) != len(DefaultCandidates) {
		t.Fatalf("Probe.Run() reported %d results, want %d", len(got), len(DefaultCandidates))
	}
	for _, r := range got {
		if r.Found {
			t.Errorf("candidate %q reported found with empty fake path", r.Name)
		}
	}
}

func TestStyleResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		style  Style
		onPath []string
		want   string
	}{
		{name: "py launcher always py", style: StylePyLauncher, onPath: nil, want: "py"},
		{name: "direct prefers python3", style: StyleDirect, onPath: []string{"python3", "python"}, want: "python3"},
		{name: "direct falls back to python", style: StyleDirect, onPath: []string{"python"}, want: "python"},
		{name: "direct with nothing found", style: StyleDirect, onPath: nil, want: "python3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.style.Resolve(fakeLookPath(tt.onPath...)); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyleArgv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		style       Style
		interpreter string
		target      string
		want        []string
	}{
		{
			name:        "py launcher carries version selector",
			style:       StylePyLauncher,
			interpreter: "py",
			target:      "app.py",
			want:        []string{"py", "-3", "-X", "faulthandler", "-u", "app.py"},
		},
		{
			name:        "direct encodes version in binary name",
			style:       StyleDirect,
			interpreter: "python3",
			target:      "editor.py",
			want:        []string{"python3", "-X", "faulthandler", "-u", "editor.py"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.style.Argv(tt.interpreter, tt.target)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Argv() = %v, want %v", got, tt.want)
			}
		})
	}
}
