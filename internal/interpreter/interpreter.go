// SPDX-License-Identifier: MPL-2.0

// Package interpreter locates Python interpreter launchers on the search
// path and builds debug-instrumented command lines for them.
//
// Discovery is a pure, best-effort probe: it reports which candidate
// launchers exist so an operator can diagnose a failed spawn, but it never
// gates execution. The spawn itself uses whichever executable the selected
// invocation style names, found or not, and surfaces the failure through the
// exit code.
package interpreter

import (
	"fmt"
	"os/exec"
)

// Invocation styles. Both launch forms from the field are preserved as
// configurable strategies rather than unified: the py launcher takes a "-3"
// version selector, while a direct call encodes the version in the
// executable name ("-3" is not a CPython flag and python3 would reject it).
const (
	// StylePyLauncher invokes through the Windows-style launcher alias:
	// py -3 -X faulthandler -u <target>
	StylePyLauncher Style = "py"
	// StyleDirect invokes the interpreter binary itself:
	// python3 -X faulthandler -u <target> (falling back to python)
	StyleDirect Style = "direct"
)

// DefaultCandidates are the launcher names probed for diagnostics: the
// short-form launcher alias and the full-form interpreter names.
var DefaultCandidates = []string{"py", "python3", "python"}

type (
	// Style selects which interpreter invocation form is used.
	Style string

	// LookPathFunc resolves an executable name to a path, exec.LookPath
	// shaped. Tests inject fakes; nil means exec.LookPath.
	LookPathFunc func(name string) (string, error)

	// ProbeResult reports whether one candidate launcher was found.
	ProbeResult struct {
		Name  string
		Path  string
		Found bool
	}

	// Probe discovers candidate launchers on the search path.
	Probe struct {
		LookPath LookPathFunc
	}
)

// ParseStyle validates a style string from flags or configuration.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StylePyLauncher, StyleDirect:
		return Style(s), nil
	default:
		return "", fmt.Errorf("unknown interpreter style %q (valid: %q, %q)", s, StylePyLauncher, StyleDirect)
	}
}

// Run probes each candidate in order and reports the outcome for every one,
// found or not. It has no side effects.
func (p *Probe) Run(candidates []string) []ProbeResult {
	lookPath := p.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	results := make([]ProbeResult, 0, len(candidates))
	for _, name := range candidates {
		path, err := lookPath(name)
		results = append(results, ProbeResult{
			Name:  name,
			Path:  path,
			Found: err == nil,
		})
	}
	return results
}

// Resolve picks the executable name for a style. For the direct style it
// prefers python3 and falls back to python; when neither resolves it still
// returns python3 so the spawn attempt fails visibly instead of being
// short-circuited here.
func (s Style) Resolve(lookPath LookPathFunc) string {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	switch s {
	case StyleDirect:
		for _, name := range []string{"python3", "python"} {
			if _, err := lookPath(name); err == nil {
				return name
			}
		}
		return "python3"
	default:
		return "py"
	}
}

// Argv builds the full command line for launching target under this style
// with debug instrumentation: fault-handler tracing for low-level crashes
// and unbuffered output so diagnostics appear immediately.
func (s Style) Argv(interpreter, target string) []string {
	argv := []string{interpreter}
	if s == StylePyLauncher {
		argv = append(argv, "-3")
	}
	return append(argv, "-X", "faulthandler", "-u", target)
}
