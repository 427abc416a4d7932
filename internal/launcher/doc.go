// SPDX-License-Identifier: MPL-2.0

// Package launcher implements the debug-mode launch sequence: resolve the
// working directory, probe for interpreter launchers, spawn the target with
// fault-handler instrumentation and a UTF-8-forced environment, report the
// child's exit code, and hold the terminal open for the operator before
// propagating that code.
//
// The sequence is deliberately split into separately testable steps:
// discovery is a pure probe decoupled from the spawn, the environment is an
// override map scoped to the child, and the acknowledgment pause is an
// explicit terminal primitive rather than I/O logic woven into spawning.
package launcher
