// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for rundbg.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables step-by-step diagnostics logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command. Running rundbg with no
	// arguments performs the launch; subcommands cover configuration.
	rootCmd = &cobra.Command{
		Use:   "rundbg",
		Short: "A debug-mode launcher for Python programs",
		Long: TitleStyle.Render("rundbg") + SubtitleStyle.Render(" - A debug-mode launcher for Python programs") + `

rundbg starts a Python target with fault-handler instrumentation and
unbuffered output, forces UTF-8 text I/O in the child's environment,
reports the child's exit code, and keeps the terminal open until you
acknowledge - so a window that would flash and close on failure stays
readable. The launcher itself exits with the child's exit code.

` + SubtitleStyle.Render("Examples:") + `
  rundbg                         Launch the configured target
  rundbg --target editor.py      Launch a specific script
  rundbg --style direct          Use python3 instead of the py launcher
  rundbg --no-pause              Skip the final acknowledgment prompt
  rundbg config init             Create a default config file`,
		Args: cobra.NoArgs,
		RunE: runLaunch,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the platform config dir)")

	// Launch flags
	rootCmd.Flags().StringP("target", "t", "", "target script to launch (overrides config)")
	rootCmd.Flags().String("style", "", `interpreter invocation style: "py" or "direct"`)
	rootCmd.Flags().String("workdir", "", "working directory (default is the launcher's own directory)")
	rootCmd.Flags().Bool("no-pause", false, "do not wait for acknowledgment after the child exits")
	rootCmd.Flags().BoolP("interactive", "i", false, "attach the child to a pseudo-terminal")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(issuesCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command and terminates the process with the code an
// ExitError carries, so outer automation observes the child's true result.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}
