// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"rundbg-cli/internal/config"
	"rundbg-cli/internal/interpreter"
	"rundbg-cli/internal/issue"
	"rundbg-cli/internal/launcher"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// launchOptions captures the launch-relevant flag values as an immutable
// value, so merging with configuration is a pure, testable step.
type launchOptions struct {
	Target      string
	Style       string
	Workdir     string
	NoPause     bool
	Interactive bool
}

func runLaunch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg := loadConfigWithFallback(ctx, cmd.ErrOrStderr())

	opts, err := launchOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	inv, err := resolveInvocation(cfg, opts)
	if err != nil {
		return err
	}

	l := launcher.New()
	l.Pause = !opts.NoPause && !cfg.UI.NoPause && stdinIsTerminal()
	l.Logger = newLaunchLogger(cfg)

	code, err := l.Run(ctx, inv)
	if err != nil {
		// Setup failed before any child was spawned; show why.
		fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: code}
	}
	if !code.IsSuccess() {
		return &ExitError{Code: code}
	}
	return nil
}

// launchOptionsFromFlags gathers the launch flags from Cobra state.
func launchOptionsFromFlags(cmd *cobra.Command) (launchOptions, error) {
	opts := launchOptions{}

	var err error
	if opts.Target, err = cmd.Flags().GetString("target"); err != nil {
		return opts, err
	}
	if opts.Style, err = cmd.Flags().GetString("style"); err != nil {
		return opts, err
	}
	if opts.Workdir, err = cmd.Flags().GetString("workdir"); err != nil {
		return opts, err
	}
	if opts.NoPause, err = cmd.Flags().GetBool("no-pause"); err != nil {
		return opts, err
	}
	if opts.Interactive, err = cmd.Flags().GetBool("interactive"); err != nil {
		return opts, err
	}

	return opts, nil
}

// resolveInvocation merges flags over configuration into the immutable
// Invocation for this run. Flags win; unset values fall back to config, and
// the working directory defaults to the directory containing the launcher
// executable so relative target paths resolve no matter where rundbg was
// invoked from.
func resolveInvocation(cfg *config.Config, opts launchOptions) (launcher.Invocation, error) {
	inv := launcher.Invocation{
		Target:      firstNonEmpty(opts.Target, cfg.Target),
		Candidates:  cfg.Candidates,
		Interactive: opts.Interactive || cfg.UI.Interactive,
	}
	if len(inv.Candidates) == 0 {
		inv.Candidates = interpreter.DefaultCandidates
	}

	style, err := interpreter.ParseStyle(firstNonEmpty(opts.Style, cfg.Style))
	if err != nil {
		return launcher.Invocation{}, err
	}
	inv.Style = style

	inv.WorkDir = firstNonEmpty(opts.Workdir, cfg.Workdir)
	if inv.WorkDir == "" {
		dir, err := launcher.ExecutableDir()
		if err != nil {
			return launcher.Invocation{}, err
		}
		inv.WorkDir = dir
	}

	return inv, nil
}

// loadConfigWithFallback loads configuration, falling back to defaults with
// a warning so a broken config file never blocks a debug launch.
func loadConfigWithFallback(ctx context.Context, stderr io.Writer) *config.Config {
	cfg, err := config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		renderIssueCard(stderr, issue.ConfigLoadFailedId)
		fmt.Fprintln(stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return config.DefaultConfig()
	}
	return cfg
}

// renderIssueCard writes the catalog card for id to w; rendering problems
// are silently skipped since a card only supplements the error text.
func renderIssueCard(w io.Writer, id issue.Id) {
	iss := issue.Get(id)
	if iss == nil {
		return
	}
	if card, err := iss.Render("auto"); err == nil {
		fmt.Fprint(w, card)
	}
}

// newLaunchLogger builds the diagnostics logger: debug level in verbose
// mode, warnings only otherwise.
func newLaunchLogger(cfg *config.Config) *log.Logger {
	level := log.WarnLevel
	if verbose || cfg.UI.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
		Prefix:          "rundbg",
	})
}

// formatErrorForDisplay formats an error for user display. ActionableError
// values render their suggestions; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// stdinIsTerminal reports whether stdin is attached to a terminal. The
// acknowledgment pause only makes sense for a human at a console; under
// automation the launcher would otherwise block forever.
func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
