// SPDX-License-Identifier: MPL-2.0

package config

type (
	// Config is the full rundbg configuration.
	Config struct {
		// Target is the script handed to the interpreter.
		Target string `mapstructure:"target" toml:"target"`
		// Style selects the interpreter invocation form: "py" for the
		// versioned launcher alias, "direct" for the interpreter binary.
		Style string `mapstructure:"style" toml:"style"`
		// Candidates are the launcher names probed for diagnostics.
		Candidates []string `mapstructure:"candidates" toml:"candidates"`
		// Workdir overrides the working directory. Empty means the
		// directory containing the rundbg executable.
		Workdir string `mapstructure:"workdir" toml:"workdir"`

		UI UIConfig `mapstructure:"ui" toml:"ui"`
	}

	// UIConfig holds terminal interaction settings.
	UIConfig struct {
		// Verbose enables step-by-step diagnostics logging.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
		// NoPause disables the blocking acknowledgment prompt after the
		// child exits. The prompt is also skipped automatically when
		// stdin is not a terminal.
		NoPause bool `mapstructure:"no_pause" toml:"no_pause"`
		// Interactive attaches the child to a pseudo-terminal.
		Interactive bool `mapstructure:"interactive" toml:"interactive"`
	}
)

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Target:     "main.py",
		Style:      "py",
		Candidates: []string{"py", "python3", "python"},
	}
}
