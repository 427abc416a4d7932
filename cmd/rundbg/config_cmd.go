// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"rundbg-cli/internal/config"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage rundbg configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE:  runConfigShow,
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Long: `Create a default config file in the platform config directory.

Locations:
  Linux:   ~/.config/rundbg/config.toml
  macOS:   ~/Library/Application Support/rundbg/config.toml
  Windows: %APPDATA%\rundbg\config.toml

An existing file is never overwritten.`,
		RunE: runConfigInit,
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewProvider().Load(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := cfgFile
	if path == "" {
		var err error
		path, err = config.DefaultConfigFilePath()
		if err != nil {
			return err
		}
	}

	if err := config.WriteDefault(path); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Created ")+CmdStyle.Render(path))
	return nil
}
