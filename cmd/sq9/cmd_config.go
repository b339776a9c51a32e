package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"sq9/internal/config"
)

var configForce bool

// configCmd groups configuration helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the sq9 configuration file",
}

// configInitCmd writes the default config
var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !configForce {
		fmt.Fprint(cmd.OutOrStdout(), pterm.Warning.Sprintfln("%s already exists (use --force to overwrite)", path))
		return nil
	}
	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), pterm.Success.Sprintfln("Wrote %s", path))
	return nil
}
