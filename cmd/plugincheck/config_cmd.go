package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"plugincheck/internal/config"
)

func newConfigCmd(jsonOutput *bool) *cobra.Command {
	var force bool

	configCmd := &cobra.Command{Use: "config", Short: "Manage the plugincheck config file"}

	initCmd := &cobra.Command{
		Use:   "init [root]",
		Short: "Write a default " + config.FileName,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			path := config.DefaultConfigPath(root)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("CFG_EXISTS: %s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			return print(cmd.OutOrStdout(), *jsonOutput, map[string]string{"written": path}, "wrote "+path)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(initCmd)
	return configCmd
}
