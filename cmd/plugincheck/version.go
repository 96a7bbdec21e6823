package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"plugincheck/internal/config"
)

func newVersionCmd(jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := map[string]string{
				"version": config.Version,
				"commit":  config.Commit,
				"date":    config.Date,
			}
			return print(cmd.OutOrStdout(), *jsonOutput, info,
				fmt.Sprintf("plugincheck %s\ncommit: %s\nbuilt at: %s", config.Version, config.Commit, config.Date))
		},
	}
}
