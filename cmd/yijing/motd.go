package main

import (
	"github.com/spf13/cobra"

	"github.com/yijing-go/yijing/internal/cli"
)

// motd is a shortcut for a random cast in status-line form, meant for
// shell greetings: yijing motd >> /etc/motd, or in a prompt.
var motdCmd = &cobra.Command{
	Use:          "motd",
	Short:        "Cast a figure and print it as a single status line",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Run(cmd.OutOrStdout(), cli.Options{
			Format: "status-line",
			Debug:  flagDebug,
		})
	},
}

func init() {
	rootCmd.AddCommand(motdCmd)
}
