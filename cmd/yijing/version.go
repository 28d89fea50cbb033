package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yijing-go/yijing"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of yijing",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("yijing version %s\n", yijing.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
