package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yijing-go/yijing/internal/cli"
)

var (
	flagFormat   string
	flagQuestion string
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "yijing [input]",
	Short: "I Ching readings from the terminal",
	Long: `Yijing casts and interprets I Ching readings.

With no input it casts a figure with the three-coin method. Input may be
a hexagram number (1-64), a hexagram glyph (䷀ to ䷿), six comma-separated
line codes (6,7,8,9), or a transition (32→34, 32->34, ䷀→䷁).`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := ""
		if len(args) > 0 {
			input = args[0]
		}
		return cli.Run(cmd.OutOrStdout(), cli.Options{
			Input:    input,
			Question: flagQuestion,
			Format:   flagFormat,
			Debug:    flagDebug,
		})
	},
}

// Execute runs the root command and converts any error into a non-zero
// exit with a message naming the offending input or value.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "full", "output format: brief, full, structured, codes or status-line")
	rootCmd.Flags().StringVarP(&flagQuestion, "question", "q", "", "question to attach to the reading")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log to stderr")
}
