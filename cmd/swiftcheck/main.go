package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "swiftcheck",
	Short: "Swift source linter with autocorrection",
	Long:  `swiftcheck lints Swift source files and can rewrite redundant class modifiers in place`,
}

func main() {
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(fixCmd)

	rootCmd.PersistentFlags().String("config", "", "configuration file (default: .swiftcheck.yml at the project root)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colorized output")

	cobra.OnInitialize(func() {
		if noColor, err := rootCmd.PersistentFlags().GetBool("no-color"); err == nil && noColor {
			color.NoColor = true
		}
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
