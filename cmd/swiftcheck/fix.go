package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/swiftcheck/swiftcheck/linter"
	"github.com/swiftcheck/swiftcheck/rules/finalclass"
	"github.com/swiftcheck/swiftcheck/runner"
)

var fixCmd = &cobra.Command{
	Use:   "fix [paths]",
	Short: "Apply autocorrections to Swift files in place",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFix,
}

func runFix(cmd *cobra.Command, args []string) error {
	config, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	registry := linter.NewRegistry(finalclass.New(config.Rule(finalclass.RuleName)))
	fixRunner := runner.New(registry)
	reporter := runner.NewReporter(os.Stdout)

	results, err := fixRunner.FixPaths(cmd.Context(), args)
	if err != nil {
		return err
	}
	for _, result := range results {
		reporter.ReportCorrections(result)
	}
	return nil
}
