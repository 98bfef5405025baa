package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swiftcheck/swiftcheck/linter"
	"github.com/swiftcheck/swiftcheck/rules/finalclass"
	"github.com/swiftcheck/swiftcheck/runner"
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths]",
	Short: "Report violations in Swift files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().Bool("watch", false, "re-lint when files change")
}

func runLint(cmd *cobra.Command, args []string) error {
	config, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	registry := linter.NewRegistry(finalclass.New(config.Rule(finalclass.RuleName)))
	lintRunner := runner.New(registry)
	reporter := runner.NewReporter(os.Stdout)

	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return err
	}
	if watch {
		return lintRunner.Watch(cmd.Context(), args, reporter)
	}

	results, err := lintRunner.LintPaths(cmd.Context(), args)
	if err != nil {
		return err
	}

	violations := 0
	for _, result := range results {
		reporter.Report(result)
		violations += len(result.Violations)
	}
	if violations > 0 {
		return fmt.Errorf("found %d violation(s)", violations)
	}
	return nil
}

// resolveConfig loads the configuration from --config or from the
// detected project root of the first path; absent both, defaults apply.
func resolveConfig(cmd *cobra.Command, args []string) (*linter.Config, error) {
	URL, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if URL == "" {
		project, err := runner.NewDetector().DetectProject(args[0])
		if err != nil {
			return nil, err
		}
		URL = project.ConfigURL
	}
	if URL == "" {
		return linter.DefaultConfig(), nil
	}
	return linter.LoadConfig(cmd.Context(), URL)
}
