package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/xraph/dashub"
)

func newValidateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the settings file for errors and warnings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, path, err := opts.readSettings()
			if err != nil {
				return err
			}

			if path == "" {
				path = "defaults"
			}

			p := newPrinter(cmd.OutOrStdout(), opts.noColor)
			issues := s.Validate()

			printIssues(p, path, issues)

			if issues.HasErrors() {
				return errInvalidSettings
			}

			return nil
		},
	}
}

func printIssues(p *printer, path string, issues dashub.ValidationIssues) {
	if len(issues) == 0 {
		p.printf("%s %s\n", p.green.Sprint("ok"), path)
		return
	}

	for _, issue := range issues {
		level := p.yellow.Sprint("warning")
		if issue.Level == dashub.LevelError {
			level = p.red.Sprint("error")
		}

		p.printf("%s %s: %s\n", level, p.bold.Sprint(issue.Field), issue.Message)

		if issue.Suggestion != "" {
			for _, line := range strings.Split(issue.Suggestion, "\n") {
				p.printf("  %s\n", p.gray.Sprint(line))
			}
		}
	}
}
