package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xraph/dashub"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dashub version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dashub %s\n", dashub.Version)
		},
	}
}
