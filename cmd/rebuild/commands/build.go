package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [targets...]",
		Short: "Build the named targets, or every target",
		Long: "Build brings targets up to date. A target is rebuilt when its output is missing\n" +
			"or older than one of its dependencies. Without arguments every target in the\n" +
			"build file is built in declaration order.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Build(cmd.Context(), args)
		},
	}
}
