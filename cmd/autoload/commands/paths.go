package commands

import "github.com/spf13/cobra"

func (c *CLI) newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the search paths in precedence order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Paths(cmd.Context(), configOptions(cmd))
		},
	}
}
