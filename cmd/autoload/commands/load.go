package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load CLASS...",
		Short: "Load the file of each class through the autoload hook",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Load(cmd.Context(), args, configOptions(cmd))
		},
	}
}
