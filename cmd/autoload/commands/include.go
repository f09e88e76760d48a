package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/autoload/internal/app"
)

func (c *CLI) newIncludeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "include FILE...",
		Short: "Load files, resolving names that are not existing files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			return c.app.Include(cmd.Context(), args, app.IncludeOptions{
				ConfigOptions: configOptions(cmd),
				Dir:           dir,
			})
		},
	}
	cmd.Flags().StringP("dir", "d", "", "Directory below each search path to resolve names in")
	return cmd
}
