package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/autoload/internal/app"
)

func (c *CLI) newFunctionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "functions",
		Short: "Load every function file of every search path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			prefix, _ := cmd.Flags().GetString("prefix")
			return c.app.Functions(cmd.Context(), app.FunctionsOptions{
				ConfigOptions: configOptions(cmd),
				Dir:           dir,
				Prefix:        prefix,
			})
		},
	}
	cmd.Flags().StringP("dir", "d", "functions", "Directory below each search path holding function files")
	cmd.Flags().String("prefix", "_", "File name prefix of function files")
	return cmd
}
