package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/autoload/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve NAME...",
		Short: "Print the file each name resolves to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			all, _ := cmd.Flags().GetBool("all")
			stats, _ := cmd.Flags().GetBool("stats")
			return c.app.Resolve(cmd.Context(), args, app.ResolveOptions{
				ConfigOptions: configOptions(cmd),
				Dir:           dir,
				All:           all,
				Stats:         stats,
			})
		},
	}
	cmd.Flags().StringP("dir", "d", "", "Directory below each search path to look in")
	cmd.Flags().BoolP("all", "a", false, "Print every matching file, lowest precedence first")
	cmd.Flags().Bool("stats", false, "Print lookup counters per cache tier")
	return cmd
}
