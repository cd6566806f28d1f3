package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/xspring/internal/engine/builder"
)

func (c *CLI) newQuickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quick",
		Short: "Create a project with the service defaults, asking only for identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			maven, _ := cmd.Flags().GetBool("maven")
			extended, _ := cmd.Flags().GetBool("extended")
			return c.app.Quick(cmd.Context(), runOptions(cmd), builder.QuickOptions{
				UseMaven: maven,
				Extended: extended,
			})
		},
	}
	cmd.Flags().BoolP("maven", "m", false, "Use Maven instead of the default build system")
	cmd.Flags().BoolP("extended", "e", false, "Skip the name and description prompts")
	return cmd
}
