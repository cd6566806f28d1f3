package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/xspring/internal/core/domain"
)

// listFlags maps each list selector flag to the catalog part it prints.
var listFlags = []struct {
	name      string
	shorthand string
	item      domain.ListItem
	usage     string
}{
	{"java", "j", domain.ListJava, "List Java versions"},
	{"boot", "b", domain.ListBoot, "List Spring Boot versions"},
	{"type", "t", domain.ListType, "List project types"},
	{"language", "l", domain.ListLanguage, "List languages"},
	{"packaging", "p", domain.ListPackaging, "List packaging options"},
	{"deps", "d", domain.ListDeps, "List dependencies by category"},
}

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the values offered by the Initializr service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.List(cmd.Context(), runOptions(cmd), selectedItem(cmd))
		},
	}

	names := make([]string, 0, len(listFlags))
	for _, f := range listFlags {
		cmd.Flags().BoolP(f.name, f.shorthand, false, f.usage)
		names = append(names, f.name)
	}
	cmd.MarkFlagsOneRequired(names...)
	cmd.MarkFlagsMutuallyExclusive(names...)
	return cmd
}

func selectedItem(cmd *cobra.Command) domain.ListItem {
	for _, f := range listFlags {
		if set, _ := cmd.Flags().GetBool(f.name); set {
			return f.item
		}
	}
	return ""
}
