// Package commands implements the CLI commands for xspring.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/xspring/internal/app"
	"go.trai.ch/xspring/internal/build"
	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/xspring/internal/engine/builder"
)

// CLI represents the command line interface for xspring.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Interactive(ctx context.Context, opts app.RunOptions) error
	Quick(ctx context.Context, opts app.RunOptions, quick builder.QuickOptions) error
	List(ctx context.Context, opts app.RunOptions, item domain.ListItem) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "xspring",
		Short:         "Create Spring Boot projects from the terminal",
		Long:          "xspring asks for every project setting, then downloads and unpacks the project generated by Spring Initializr.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Interactive(cmd.Context(), runOptions(cmd))
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("output", "o", "", "Directory the project is created in (default: current directory)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().String("service-url", "", "Initializr service to use instead of the configured one")
	rootCmd.PersistentFlags().String("ui", "auto", "Prompt style: auto, tui or linear")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write log records to stderr as JSON lines")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newQuickCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	flags := cmd.Flags()
	output, _ := flags.GetString("output")
	verbosity, _ := flags.GetCount("verbose")
	serviceURL, _ := flags.GetString("service-url")
	ui, _ := flags.GetString("ui")
	logJSON, _ := flags.GetBool("log-json")
	return app.RunOptions{
		Output:     output,
		ServiceURL: serviceURL,
		UI:         ui,
		Verbosity:  verbosity,
		LogJSON:    logJSON,
	}
}
