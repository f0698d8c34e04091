package cli

import (
	"fmt"

	"github.com/labforge-dev/labforge/internal/branding"
	"github.com/labforge-dev/labforge/internal/config"
	"github.com/labforge-dev/labforge/internal/scaffold"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var dryRun bool

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be created without writing files")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <project-name> [base-path]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a standardized directory and file skeleton for a research
project under <base-path>/<project-name>. Without a base path, the configured
default (` + "`" + `labforge config get base_path` + "`" + `, falling back to ".") is used.

With --dry-run the planned tree is printed and nothing is written. An existing
target path is always rejected, dry run included.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		req := scaffold.Request{
			Name:     args[0],
			BasePath: config.Get(config.KeyBasePath),
			DryRun:   dryRun,
		}
		if len(args) == 2 {
			req.BasePath = args[1]
		}

		if req.DryRun {
			tree, err := scaffold.Plan(req)
			if err != nil {
				return err
			}
			// Deterministic, unstyled: dry-run output is the canonical plan.
			fmt.Fprint(cmd.OutOrStdout(), tree)
			return nil
		}

		summary, err := scaffold.Create(req)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\n%s Project structure created successfully at: %s\n",
			render(successStyle, "✓"), render(pathStyle, summary.Root))

		p := message.NewPrinter(language.English)
		p.Fprintf(out, "Created %d directories and %d files.\n", summary.DirCount, summary.FileCount)

		fmt.Fprintln(out, "\nSee the README.md for an overview of the structure.")
		fmt.Fprintln(out, "\nNext steps:")
		for i, step := range summary.NextSteps {
			fmt.Fprintf(out, "%d. %s\n", i+1, step)
		}
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
