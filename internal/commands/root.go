package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/boaparser/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
// Run without a subcommand, it reports on a statement export.
func NewRootCommand() *cobra.Command {
	var flags reportFlags

	rootCmd := &cobra.Command{
		Use:     "boaparser",
		Short:   "Summarize Bank of America plain-text statement exports",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, flags)
		},
	}

	flags.register(rootCmd)
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}
