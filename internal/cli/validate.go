package cli

import (
	"github.com/spf13/cobra"

	"github.com/log-compass/community-packs/internal/ui"
	"github.com/log-compass/community-packs/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every pack and rebuild the registry",
	Long: `Validate every pack under the packs directory against the pack schema and
the tag taxonomy in categories.json. Each pack gets one result line.

When every pack passes, the registry is rebuilt with the same settings.
Any failing pack makes the command exit with status 1.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	report, err := validator.Run(validator.Options{
		PacksDir:       settings.PacksDir,
		CategoriesFile: settings.CategoriesFile,
		Out:            cmd.OutOrStdout(),
	})
	if err != nil {
		// The validator already printed the fatal condition.
		return errReported
	}
	if !report.OK() {
		return errReported
	}
	if report.DirMissing {
		return nil
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.Plain("")
	p.Working("Updating registry...")
	if err := buildRegistry(cmd); err != nil {
		p.Warn("Failed to update registry: %s", userMessage(err))
		return errReported
	}
	return nil
}
