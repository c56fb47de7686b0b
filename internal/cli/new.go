package cli

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/log-compass/community-packs/internal/branding"
	"github.com/log-compass/community-packs/internal/logging"
	"github.com/log-compass/community-packs/internal/scaffold"
	"github.com/log-compass/community-packs/internal/taxonomy"
	"github.com/log-compass/community-packs/internal/ui"
)

var (
	newName        string
	newAuthor      string
	newDescription string
	newTags        string
)

var newCmd = &cobra.Command{
	Use:   "new <pack-id>",
	Short: "Create a new pack from the starter template",
	Long: `Create packs/<pack-id>/ with a starter pack.json and README.md.

The generated pack is checked against the pack schema and the tag taxonomy;
problems are reported as warnings so they can be fixed before running
"validate".`,
	Example: `  packs new android-crashes --author chgocn --tags android,custom:anr`,
	Args:    cobra.ExactArgs(1),
	RunE:    runNew,
}

func init() {
	newCmd.Flags().StringVar(&newName, "name", "", "Pack display name (default derived from the id)")
	newCmd.Flags().StringVar(&newAuthor, "author", "", "Author name")
	newCmd.Flags().StringVar(&newDescription, "description", "", "Pack description")
	newCmd.Flags().StringVar(&newTags, "tags", "", "Comma-separated tags")
	_ = newCmd.MarkFlagRequired("author")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	id := args[0]

	// Tag checks are skipped when the taxonomy is unavailable.
	tx, err := taxonomy.Load(settings.CategoriesFile)
	if err != nil {
		logger := logging.GetLogger("cli")
		logger.Warn().Err(err).Msg("Skipping tag checks")
		tx = nil
	}

	data := scaffold.NewData(id, newName, newAuthor, newDescription, splitTags(newTags), time.Now())
	result, err := scaffold.Generate(data, filepath.Join(settings.PacksDir, id), tx)
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.Pass("Created pack %s in %s", id, result.OutputDir)
	for _, f := range result.Files {
		p.Detail("%s", f)
	}
	for _, w := range result.Warnings {
		p.Warn("%s", w)
	}
	p.Plain("")
	p.Info("Add filters, then run '%s validate'", branding.CLIName())
	return nil
}
