package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/log-compass/community-packs/internal/branding"
	"github.com/log-compass/community-packs/internal/logging"
	"github.com/log-compass/community-packs/internal/registry"
	"github.com/log-compass/community-packs/internal/search"
	"github.com/log-compass/community-packs/internal/ui"
)

var (
	searchTagFilter      string
	searchCategoryFilter string
	searchAuthorFilter   string
	searchJSON           bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the built registry for packs",
	Long: `Search the registry document for packs.

The query is matched fuzzily against pack names, ids and descriptions, and
results are ranked by match quality. Use --tag, --category and --author to
narrow the results; all filters must match, while --tag matches any listed tag.
Run "build-registry" first so the registry reflects the packs directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchTagFilter, "tag", "", "Filter by tags (comma-separated, matches any)")
	searchCmd.Flags().StringVar(&searchCategoryFilter, "category", "", "Filter by category (first tag of the pack)")
	searchCmd.Flags().StringVar(&searchAuthorFilter, "author", "", "Filter by author")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	q := search.Query{
		Tags:     search.ParseTags(searchTagFilter),
		Category: searchCategoryFilter,
		Author:   searchAuthorFilter,
	}
	if len(args) > 0 {
		q.Text = args[0]
	}

	reg, err := registry.Load(settings.RegistryFile)
	if err != nil {
		return err
	}

	warnIfStale(cmd, reg)

	matches := search.Run(reg, q)

	if searchJSON {
		return printSearchJSON(cmd, matches)
	}

	if len(matches) == 0 {
		msg := "No packs found"
		if q.Text != "" {
			msg += fmt.Sprintf(" matching %q", q.Text)
		}
		if searchTagFilter != "" {
			msg += fmt.Sprintf(" with --tag=%s", searchTagFilter)
		}
		if searchCategoryFilter != "" {
			msg += fmt.Sprintf(" with --category=%s", searchCategoryFilter)
		}
		if searchAuthorFilter != "" {
			msg += fmt.Sprintf(" with --author=%s", searchAuthorFilter)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}

	return printSearchTable(cmd, matches)
}

// warnIfStale notes on stderr when packs changed after the registry was built.
func warnIfStale(cmd *cobra.Command, reg *registry.Registry) {
	stale, err := registry.StalePacks(reg, settings.PacksDir)
	if err != nil {
		logger := logging.GetLogger("cli")
		logger.Debug().Err(err).Msg("Skipping freshness check")
		return
	}
	if len(stale) > 0 {
		ui.NewPrinter(cmd.ErrOrStderr()).Warn("Registry is out of date for %d pack(s). Run '%s build-registry'.",
			len(stale), branding.CLIName())
	}
}

func printSearchTable(cmd *cobra.Command, matches []search.Match) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVERSION\tCATEGORY\tDESCRIPTION")
	for _, m := range matches {
		category := m.Category
		if category == "" {
			category = "-"
		}
		desc := []rune(m.Description)
		if len(desc) > 60 {
			desc = append(desc[:57], []rune("...")...)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.Name, m.Version, category, string(desc))
	}
	return w.Flush()
}

func printSearchJSON(cmd *cobra.Command, matches []search.Match) error {
	data, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
