package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/log-compass/community-packs/internal/convert"
	"github.com/log-compass/community-packs/internal/ui"
)

var (
	convertOutput   string
	convertPackID   string
	convertPackName string
	convertAuthor   string
	convertTags     string
	convertGroup    string
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.filter>",
	Short: "Convert a LogViewer .filter file into a pack",
	Long: `Convert a LogViewer filter file into a pack document.

Each line of the input is name,base64(pattern),flags,"R:G:B"[,VERBOSITY].
Malformed lines are skipped with a warning; the conversion fails when no
line yields a filter.`,
	Example: `  packs convert my-filters.filter --author chgocn --tags android,crash
  packs convert crash.filter --group "Crash Logs" -o packs/crash/pack.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file path (default <input>_converted.json)")
	convertCmd.Flags().StringVar(&convertPackID, "pack-id", "", "Pack ID (lowercase, hyphenated)")
	convertCmd.Flags().StringVar(&convertPackName, "pack-name", "", "Pack display name")
	convertCmd.Flags().StringVar(&convertAuthor, "author", convert.DefaultAuthor, "Author name")
	convertCmd.Flags().StringVar(&convertTags, "tags", "", "Comma-separated tags (default custom:logviewer)")
	convertCmd.Flags().StringVar(&convertGroup, "group", "", "Group name for filters")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Usage()
		return errReported
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.Working("Converting LogViewer filters...")
	p.Plain("")

	opts := convert.Options{
		Input:    args[0],
		Output:   convertOutput,
		PackID:   convertPackID,
		PackName: convertPackName,
		Author:   convertAuthor,
		Tags:     splitTags(convertTags),
		Group:    convertGroup,
	}
	outcome, err := convert.Run(opts)
	if err != nil {
		return err
	}

	convert.WriteReport(p.Writer(), opts.Input, outcome.Output, outcome.Result.Filters)
	p.Plain("")
	p.Pass("Conversion complete!")
	p.Detail("Output saved to: %s", outcome.Output)
	return nil
}

// splitTags splits a comma-separated list, trimming blanks. Case is kept:
// tags are validated against the taxonomy as written.
func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(t); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
