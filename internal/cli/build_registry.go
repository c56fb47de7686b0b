package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/log-compass/community-packs/internal/registry"
	"github.com/log-compass/community-packs/internal/ui"
)

var buildRegistryCmd = &cobra.Command{
	Use:   "build-registry",
	Short: "Aggregate every pack into the registry document",
	Long: `Read the header of every pack under the packs directory and write the
registry document: one summary per pack, sorted by name, plus the categories
from categories.json. Packs are not validated; run "validate" for that.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return buildRegistry(cmd)
	},
}

func init() {
	rootCmd.AddCommand(buildRegistryCmd)
}

// buildRegistry builds and writes the registry for the current settings.
func buildRegistry(cmd *cobra.Command) error {
	reg, err := registry.Build(registry.Options{
		PacksDir:       settings.PacksDir,
		CategoriesFile: settings.CategoriesFile,
		BaseURL:        settings.BaseURL,
		Version:        settings.RegistryVersion,
		PathPrefix:     pathPrefix(settings.Root, settings.PacksDir),
	})
	if err != nil {
		return err
	}
	if err := registry.Write(settings.RegistryFile, reg); err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.Pass("Generated registry with %d pack(s)", len(reg.Packs))
	p.Plain("📁 Categories: %d", len(reg.Categories))
	return nil
}

// pathPrefix is the packs directory relative to the catalog root, as used in
// summary paths. Directories outside the root fall back to the default.
func pathPrefix(root, packsDir string) string {
	rel, err := filepath.Rel(root, packsDir)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return registry.DefaultPathPrefix
	}
	return filepath.ToSlash(rel)
}
