package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/log-compass/community-packs/internal/branding"
	"github.com/log-compass/community-packs/internal/config"
	perrors "github.com/log-compass/community-packs/internal/errors"
	"github.com/log-compass/community-packs/internal/logging"
	"github.com/log-compass/community-packs/internal/ui"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootDir   string
	verbosity int

	// settings is resolved once per invocation before any command runs.
	settings *config.Settings
)

// errReported marks a failure whose details the command already printed.
var errReported = errors.New("failure already reported")

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` maintains a catalog of community log-filter packs: it validates
contributed packs against the pack schema and the tag taxonomy, converts legacy
LogViewer .filter files into packs and builds the registry clients download.

The catalog root defaults to the current directory; --root or ` + branding.EnvVar("root") + ` overrides it.

Source: https://github.com/` + branding.GitHubRepo(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbosity, cmd.ErrOrStderr())

		if !cmd.Flags().Changed("root") {
			if env := os.Getenv(branding.EnvVar("root")); env != "" {
				rootDir = env
			}
		}

		s, err := config.Load(rootDir)
		if err != nil {
			return err
		}
		settings = s
		if s.ConfigFile != "" {
			logger := logging.GetLogger("cli")
			logger.Debug().Str("file", s.ConfigFile).Msg("Loaded config")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "Catalog root containing categories.json and packs/")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug, -vvv trace)")
}

// Execute runs the root command with build info injected via ldflags.
// Failures not already printed by the command are reported on stderr.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		ui.NewPrinter(rootCmd.ErrOrStderr()).Fail("%s", userMessage(err))
	}
	return err
}

// userMessage drops the code prefix from coded errors.
func userMessage(err error) string {
	var e *perrors.Error
	if errors.As(err, &e) {
		if e.Wrapped != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
		}
		return e.Message
	}
	return err.Error()
}
