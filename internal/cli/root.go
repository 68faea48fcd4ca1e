package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/neokit-dev/nktool/internal/branding"
	"github.com/neokit-dev/nktool/internal/catalog"
	"github.com/neokit-dev/nktool/internal/config"
	"github.com/neokit-dev/nktool/internal/logging"
	"github.com/neokit-dev/nktool/internal/prompt"
	"github.com/neokit-dev/nktool/internal/ui"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagDebug      bool
	flagConfigFile string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` sets up SvelteKit projects for NeoKit: it installs the
deployment adapter and the NeoKit core, and installs plugins from the NeoKit
plugin catalog together with everything they require.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagConfigFile != "" {
			config.LoadFrom(flagConfigFile)
		} else {
			config.Load()
		}
		logging.Init(flagDebug || config.Current().Debug, cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "Config file (default ~/"+branding.HomeDir()+"/config.yaml)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd, err)
	}
	return err
}

func printError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	if errors.Is(err, prompt.ErrAborted) {
		fmt.Fprintln(w, ui.Error.Render("\nAborted."))
		return
	}
	fmt.Fprintln(w, ui.Error.Render("Error: "+err.Error()))
}

// newLoader builds the catalog loader from the current settings.
func newLoader(s config.Settings) *catalog.Loader {
	fetcher := catalog.NewHTTPFetcher(
		catalog.WithTimeout(s.FetchTimeout),
		catalog.WithUserAgent(branding.CLIName()+"/"+buildVersion),
	)
	return catalog.NewLoader(catalog.NewCache(s.CachePath), fetcher, s.CatalogURL)
}
