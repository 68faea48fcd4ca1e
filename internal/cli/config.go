package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/neokit-dev/nktool/internal/branding"
	"github.com/neokit-dev/nktool/internal/config"
	"github.com/neokit-dev/nktool/internal/pkgmgr"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write ` + branding.DisplayName() + ` configuration stored at ~/` + branding.HomeDir() + `/config.yaml.

Keys:
  catalog_url      Plugin catalog URL
  cache_path       Local catalog cache file
  fetch_timeout    Catalog download timeout (e.g. 30s)
  package_manager  npm, pnpm, yarn or bun
  core_version     Version constraint for the NeoKit core (e.g. ^1.0.0)
  debug            Enable debug logging (true/false)

Every key can also be set through the environment, e.g. ` + branding.EnvVar("PACKAGE_MANAGER") + `=pnpm.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := validateConfigValue(key, value); err != nil {
			return err
		}
		if err := setConfig(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isConfigKey(args[0]) {
			return unknownKeyError(args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configKeys = []string{
	config.KeyCatalogURL,
	config.KeyCachePath,
	config.KeyFetchTimeout,
	config.KeyPackageManager,
	config.KeyCoreVersion,
	config.KeyDebug,
}

func setConfig(key, value string) error {
	if flagConfigFile != "" {
		return config.SetIn(flagConfigFile, key, value)
	}
	return config.Set(key, value)
}

func isConfigKey(key string) bool {
	for _, k := range configKeys {
		if k == key {
			return true
		}
	}
	return false
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown config key %q: valid keys are %s", key, strings.Join(configKeys, ", "))
}

// validateConfigValue rejects values the CLI would fail on later.
func validateConfigValue(key, value string) error {
	switch key {
	case config.KeyFetchTimeout:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid %s %q: use a positive duration such as 30s", key, value)
		}
	case config.KeyPackageManager:
		if _, err := pkgmgr.New(value, ""); err != nil {
			return err
		}
	case config.KeyCoreVersion:
		if _, err := pkgmgr.PackageSpec("core", value); err != nil {
			return err
		}
	case config.KeyDebug:
		if value != "true" && value != "false" {
			return fmt.Errorf("invalid %s %q: use true or false", key, value)
		}
	case config.KeyCatalogURL, config.KeyCachePath:
		if value == "" {
			return fmt.Errorf("%s cannot be empty", key)
		}
	default:
		return unknownKeyError(key)
	}
	return nil
}
