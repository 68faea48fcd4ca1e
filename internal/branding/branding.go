// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed; edit it to rename the tool,
// point it at another plugin catalog, or publish plugins under another scope.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	CatalogURL   string `yaml:"catalog_url"`
	CacheFile    string `yaml:"cache_file"`
	PackageScope string `yaml:"package_scope"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:      "nktool",
			DisplayName:  "NeoKit",
			Description:  "NeoKit CLI",
			HomeDir:      ".nktool",
			EnvPrefix:    "NKTOOL",
			CatalogURL:   "https://plugins.neokit.dev/list.json",
			CacheFile:    "neokit-plugin-list.json",
			PackageScope: "@neokit-dev",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "nktool").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "NeoKit").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".nktool").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "NKTOOL").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// CatalogURL returns the default remote plugin catalog URL.
func CatalogURL() string { load(); return defaults.CatalogURL }

// CacheFile returns the file name used for the local catalog cache.
func CacheFile() string { load(); return defaults.CacheFile }

// PackageScope returns the npm scope plugins are published under (e.g., "@neokit-dev").
func PackageScope() string { load(); return defaults.PackageScope }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("DEBUG") → "NKTOOL_DEBUG".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
