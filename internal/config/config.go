package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/neokit-dev/nktool/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyCatalogURL     = "catalog_url"
	KeyCachePath      = "cache_path"
	KeyFetchTimeout   = "fetch_timeout"
	KeyPackageManager = "package_manager"
	KeyCoreVersion    = "core_version"
	KeyDebug          = "debug"
)

// DefaultFetchTimeout bounds the single catalog request.
const DefaultFetchTimeout = 30 * time.Second

// Settings is the typed view of the loaded configuration with defaults applied.
type Settings struct {
	CatalogURL     string
	CachePath      string
	FetchTimeout   time.Duration
	PackageManager string
	CoreVersion    string
	Debug          bool
}

// Dir returns the path to the config directory (~/.nktool/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.nktool/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// DefaultCachePath returns the well-known catalog cache location in the temp dir.
func DefaultCachePath() string {
	return filepath.Join(os.TempDir(), branding.CacheFile())
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	LoadFrom(FilePath())
}

// LoadFrom is Load with an explicit config file path.
func LoadFrom(path string) {
	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyCatalogURL, branding.CatalogURL())
	viper.SetDefault(KeyCachePath, DefaultCachePath())
	viper.SetDefault(KeyFetchTimeout, DefaultFetchTimeout)
	viper.SetDefault(KeyPackageManager, "npm")
	viper.SetDefault(KeyCoreVersion, "")
	viper.SetDefault(KeyDebug, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the typed settings from the loaded configuration.
func Current() Settings {
	timeout := viper.GetDuration(KeyFetchTimeout)
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return Settings{
		CatalogURL:     viper.GetString(KeyCatalogURL),
		CachePath:      viper.GetString(KeyCachePath),
		FetchTimeout:   timeout,
		PackageManager: viper.GetString(KeyPackageManager),
		CoreVersion:    viper.GetString(KeyCoreVersion),
		Debug:          viper.GetBool(KeyDebug),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}
	return SetIn(FilePath(), key, value)
}

// SetIn writes a key-value pair to the config file at path.
func SetIn(path, key, value string) error {
	viper.Set(key, value)

	// Create the file if it doesn't exist.
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", path, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
