package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "nktool"},
		{"DisplayName", DisplayName(), "NeoKit"},
		{"HomeDir", HomeDir(), ".nktool"},
		{"EnvPrefix", EnvPrefix(), "NKTOOL"},
		{"CatalogURL", CatalogURL(), "https://plugins.neokit.dev/list.json"},
		{"CacheFile", CacheFile(), "neokit-plugin-list.json"},
		{"PackageScope", PackageScope(), "@neokit-dev"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("cache_path"); got != "NKTOOL_CACHE_PATH" {
		t.Errorf("EnvVar(cache_path) = %q, want NKTOOL_CACHE_PATH", got)
	}
}
