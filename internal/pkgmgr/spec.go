package pkgmgr

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/neokit-dev/nktool/internal/branding"
)

// PackageSpec returns name pinned to constraint ("name@constraint"). An empty
// constraint returns name unchanged; anything that is not a valid semver
// constraint is rejected.
func PackageSpec(name, constraint string) (string, error) {
	constraint = strings.TrimSpace(constraint)
	if constraint == "" {
		return name, nil
	}
	if _, err := semver.NewConstraint(constraint); err != nil {
		return "", fmt.Errorf("invalid version constraint %q for %s: %w", constraint, name, err)
	}
	return name + "@" + constraint, nil
}

// ScopedPlugin returns the npm package name for a catalog plugin id.
func ScopedPlugin(id string) string {
	return branding.PackageScope() + "/" + id
}

// ScopedPlugins maps ScopedPlugin over ids.
func ScopedPlugins(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = ScopedPlugin(id)
	}
	return out
}
