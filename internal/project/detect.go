package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFile is the file whose presence marks a SvelteKit project.
const ConfigFile = "svelte.config.js"

// ErrNotSvelteKit is returned when the directory has no svelte.config.js.
var ErrNotSvelteKit = errors.New("no svelte.config.js found; create a SvelteKit project first with `npx sv create`")

// Detect checks that dir is a SvelteKit project.
func Detect(dir string) error {
	fi, err := os.Stat(filepath.Join(dir, ConfigFile))
	if os.IsNotExist(err) {
		return ErrNotSvelteKit
	}
	if err != nil {
		return fmt.Errorf("checking %s: %w", ConfigFile, err)
	}
	if fi.IsDir() {
		return ErrNotSvelteKit
	}
	return nil
}

type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// DeclaredPackages returns every package named in the dependencies and
// devDependencies of dir/package.json. A missing package.json yields an
// empty set.
func DeclaredPackages(dir string) (map[string]bool, error) {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if os.IsNotExist(err) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading package.json: %w", err)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}

	out := make(map[string]bool, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name := range pkg.Dependencies {
		out[name] = true
	}
	for name := range pkg.DevDependencies {
		out[name] = true
	}
	return out, nil
}
