package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AutoAdapter is the adapter a fresh SvelteKit project starts with.
const AutoAdapter = "@sveltejs/adapter-auto"

// AdapterFor returns the SvelteKit adapter package for env.
func AdapterFor(env string) string {
	return "@sveltejs/adapter-" + env
}

// RewriteAdapter replaces the adapter-auto import in dir/svelte.config.js
// with adapter. Either quote style is accepted.
// changed is false when the file held no adapter-auto import.
func RewriteAdapter(dir, adapter string) (changed bool, err error) {
	path := filepath.Join(dir, ConfigFile)
	fi, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", ConfigFile, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", ConfigFile, err)
	}

	updated := ReplaceAdapterImport(string(data), adapter)
	if updated == string(data) {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(updated), fi.Mode().Perm()); err != nil {
		return false, fmt.Errorf("writing %s: %w", ConfigFile, err)
	}
	return true, nil
}

// ReplaceAdapterImport rewrites the first `from '@sveltejs/adapter-auto'`
// in src, in either quote style. Later occurrences are left alone.
func ReplaceAdapterImport(src, adapter string) string {
	best, quote := -1, ""
	for _, q := range []string{"'", `"`} {
		i := strings.Index(src, "from "+q+AutoAdapter+q)
		if i >= 0 && (best < 0 || i < best) {
			best, quote = i, q
		}
	}
	if best < 0 {
		return src
	}
	old := "from " + quote + AutoAdapter + quote
	return src[:best] + "from " + quote + adapter + quote + src[best+len(old):]
}
