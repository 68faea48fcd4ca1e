// Package cli defines the Cobra command tree for the nktool CLI. Each file
// in this package registers one top-level command (setup, catalog, plugins,
// config, version) with the root command. Commands delegate to internal
// packages for business logic and only handle flag parsing, I/O formatting,
// and user interaction.
package cli
