// Package catalog loads the NeoKit plugin catalog: a JSON object mapping
// plugin identifiers to descriptors (display name, icon, color, required
// plugins, supported environments).
//
// The Loader reads the catalog from a local cache file when one exists and
// otherwise fetches it once from the remote URL, persisting the exact response
// bytes to the cache before parsing. There is no expiry; the cache is only
// replaced by an explicit Refresh.
package catalog
