// Package registry resolves plugin requirements against a catalog.
//
// Required flattens the transitive "requires" graph of one plugin in
// depth-first pre-order, keeping duplicates. BuildTree produces the same
// walk as a display tree, and Plan turns a user selection into the ordered
// package-manager batches that the setup command executes.
package registry
