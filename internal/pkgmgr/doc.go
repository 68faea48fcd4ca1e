// Package pkgmgr drives the project's JavaScript package manager.
//
// A Manager shells out to npm, pnpm, yarn or bun inside the project directory
// to add or remove packages. Output is captured and only surfaced when a
// command fails.
package pkgmgr
