// Package project inspects and edits the SvelteKit project being set up:
// detecting svelte.config.js, switching its adapter import, reading the
// packages already declared in package.json, and generating
// src/hooks.server.ts.
package project
