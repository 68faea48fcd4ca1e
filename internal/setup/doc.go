// Package setup runs the NeoKit project setup: it switches a SvelteKit
// project to a concrete deployment adapter, installs the NeoKit core, and
// installs the selected catalog plugins together with their requirements.
//
// Every external effect goes through an injected collaborator (catalog
// source, prompter, package manager), so the workflow can be exercised end
// to end without a network or a real package manager.
package setup
