// Package main hosts the storyfinder CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes each discovery stage on its own
// (locate, resolve, list) plus readiness checks and configuration
// scaffolding. It centralizes configuration resolution and logger setup so
// subcommands only render results.
//
// Keep this package lean: new behaviour belongs in the internal packages
// first and is surfaced here through a command or flag.
package main
