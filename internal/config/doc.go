// Package config loads, normalizes, and validates storyfinder configuration.
//
// It supplies repository defaults for every platform's Steam library roots,
// expands tilde shortcuts, reads TOML files, and honours environment
// overrides such as STORYFINDER_GAME_PATH. The locator, resolver, and
// enumerator take their search tables from here instead of package globals,
// so tests can point them at synthetic filesystem trees.
package config
