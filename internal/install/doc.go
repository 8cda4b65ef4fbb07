// Package install locates the game's installation directory by probing a
// fixed, ordered table of Steam library roots. The table comes from config so
// tests can substitute synthetic roots.
package install
