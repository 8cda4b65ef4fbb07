// Package fileutil holds the read-only filesystem probes shared by the
// locator, resolver, and enumerator.
package fileutil

import (
	"os"
)

// Exists reports whether anything (file, directory, or resolvable symlink)
// lives at path. Permission errors count as absent.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path resolves to a directory.
func IsDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path resolves to a regular file.
func IsFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
