package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"storyfinder/internal/config"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path string, content []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteStory creates an empty storytimeline JSON document at dir/rel, where
// rel is slash separated, and returns its absolute path.
func WriteStory(t testing.TB, dir, rel string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(rel))
	WriteFile(t, path, []byte(`{"blockList":[]}`))
	return path
}

// NewInstallTree creates <steamRoot>/<apps>/<first game dir name> and returns it.
func NewInstallTree(t testing.TB, cfg *config.Config, steamRoot string) string {
	t.Helper()

	root := filepath.Join(steamRoot, filepath.FromSlash(cfg.Install.AppsSubpath), cfg.Install.GameDirNames[0])
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir install root: %v", err)
	}
	return root
}

// PersistentDir returns the rooted-layout directory for an installation root.
func PersistentDir(cfg *config.Config, root string) string {
	return filepath.Join(root, filepath.FromSlash(cfg.Layout.PersistentSubpath))
}

// ExtractedDir creates and returns the extracted-layout directory for root.
func ExtractedDir(t testing.TB, cfg *config.Config, root string) string {
	t.Helper()

	dir := filepath.Join(root, filepath.FromSlash(cfg.Layout.ExtractedSubpath))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir extracted dir: %v", err)
	}
	return dir
}
