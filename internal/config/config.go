package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Install contains the search space used to find the game installation.
type Install struct {
	// CandidateRoots maps a GOOS value to the ordered list of distribution
	// platform roots (Steam library prefixes) to probe.
	CandidateRoots map[string][]string `toml:"candidate_roots"`
	AppsSubpath    string              `toml:"apps_subpath"`
	GameDirNames   []string            `toml:"game_dir_names"`
	// AppIDs are the regional store identifiers. Nothing consults them yet.
	AppIDs map[string]string `toml:"app_ids"`
	// GamePath skips probing entirely when set.
	GamePath string `toml:"game_path"`
}

// Layout contains the relative locations that identify each on-disk shape.
type Layout struct {
	MasterDB          string `toml:"master_db"`
	PersistentSubpath string `toml:"persistent_subpath"`
	ExtractedSubpath  string `toml:"extracted_subpath"`
}

// Enumeration contains settings for both story enumeration strategies.
type Enumeration struct {
	Query        string `toml:"query"`
	RowLimit     int    `toml:"row_limit"`
	NativeScheme string `toml:"native_scheme"`
	Category     string `toml:"category"`
	FilePrefix   string `toml:"file_prefix"`
	FileExt      string `toml:"file_ext"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Config encapsulates all configuration values for storyfinder.
//
// Configuration sections by subsystem:
//   - Install: candidate roots and game directory names for the locator
//   - Layout: relative paths that identify the native and extracted layouts
//   - Enumeration: master database query and loose-file naming pattern
//   - Logging: log format, level, and optional log file
type Config struct {
	Install     Install     `toml:"install"`
	Layout      Layout      `toml:"layout"`
	Enumeration Enumeration `toml:"enumeration"`
	Logging     Logging     `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/storyfinder/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and environment overrides applied.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("storyfinder.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// CandidateRoots returns the roots configured for the running platform.
func (c *Config) CandidateRoots() []string {
	return c.RootsFor(runtime.GOOS)
}

// RootsFor returns a copy of the candidate roots configured for goos.
func (c *Config) RootsFor(goos string) []string {
	roots := c.Install.CandidateRoots[goos]
	out := make([]string, len(roots))
	copy(out, roots)
	return out
}

// StoryQuery returns the master database query with the row cap applied.
func (c *Config) StoryQuery() string {
	return fmt.Sprintf("%s LIMIT %d", strings.TrimSpace(c.Enumeration.Query), c.Enumeration.RowLimit)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	expanded, err := expandHome(pathValue)
	if err != nil {
		return "", err
	}
	cleaned := filepath.Clean(expanded)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// expandHome resolves a leading tilde without forcing the path absolute, so
// roots written for another platform survive untouched.
func expandHome(pathValue string) (string, error) {
	if !strings.HasPrefix(pathValue, "~") {
		return pathValue, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if pathValue == "~" {
		return home, nil
	}
	if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
		return filepath.Join(home, pathValue[2:]), nil
	}
	return pathValue, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders the effective configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
