package testsupport

import (
	"path/filepath"
	"runtime"
	"testing"

	"storyfinder/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose only candidate root, for the running
// platform, is a fresh temp directory. Nothing is created under it; use
// NewInstallTree to populate an installation.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Install.CandidateRoots = map[string][]string{
		runtime.GOOS: {filepath.Join(base, "steam")},
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithRoots replaces the candidate roots for the running platform.
func WithRoots(roots ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Install.CandidateRoots[runtime.GOOS] = append([]string(nil), roots...)
	}
}

// WithGamePath sets an explicit installation path, bypassing the locator.
func WithGamePath(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Install.GamePath = path
	}
}

// SteamRoot returns the default candidate root generated by NewConfig.
func SteamRoot(cfg *config.Config) string {
	roots := cfg.CandidateRoots()
	if len(roots) == 0 {
		return ""
	}
	return roots[0]
}
