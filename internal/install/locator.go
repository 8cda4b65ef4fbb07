package install

import (
	"log/slog"
	"path/filepath"

	"storyfinder/internal/config"
	"storyfinder/internal/fileutil"
	"storyfinder/internal/logging"
)

// Options is the search table for a Locator.
type Options struct {
	// Roots are distribution platform roots in priority order.
	Roots []string
	// AppsSubpath is the installed-applications directory under each root.
	AppsSubpath string
	// GameDirNames are checked in order under every apps directory.
	GameDirNames []string
}

// Candidate is one full path the locator would probe.
type Candidate struct {
	Root    string
	AppsDir string
	Path    string
}

// Locator finds the game installation directory.
type Locator struct {
	opts   Options
	logger *slog.Logger
}

// NewLocator copies opts so later mutation by the caller has no effect.
func NewLocator(opts Options, logger *slog.Logger) *Locator {
	copied := Options{
		Roots:        append([]string(nil), opts.Roots...),
		AppsSubpath:  opts.AppsSubpath,
		GameDirNames: append([]string(nil), opts.GameDirNames...),
	}
	return &Locator{opts: copied, logger: logging.NewComponentLogger(logger, "install")}
}

// FromConfig builds a Locator for the running platform.
func FromConfig(cfg *config.Config, logger *slog.Logger) *Locator {
	return NewLocator(Options{
		Roots:        cfg.CandidateRoots(),
		AppsSubpath:  cfg.Install.AppsSubpath,
		GameDirNames: cfg.Install.GameDirNames,
	}, logger)
}

// Locate returns the first existing game directory. Priority is root order,
// then name order. ok is false when nothing matches; that is not an error.
func (l *Locator) Locate() (string, bool) {
	for _, root := range l.opts.Roots {
		appsDir := l.appsDir(root)
		if !fileutil.Exists(appsDir) {
			l.logger.Debug("apps directory absent", logging.String("path", appsDir))
			continue
		}
		for _, name := range l.opts.GameDirNames {
			path := filepath.Join(appsDir, name)
			if fileutil.Exists(path) {
				l.logger.Debug("installation found", logging.String("path", path))
				return path, true
			}
		}
	}
	l.logger.Debug("no installation found", logging.Int("roots", len(l.opts.Roots)))
	return "", false
}

// Candidates lists every path Locate may probe, in probe order.
func (l *Locator) Candidates() []Candidate {
	out := make([]Candidate, 0, len(l.opts.Roots)*len(l.opts.GameDirNames))
	for _, root := range l.opts.Roots {
		appsDir := l.appsDir(root)
		for _, name := range l.opts.GameDirNames {
			out = append(out, Candidate{Root: root, AppsDir: appsDir, Path: filepath.Join(appsDir, name)})
		}
	}
	return out
}

func (l *Locator) appsDir(root string) string {
	return filepath.Join(root, filepath.FromSlash(l.opts.AppsSubpath))
}
