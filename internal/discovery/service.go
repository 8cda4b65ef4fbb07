package discovery

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"storyfinder/internal/config"
	"storyfinder/internal/fileutil"
	"storyfinder/internal/install"
	"storyfinder/internal/layout"
	"storyfinder/internal/logging"
	"storyfinder/internal/mdb"
	"storyfinder/internal/story"
)

// Outcome classifies how far a run got.
type Outcome string

const (
	OutcomeOK               Outcome = "ok"
	OutcomeInstallNotFound  Outcome = "install_not_found"
	OutcomeStoryDirNotFound Outcome = "story_dir_not_found"
)

// Report is the result of one discovery run. Not-found conditions are
// reported through Outcome; Stories is empty but non-nil in that case.
type Report struct {
	RunID       string             `json:"run_id"`
	Outcome     Outcome            `json:"outcome"`
	InstallRoot string             `json:"install_root,omitempty"`
	Directory   *layout.Directory  `json:"directory,omitempty"`
	Stories     []story.Descriptor `json:"stories"`
}

// Service runs locate, resolve, and enumerate in order.
type Service struct {
	cfg        *config.Config
	locator    *install.Locator
	resolver   *layout.Resolver
	enumerator *story.Enumerator
	logger     *slog.Logger
}

// New wires the three stages from config. querier may be nil to use the
// SQLite executor.
func New(cfg *config.Config, querier mdb.Querier, logger *slog.Logger) *Service {
	if querier == nil {
		querier = mdb.NewSQLite()
	}
	return &Service{
		cfg:        cfg,
		locator:    install.FromConfig(cfg, logger),
		resolver:   layout.NewResolver(layout.PathsFromConfig(cfg), logger),
		enumerator: story.NewEnumerator(story.OptionsFromConfig(cfg), querier, logger),
		logger:     logging.NewComponentLogger(logger, "discovery"),
	}
}

// Locator exposes the configured locator for diagnostics.
func (s *Service) Locator() *install.Locator {
	return s.locator
}

// Locate honours a configured game path before probing candidate roots. A
// configured path that is not a directory is not found.
func (s *Service) Locate() (string, bool) {
	if path := s.cfg.Install.GamePath; path != "" {
		if !fileutil.IsDir(path) {
			s.logger.Info("configured game path is not a directory", logging.String("game_path", path))
			return "", false
		}
		return path, true
	}
	return s.locator.Locate()
}

// Resolve finds the story data directory under root.
func (s *Service) Resolve(root string) (layout.Directory, bool) {
	return s.resolver.Resolve(root)
}

// Run performs a full discovery starting from the located installation.
func (s *Service) Run(ctx context.Context) Report {
	ctx, report := s.begin(ctx)
	root, ok := s.Locate()
	if !ok {
		report.Outcome = OutcomeInstallNotFound
		logging.WithContext(ctx, s.logger).Info("game installation not found")
		return report
	}
	return s.run(ctx, report, root)
}

// RunAt performs discovery from an explicit installation or story data path.
func (s *Service) RunAt(ctx context.Context, root string) Report {
	ctx, report := s.begin(ctx)
	return s.run(ctx, report, root)
}

func (s *Service) begin(ctx context.Context) (context.Context, Report) {
	runID := uuid.NewString()
	return logging.WithRunID(ctx, runID), Report{RunID: runID, Stories: []story.Descriptor{}}
}

func (s *Service) run(ctx context.Context, report Report, root string) Report {
	logger := logging.WithContext(ctx, s.logger)
	report.InstallRoot = root

	dir, ok := s.resolver.Resolve(root)
	if !ok {
		report.Outcome = OutcomeStoryDirNotFound
		logger.Info("story data directory not found", logging.String("root", root))
		return report
	}
	report.Directory = &dir

	if stories := s.enumerator.Enumerate(ctx, dir.Path); len(stories) > 0 {
		report.Stories = stories
	}
	report.Outcome = OutcomeOK
	logger.Info("discovery complete",
		logging.String("dir", dir.Path),
		logging.String("shape", dir.Shape.String()),
		logging.Int("stories", len(report.Stories)),
	)
	return report
}
