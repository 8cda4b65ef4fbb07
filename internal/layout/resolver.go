package layout

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"storyfinder/internal/config"
	"storyfinder/internal/fileutil"
	"storyfinder/internal/logging"
)

// Shape identifies which on-disk layout holds the story data.
type Shape int

const (
	// ShapeNone is the zero value returned alongside not-found.
	ShapeNone Shape = iota
	// ShapeDirect means the directory itself holds the master database.
	ShapeDirect
	// ShapeRooted means the persistent subdirectory holds the master database.
	ShapeRooted
	// ShapeExtracted means loose story files live under the deep extracted path.
	ShapeExtracted
)

func (s Shape) String() string {
	switch s {
	case ShapeDirect:
		return "direct"
	case ShapeRooted:
		return "rooted"
	case ShapeExtracted:
		return "extracted"
	default:
		return "none"
	}
}

// MarshalText renders the shape name in JSON and TOML output.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (s *Shape) UnmarshalText(text []byte) error {
	switch string(text) {
	case "direct":
		*s = ShapeDirect
	case "rooted":
		*s = ShapeRooted
	case "extracted":
		*s = ShapeExtracted
	case "none", "":
		*s = ShapeNone
	default:
		return fmt.Errorf("unknown layout shape %q", text)
	}
	return nil
}

// Directory is a resolved story data directory.
type Directory struct {
	Path  string `json:"path"`
	Shape Shape  `json:"shape"`
}

// Paths holds the relative locations, slash separated, that identify each shape.
type Paths struct {
	MasterDB          string
	PersistentSubpath string
	ExtractedSubpath  string
}

// PathsFromConfig extracts the layout table from config.
func PathsFromConfig(cfg *config.Config) Paths {
	return Paths{
		MasterDB:          cfg.Layout.MasterDB,
		PersistentSubpath: cfg.Layout.PersistentSubpath,
		ExtractedSubpath:  cfg.Layout.ExtractedSubpath,
	}
}

// MasterDBPath returns where the master database would live under dir.
func (p Paths) MasterDBPath(dir string) string {
	return filepath.Join(dir, filepath.FromSlash(p.MasterDB))
}

// Resolver picks the story data directory under an installation root.
type Resolver struct {
	paths  Paths
	logger *slog.Logger
}

// NewResolver constructs a Resolver over the given layout table.
func NewResolver(paths Paths, logger *slog.Logger) *Resolver {
	return &Resolver{paths: paths, logger: logging.NewComponentLogger(logger, "layout")}
}

// Resolve checks direct, rooted, then extracted shapes and returns the first
// present. A native install always carries the database, so the extracted
// fallback never shadows it. ok is false when no shape matches.
func (r *Resolver) Resolve(root string) (Directory, bool) {
	if root == "" {
		return Directory{}, false
	}

	if fileutil.Exists(r.paths.MasterDBPath(root)) {
		return r.found(Directory{Path: root, Shape: ShapeDirect}), true
	}

	persistent := filepath.Join(root, filepath.FromSlash(r.paths.PersistentSubpath))
	if fileutil.Exists(r.paths.MasterDBPath(persistent)) {
		return r.found(Directory{Path: persistent, Shape: ShapeRooted}), true
	}

	extracted := filepath.Join(root, filepath.FromSlash(r.paths.ExtractedSubpath))
	if fileutil.IsDir(extracted) {
		return r.found(Directory{Path: extracted, Shape: ShapeExtracted}), true
	}

	r.logger.Debug("no story data layout found", logging.String("root", root))
	return Directory{}, false
}

func (r *Resolver) found(dir Directory) Directory {
	r.logger.Debug("story data layout resolved",
		logging.String("path", dir.Path),
		logging.String("shape", dir.Shape.String()),
	)
	return dir
}
