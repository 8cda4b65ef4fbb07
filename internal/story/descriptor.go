package story

import (
	"strings"

	"storyfinder/internal/config"
)

// Descriptor identifies one enumerable story asset regardless of source.
type Descriptor struct {
	ID string `json:"id"`
	// Path is either a native reference (native://<id>) that must be resolved
	// through the master database, or a real filesystem path.
	Path     string `json:"path"`
	RelPath  string `json:"rel_path"`
	Category string `json:"category"`
	Group    string `json:"group"`
}

// Native reports whether the descriptor points into the master database
// rather than at a file.
func (d Descriptor) Native(scheme string) bool {
	return scheme != "" && strings.HasPrefix(d.Path, scheme)
}

// Options configures both enumeration strategies.
type Options struct {
	// MasterDB is the slash-separated database location relative to the
	// story data directory.
	MasterDB string
	// Query selects story_id_1, part_id, story_number, id, already capped.
	Query        string
	NativeScheme string
	Category     string
	FilePrefix   string
	FileExt      string
}

// OptionsFromConfig derives enumerator options from config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		MasterDB:     cfg.Layout.MasterDB,
		Query:        cfg.StoryQuery(),
		NativeScheme: cfg.Enumeration.NativeScheme,
		Category:     cfg.Enumeration.Category,
		FilePrefix:   cfg.Enumeration.FilePrefix,
		FileExt:      cfg.Enumeration.FileExt,
	}
}

// Filter keeps descriptors whose category equals category. An empty
// category keeps everything.
func Filter(items []Descriptor, category string) []Descriptor {
	if category == "" {
		return items
	}
	out := make([]Descriptor, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}
