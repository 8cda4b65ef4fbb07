package story

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"storyfinder/internal/logging"
)

// minSegments is category/group/file; shallower matches are malformed.
const minSegments = 3

type fileScan struct {
	enum    *Enumerator
	ctx     context.Context
	logger  *slog.Logger
	out     []Descriptor
	skipped int
}

// scanFiles walks dir for loose story files. Directory symlinks are followed,
// including dir itself, but a directory already on the current path is not
// entered twice. Unreadable subtrees and hidden entries are skipped, as a
// shell glob would. The walk order is lexical and every Path stays under dir.
func (e *Enumerator) scanFiles(ctx context.Context, dir string) ([]Descriptor, int) {
	s := &fileScan{
		enum:   e,
		ctx:    ctx,
		logger: logging.WithContext(ctx, e.logger),
	}
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		s.logger.Debug("file scan skipped", logging.String("dir", dir), logging.Error(err))
		return nil, 0
	}
	if err := s.walk(dir, "", map[string]bool{resolved: true}); err != nil {
		s.logger.Debug("file scan stopped early", logging.String("dir", dir), logging.Error(err))
	}
	return s.out, s.skipped
}

// walk lists path, whose location relative to the scan root is rel.
// ancestors holds the resolved directories between the root and path.
func (s *fileScan) walk(path, rel string, ancestors map[string]bool) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		if rel == "" {
			return err
		}
		s.logger.Debug("skipping unreadable entry", logging.String("path", path), logging.Error(err))
		return nil
	}

	for _, entry := range entries {
		if err := s.ctx.Err(); err != nil {
			return err
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		childPath := filepath.Join(path, name)
		childRel := filepath.Join(rel, name)

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(childPath)
			if err != nil {
				s.logger.Debug("skipping broken symlink", logging.String("path", childPath), logging.Error(err))
				continue
			}
			isDir = info.IsDir()
		}

		if isDir {
			resolved, err := filepath.EvalSymlinks(childPath)
			if err != nil {
				s.logger.Debug("skipping unreadable entry", logging.String("path", childPath), logging.Error(err))
				continue
			}
			if ancestors[resolved] {
				s.logger.Debug("skipping directory cycle", logging.String("path", childPath))
				continue
			}
			ancestors[resolved] = true
			err = s.walk(childPath, childRel, ancestors)
			delete(ancestors, resolved)
			if err != nil {
				return err
			}
			continue
		}

		s.match(childPath, childRel, name)
	}
	return nil
}

func (s *fileScan) match(path, rel, name string) {
	match := s.enum.pattern.FindStringSubmatch(name)
	if match == nil {
		return
	}
	segments := strings.Split(rel, string(filepath.Separator))
	if len(segments) < minSegments {
		s.skipped++
		s.logger.Debug("skipping shallow story file", logging.String("rel_path", rel))
		return
	}

	s.out = append(s.out, Descriptor{
		ID:       match[1],
		Path:     path,
		RelPath:  norm.NFC.String(filepath.ToSlash(rel)),
		Category: norm.NFC.String(segments[0]),
		Group:    norm.NFC.String(segments[1]),
	})
}
