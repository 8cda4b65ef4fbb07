package story

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"

	"storyfinder/internal/fileutil"
	"storyfinder/internal/logging"
	"storyfinder/internal/mdb"
)

const (
	sourceMasterDB = "master_db"
	sourceFileScan = "file_scan"
)

// main_story_data columns in query order.
const (
	colStoryID = iota
	colPartID
	colStoryNumber
	colEpisodeID
	mainStoryColumns
)

// QueryOutcome is the result of the database-backed strategy. Unavailable
// marks a source that could not be read; Rows is then nil.
type QueryOutcome struct {
	Rows        [][]any
	Unavailable bool
	Err         error
}

// Enumerator lists story descriptors under a story data directory.
type Enumerator struct {
	opts    Options
	querier mdb.Querier
	pattern *regexp.Regexp
	logger  *slog.Logger
}

// NewEnumerator builds an Enumerator. querier may be nil, in which case the
// database strategy always reports the source as unavailable.
func NewEnumerator(opts Options, querier mdb.Querier, logger *slog.Logger) *Enumerator {
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(opts.FilePrefix) + `(\d+)` + regexp.QuoteMeta(opts.FileExt) + `$`)
	return &Enumerator{
		opts:    opts,
		querier: querier,
		pattern: pattern,
		logger:  logging.NewComponentLogger(logger, "story"),
	}
}

// Enumerate returns database-sourced descriptors followed by file-scan
// descriptors. Both strategies always run; results are concatenated without
// deduplication. Enumerate never fails: the worst case is an empty slice.
func (e *Enumerator) Enumerate(ctx context.Context, dir string) []Descriptor {
	logger := logging.WithContext(ctx, e.logger)

	var fromDB []Descriptor
	dbPath := filepath.Join(dir, filepath.FromSlash(e.opts.MasterDB))
	if fileutil.Exists(dbPath) {
		outcome := e.QueryMaster(ctx, dbPath)
		if outcome.Unavailable {
			logging.Degraded(ctx, logger, "master database query failed; continuing with file scan",
				sourceMasterDB, outcome.Err, logging.String("db", dbPath))
		} else {
			fromDB = e.fromRows(ctx, outcome.Rows)
		}
	}

	fromFiles, skipped := e.scanFiles(ctx, dir)

	out := make([]Descriptor, 0, len(fromDB)+len(fromFiles))
	out = append(out, fromDB...)
	out = append(out, fromFiles...)

	logger.Info("stories enumerated",
		logging.String("dir", dir),
		logging.Int(sourceMasterDB, len(fromDB)),
		logging.Int(sourceFileScan, len(fromFiles)),
		logging.Int("skipped", skipped),
	)
	return out
}

// QueryMaster runs the main story query and folds every fault into an
// unavailable outcome.
func (e *Enumerator) QueryMaster(ctx context.Context, dbPath string) QueryOutcome {
	if e.querier == nil {
		return QueryOutcome{Unavailable: true, Err: errors.New("no query executor configured")}
	}
	res, err := e.querier.Query(ctx, mdb.Request{DBPath: dbPath, Query: e.opts.Query})
	if err != nil {
		return QueryOutcome{Unavailable: true, Err: err}
	}
	for i, row := range res.Rows {
		if len(row) < mainStoryColumns {
			return QueryOutcome{
				Unavailable: true,
				Err:         fmt.Errorf("row %d has %d columns, want %d", i, len(row), mainStoryColumns),
			}
		}
	}
	return QueryOutcome{Rows: res.Rows}
}

func (e *Enumerator) fromRows(ctx context.Context, rows [][]any) []Descriptor {
	out := make([]Descriptor, 0, len(rows))
	for i, row := range rows {
		if row[colStoryID] == nil || row[colPartID] == nil || row[colEpisodeID] == nil {
			logging.WithContext(ctx, e.logger).Debug("skipping main story row with NULL column", logging.Int("row", i))
			continue
		}
		id := mdb.Text(row[colStoryID])
		part := mdb.Text(row[colPartID])
		out = append(out, Descriptor{
			ID:       id,
			Path:     e.opts.NativeScheme + id,
			RelPath:  fmt.Sprintf("%s/Part%s/Ep%s", e.opts.Category, part, mdb.Text(row[colEpisodeID])),
			Category: e.opts.Category,
			Group:    "Part " + part,
		})
	}
	return out
}
