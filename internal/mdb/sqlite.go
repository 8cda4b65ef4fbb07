package mdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// ErrEncrypted is returned when a caller supplies a decryption key. The
// pure-Go driver cannot open encrypted databases.
var ErrEncrypted = errors.New("encrypted master databases are not supported")

// SQLite executes queries against master database files read-only.
type SQLite struct{}

// NewSQLite returns the production query executor.
func NewSQLite() *SQLite {
	return &SQLite{}
}

// Query opens req.DBPath read-only, runs req.Query, drains every row, and
// closes the connection before returning, on both success and error paths.
func (s *SQLite) Query(ctx context.Context, req Request) (Result, error) {
	if req.Key != nil && *req.Key != "" {
		return Result{}, ErrEncrypted
	}
	db, err := openReadOnly(req.DBPath)
	if err != nil {
		return Result{}, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, req.Query)
	if err != nil {
		return Result{}, fmt.Errorf("query master db: %w", err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return Result{}, fmt.Errorf("read columns: %w", err)
	}

	result := Result{Header: header}
	for rows.Next() {
		values := make([]any, len(header))
		targets := make([]any, len(header))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return Result{}, fmt.Errorf("scan row: %w", err)
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return Result{}, fmt.Errorf("iterate rows: %w", err)
	}
	return result, nil
}

// Tables lists the table names in the database at path.
func (s *SQLite) Tables(ctx context.Context, path string) ([]string, error) {
	res, err := s.Query(ctx, Request{
		DBPath: path,
		Query:  "SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name",
	})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		if len(row) > 0 {
			names = append(names, Text(row[0]))
		}
	}
	return names, nil
}

func openReadOnly(path string) (*sql.DB, error) {
	// Stat first so a missing file surfaces as fs.ErrNotExist rather than an
	// opaque driver error.
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat master db: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("master db %s is a directory", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve master db path: %w", err)
	}
	uriPath := filepath.ToSlash(abs)
	if !strings.HasPrefix(uriPath, "/") {
		uriPath = "/" + uriPath
	}
	dsn := (&url.URL{Scheme: "file", Path: uriPath, RawQuery: "mode=ro"}).String()

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA query_only = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	return db, nil
}
