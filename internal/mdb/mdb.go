// Package mdb runs read-only queries against the game's master database, a
// single-file SQLite store shipped with the native installation.
//
// Querier is the seam the story enumerator depends on; SQLite is the
// production implementation on modernc.org/sqlite. Every call opens, drains,
// and closes its own connection, so no handle outlives the call.
package mdb

import (
	"context"
	"math"
	"strconv"
)

// Request is one query against one database file.
type Request struct {
	DBPath string
	Query  string
	// Key decrypts the database when set. Unsupported by SQLite.
	Key *string
}

// Result holds the column names and driver-native row values
// (int64, float64, string, []byte, or nil).
type Result struct {
	Header []string
	Rows   [][]any
}

// Querier executes a single query and returns every row.
type Querier interface {
	Query(ctx context.Context, req Request) (Result, error)
}

// QuerierFunc adapts a function to Querier.
type QuerierFunc func(ctx context.Context, req Request) (Result, error)

func (f QuerierFunc) Query(ctx context.Context, req Request) (Result, error) {
	return f(ctx, req)
}

// Text renders a column value the way it reads in the database: integers
// and integral floats without a fraction, blobs as strings, NULL as empty.
func Text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		if s, ok := value.(interface{ String() string }); ok {
			return s.String()
		}
		return ""
	}
}
