package preflight

import (
	"context"

	"storyfinder/internal/discovery"
	"storyfinder/internal/layout"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// TableLister reports the table names inside a database file.
type TableLister interface {
	Tables(ctx context.Context, path string) ([]string, error)
}

// RunAll executes the checks applicable to a discovery report. Later checks
// are skipped when an earlier stage found nothing.
func RunAll(ctx context.Context, report discovery.Report, paths layout.Paths, tables TableLister) []Result {
	var results []Result

	if report.InstallRoot == "" {
		return append(results, Result{Name: "Installation", Detail: "not found under any candidate root"})
	}
	results = append(results, CheckDirectoryAccess("Installation", report.InstallRoot))

	if report.Directory == nil {
		return append(results, Result{Name: "Story data", Detail: "no known layout under installation"})
	}
	results = append(results, CheckDirectoryAccess("Story data", report.Directory.Path))

	if report.Directory.Shape == layout.ShapeExtracted {
		results = append(results, Result{Name: "Master database", Passed: true, Detail: "not used (extracted layout)"})
		return results
	}
	return append(results, CheckMasterDB(ctx, paths.MasterDBPath(report.Directory.Path), tables))
}
