package preflight

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"storyfinder/internal/config"
	"storyfinder/internal/discovery"
	"storyfinder/internal/layout"
	"storyfinder/internal/mdb"
	"storyfinder/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckMasterDB(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.mdb")
	testsupport.WriteMasterDB(t, good)
	empty := filepath.Join(dir, "empty.mdb")
	testsupport.WriteEmptyMasterDB(t, empty)
	corrupt := filepath.Join(dir, "corrupt.mdb")
	testsupport.WriteCorruptMasterDB(t, corrupt)

	cases := []struct {
		name   string
		path   string
		passed bool
		detail string
	}{
		{"good", good, true, "main_story_data present"},
		{"missing table", empty, false, "table main_story_data missing"},
		{"corrupt", corrupt, false, "unreadable"},
		{"missing", filepath.Join(dir, "nope.mdb"), false, "does not exist"},
		{"directory", dir, false, "not a regular file"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := CheckMasterDB(context.Background(), tc.path, mdb.NewSQLite())
			if result.Passed != tc.passed {
				t.Fatalf("passed=%v, want %v (%s)", result.Passed, tc.passed, result.Detail)
			}
			if !strings.Contains(result.Detail, tc.detail) {
				t.Fatalf("expected detail to contain %q, got %q", tc.detail, result.Detail)
			}
		})
	}
}

func TestRunAllStopsAtFirstMissingStage(t *testing.T) {
	cfg := config.Default()
	paths := layout.PathsFromConfig(&cfg)

	results := RunAll(context.Background(), discovery.Report{Outcome: discovery.OutcomeInstallNotFound}, paths, nil)
	if len(results) != 1 || results[0].Passed {
		t.Fatalf("unexpected results: %+v", results)
	}

	root := t.TempDir()
	results = RunAll(context.Background(), discovery.Report{InstallRoot: root, Outcome: discovery.OutcomeStoryDirNotFound}, paths, nil)
	if len(results) != 2 || !results[0].Passed || results[1].Passed {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestRunAllExtractedSkipsDatabase(t *testing.T) {
	cfg := config.Default()
	root := t.TempDir()
	report := discovery.Report{
		InstallRoot: root,
		Directory:   &layout.Directory{Path: root, Shape: layout.ShapeExtracted},
	}
	results := RunAll(context.Background(), report, layout.PathsFromConfig(&cfg), mdb.NewSQLite())
	if len(results) != 3 {
		t.Fatalf("unexpected results: %+v", results)
	}
	for _, r := range results {
		if !r.Passed {
			t.Fatalf("expected all checks to pass, got %+v", r)
		}
	}
}

func TestRunAllNativeChecksDatabase(t *testing.T) {
	cfg := config.Default()
	root := t.TempDir()
	testsupport.WriteMasterDB(t, filepath.Join(root, "master", "master.mdb"))
	report := discovery.Report{
		InstallRoot: root,
		Directory:   &layout.Directory{Path: root, Shape: layout.ShapeDirect},
	}
	results := RunAll(context.Background(), report, layout.PathsFromConfig(&cfg), mdb.NewSQLite())
	if len(results) != 3 || !results[2].Passed || results[2].Name != "Master database" {
		t.Fatalf("unexpected results: %+v", results)
	}
}
