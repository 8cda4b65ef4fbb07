package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"storyfinder/internal/discovery"
	"storyfinder/internal/testsupport"
)

func TestLocateNotFound(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.NewConfig(t))

	out, _, err := runCLI(t, env, "locate")
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	requireContains(t, out, "Game installation not found")
}

func TestLocateVerboseListsCandidates(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	root := testsupport.NewInstallTree(t, cfg, testsupport.SteamRoot(cfg))
	env := setupCLITestEnv(t, cfg)

	out, _, err := runCLI(t, env, "locate", "--verbose")
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	requireContains(t, out, "Candidate")
	requireContains(t, out, root)
}

func TestResolveExplicitPath(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteMasterDB(t, filepath.Join(dir, "master", "master.mdb"))
	env := setupCLITestEnv(t, testsupport.NewConfig(t))

	out, _, err := runCLI(t, env, "resolve", dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	requireContains(t, out, dir+" (direct)")

	out, _, err = runCLI(t, env, "resolve", t.TempDir())
	if err != nil {
		t.Fatalf("resolve empty: %v", err)
	}
	requireContains(t, out, "No story data directory")
}

func TestListJSON(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	root := testsupport.NewInstallTree(t, cfg, testsupport.SteamRoot(cfg))
	persistent := testsupport.PersistentDir(cfg, root)
	testsupport.WriteMasterDB(t, filepath.Join(persistent, "master", "master.mdb"),
		testsupport.MainStoryRow{ID: 4, PartID: 1, StoryNumber: 1, StoryID1: 20001004},
	)
	testsupport.WriteStory(t, persistent, "Extra/Side/storytimeline_77.json")
	env := setupCLITestEnv(t, cfg)

	out, _, err := runCLI(t, env, "list", "--json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var report discovery.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	if report.Outcome != discovery.OutcomeOK || len(report.Stories) != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.Stories[0].Path != "native://20001004" || report.Stories[1].ID != "77" {
		t.Fatalf("unexpected stories: %+v", report.Stories)
	}

	out, _, err = runCLI(t, env, "list", "--json", "--category", "Extra")
	if err != nil {
		t.Fatalf("list category: %v", err)
	}
	report = discovery.Report{}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if len(report.Stories) != 1 || report.Stories[0].ID != "77" {
		t.Fatalf("unexpected filtered stories: %+v", report.Stories)
	}
}

func TestListTable(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteMasterDB(t, filepath.Join(dir, "master", "master.mdb"))
	testsupport.WriteStory(t, dir, "Main/Part1/storytimeline_12.json")
	env := setupCLITestEnv(t, testsupport.NewConfig(t))

	out, _, err := runCLI(t, env, "list", dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "Relative Path")
	requireContains(t, out, "Main/Part1/storytimeline_12.json")
	requireContains(t, out, "1 stories in "+dir+" (direct)")
}

func TestListInstallNotFound(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.NewConfig(t))

	out, _, err := runCLI(t, env, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "Game installation not found")
}

func TestCheckReportsMasterDB(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteMasterDB(t, filepath.Join(dir, "master", "master.mdb"))
	env := setupCLITestEnv(t, testsupport.NewConfig(t))

	out, _, err := runCLI(t, env, "check", dir)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "Master database")
	requireContains(t, out, "main_story_data present")
}

func TestInvalidLogLevelFlag(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.NewConfig(t))

	if _, _, err := runCLI(t, env, "--log-level", "loud", "locate"); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}
