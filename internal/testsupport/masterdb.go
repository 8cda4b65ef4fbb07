package testsupport

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// MainStoryRow mirrors the columns the enumerator reads from main_story_data.
type MainStoryRow struct {
	ID          int64
	PartID      int64
	StoryNumber int64
	StoryID1    int64
	// EpisodeText replaces ID when set. The id column is then declared TEXT
	// so values such as "04" are stored as written.
	EpisodeText string
}

// WriteMasterDB creates a SQLite master database at path holding rows in
// main_story_data. The schema follows the game's column affinities unless a
// row sets EpisodeText.
func WriteMasterDB(t testing.TB, path string, rows ...MainStoryRow) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}
	defer db.Close()

	idType := "INTEGER"
	for _, row := range rows {
		if row.EpisodeText != "" {
			idType = "TEXT"
		}
	}
	if _, err := db.Exec(`CREATE TABLE main_story_data (
        id ` + idType + ` NOT NULL PRIMARY KEY,
        part_id INTEGER NOT NULL,
        story_number INTEGER NOT NULL,
        story_id_1 INTEGER NOT NULL
    )`); err != nil {
		t.Fatalf("create main_story_data: %v", err)
	}
	for _, row := range rows {
		var id any = row.ID
		if row.EpisodeText != "" {
			id = row.EpisodeText
		}
		if _, err := db.Exec(
			`INSERT INTO main_story_data (id, part_id, story_number, story_id_1) VALUES (?, ?, ?, ?)`,
			id, row.PartID, row.StoryNumber, row.StoryID1,
		); err != nil {
			t.Fatalf("insert main_story_data: %v", err)
		}
	}
}

// WriteEmptyMasterDB creates a valid SQLite file without main_story_data.
func WriteEmptyMasterDB(t testing.TB, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(`CREATE TABLE text_data (category INTEGER, "index" INTEGER, text TEXT)`); err != nil {
		t.Fatalf("create text_data: %v", err)
	}
}

// WriteCorruptMasterDB writes bytes that are not a SQLite database.
func WriteCorruptMasterDB(t testing.TB, path string) {
	t.Helper()
	WriteFile(t, path, []byte("this is not a sqlite database, just garbage bytes padding the header"))
}
