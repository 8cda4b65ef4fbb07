package layout_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"storyfinder/internal/config"
	"storyfinder/internal/layout"
)

const (
	persistent = "UmamusumePrettyDerby_Jpn_Data/Persistent"
	extracted  = persistent + "/assets/_gallopresources/bundle/resources/story/data"
)

func newResolver() *layout.Resolver {
	cfg := config.Default()
	return layout.NewResolver(layout.PathsFromConfig(&cfg), nil)
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestResolvePriority(t *testing.T) {
	type shapes struct{ direct, rooted, extracted bool }
	cases := []struct {
		name      string
		present   shapes
		wantShape layout.Shape
		wantRel   string
	}{
		{"all three", shapes{true, true, true}, layout.ShapeDirect, "."},
		{"rooted and extracted", shapes{false, true, true}, layout.ShapeRooted, persistent},
		{"direct and extracted", shapes{true, false, true}, layout.ShapeDirect, "."},
		{"extracted only", shapes{false, false, true}, layout.ShapeExtracted, extracted},
		{"rooted only", shapes{false, true, false}, layout.ShapeRooted, persistent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			if tc.present.direct {
				touch(t, filepath.Join(root, "master", "master.mdb"))
			}
			if tc.present.rooted {
				touch(t, filepath.Join(root, filepath.FromSlash(persistent), "master", "master.mdb"))
			}
			if tc.present.extracted {
				if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(extracted)), 0o755); err != nil {
					t.Fatal(err)
				}
			}

			dir, ok := newResolver().Resolve(root)
			if !ok {
				t.Fatal("expected a layout to resolve")
			}
			if dir.Shape != tc.wantShape {
				t.Fatalf("shape: got %v want %v", dir.Shape, tc.wantShape)
			}
			want := filepath.Join(root, filepath.FromSlash(tc.wantRel))
			if dir.Path != want {
				t.Fatalf("path: got %q want %q", dir.Path, want)
			}
		})
	}
}

func TestResolveNotFound(t *testing.T) {
	root := t.TempDir()
	// Persistent folder without a database and an extracted path that is a file.
	if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(persistent), "master"), 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(root, filepath.FromSlash(extracted)))

	if dir, ok := newResolver().Resolve(root); ok {
		t.Fatalf("expected not-found, got %+v", dir)
	}
	if _, ok := newResolver().Resolve(""); ok {
		t.Fatal("expected not-found for empty root")
	}
	if _, ok := newResolver().Resolve(filepath.Join(root, "missing")); ok {
		t.Fatal("expected not-found for missing root")
	}
}

func TestDirectoryJSONUsesShapeName(t *testing.T) {
	data, err := json.Marshal(layout.Directory{Path: "/x", Shape: layout.ShapeRooted})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"path":"/x","shape":"rooted"}` {
		t.Fatalf("unexpected json: %s", data)
	}
}

func TestShapeUnmarshalText(t *testing.T) {
	var dir layout.Directory
	if err := json.Unmarshal([]byte(`{"path":"/x","shape":"extracted"}`), &dir); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if dir.Shape != layout.ShapeExtracted {
		t.Fatalf("unexpected shape: %v", dir.Shape)
	}
	if err := json.Unmarshal([]byte(`{"shape":"sideways"}`), &dir); err == nil {
		t.Fatal("expected error for unknown shape")
	}
}
