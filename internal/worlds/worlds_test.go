package worlds

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults_UniqueIDs(t *testing.T) {
	list := Defaults()
	want := []string{"about", "projects", "skills", "experience", "contact"}
	if len(list) != len(want) {
		t.Fatalf("len = %d, want %d", len(list), len(want))
	}
	for i, w := range list {
		if w.ID != want[i] {
			t.Errorf("world[%d].ID = %q, want %q", i, w.ID, want[i])
		}
		if w.Structures == nil || len(w.Structures.Blocks) == 0 {
			t.Errorf("world %s has no blocks", w.ID)
		}
	}
}

func TestSelect(t *testing.T) {
	list := Defaults()

	w, ok := Select(list, "contact")
	if !ok || w.ID != "contact" {
		t.Fatalf("Select(contact) = %q, %v", w.ID, ok)
	}

	w, ok = Select(list, "missing")
	if !ok || w.ID != "about" {
		t.Fatalf("Select(missing) should fall back to first world, got %q", w.ID)
	}

	if _, ok := Select(nil, "about"); ok {
		t.Fatal("Select on empty list should report !ok")
	}
}

func TestRect_Intersects(t *testing.T) {
	a := Rect{X: 10, Y: 10, Width: 10, Height: 10}
	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 14, Y: 14, Width: 10, Height: 10}, true},
		{"touching edge", Rect{X: 20, Y: 10, Width: 10, Height: 10}, false},
		{"far", Rect{X: 100, Y: 100, Width: 1, Height: 1}, false},
	}
	for _, tc := range cases {
		if got := a.Intersects(tc.b); got != tc.want {
			t.Errorf("%s: Intersects = %v, want %v", tc.name, got, tc.want)
		}
	}
	if r := FromEdges(0, 0, 4, 2); r.X != 2 || r.Y != 1 {
		t.Errorf("FromEdges centre = (%v,%v)", r.X, r.Y)
	}
}

func TestRegistry_WorldsAreCopies(t *testing.T) {
	reg := NewRegistry()
	src := Defaults()
	reg.Set(KeyPortfolioWorlds, src)
	src[0].Title = "changed"

	got := reg.Worlds()
	if got[0].Title != "ABOUT ME" {
		t.Fatalf("registry shares caller slice: %q", got[0].Title)
	}
	got[1].Title = "changed too"
	if reg.Worlds()[1].Title != "PROJECTS" {
		t.Fatal("Worlds() returned the backing slice")
	}

	if reg.SelectedWorldID() != "" {
		t.Fatal("expected empty selection")
	}
	reg.Set(KeySelectedWorldID, "skills")
	if reg.SelectedWorldID() != "skills" {
		t.Fatalf("SelectedWorldID = %q", reg.SelectedWorldID())
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	f, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.Worlds) != 5 || f.DefaultWorldID != "about" {
		t.Fatalf("unexpected defaults: %d worlds, default %q", len(f.Worlds), f.DefaultWorldID)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want not-exist, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "worlds.yaml: ") {
		t.Fatalf("read error not prefixed: %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	doc := `
worlds:
  - id: talks
    title: TALKS
    summary: Conference talks
    color: 0x123456
    structures:
      pipe: {x: 700, y: 600, width: 100, height: 120}
      blocks:
        - {x: 300, y: 450, width: 40, height: 40}
  - id: blog
    title: BLOG
    color: 255
`
	path := filepath.Join(t.TempDir(), "worlds.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.Worlds) != 2 {
		t.Fatalf("got %d worlds", len(f.Worlds))
	}
	talks := f.Worlds[0]
	if talks.Color != 0x123456 {
		t.Errorf("color = %#x", talks.Color)
	}
	if talks.Background.Key != "world-bg-talks" {
		t.Errorf("background key = %q", talks.Background.Key)
	}
	if f.Worlds[1].Structures != nil {
		t.Error("blog should have no structures")
	}
	if f.DefaultWorldID != "talks" {
		t.Errorf("default = %q", f.DefaultWorldID)
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"no worlds key", "foo: 1\n", "worlds.yaml"},
		{"empty list", "worlds: []\n", "must not be empty"},
		{"bad id", "worlds:\n  - {id: 'Bad Id', title: X, color: 1}\n", "worlds.yaml"},
		{"color range", "worlds:\n  - {id: a, title: A, color: 99999999}\n", "worlds.yaml"},
		{"duplicate", "worlds:\n  - {id: a, title: A, color: 1}\n  - {id: a, title: B, color: 2}\n", "duplicate world id"},
		{"unknown default", "default_world_id: zz\nworlds:\n  - {id: a, title: A, color: 1}\n", "default_world_id"},
		{"zero size block", "worlds:\n  - id: a\n    title: A\n    color: 1\n    structures:\n      pipe: {x: 1, y: 1, width: 0, height: 1}\n", "worlds.yaml"},
	}
	for _, tc := range cases {
		_, err := Parse([]byte(tc.doc))
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}
