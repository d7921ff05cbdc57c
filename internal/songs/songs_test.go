package songs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/star-catcher/internal/registry"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{Twinkle, OdeToJoy, FrereJacques, HappyBirthday} {
		s, err := registry.Get(id)
		if err != nil {
			t.Errorf("built-in %q: %v", id, err)
			continue
		}
		if s.Duration() < 10 {
			t.Errorf("%q lasts %.1fs, expected a full melody", id, s.Duration())
		}
	}
}

func TestParseSingleAndList(t *testing.T) {
	single := []byte("id: solo\ntitle: Solo\nbpm: 90\nnotes: [c4, d4, e4]\n")
	got, err := Parse(single)
	if err != nil || len(got) != 1 || got[0].ID != "solo" {
		t.Fatalf("Parse(single) = %+v, %v", got, err)
	}

	list := []byte(`songs:
  - id: one
    bpm: 100
    notes: [c4]
  - id: two
    bpm: 80
    offset: 0.5
    notes: ["g4:2", "-"]
`)
	got, err = Parse(list)
	if err != nil || len(got) != 2 {
		t.Fatalf("Parse(list) = %+v, %v", got, err)
	}
	if got[1].Offset != 0.5 || got[1].Beats() != 3 {
		t.Errorf("second song = %+v", got[1])
	}
}

func TestParseRejects(t *testing.T) {
	for name, data := range map[string]string{
		"empty":    "title: nothing\n",
		"bad yaml": "songs: [",
		"bad note": "id: x\nbpm: 100\nnotes: [q9]\n",
	} {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("%s: Parse() should fail", name)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("a.yaml", "id: loaddir-a\nbpm: 100\nnotes: [c4, e4]\n")
	write("b.yml", "songs:\n  - id: loaddir-b\n    bpm: 120\n    notes: [g4]\n")
	write("readme.txt", "not a song")
	write("broken.yaml", "id: loaddir-c\nbpm: 0\nnotes: [c4]\n")
	write("dup.yaml", "id: "+Twinkle+"\nbpm: 100\nnotes: [c4]\n")

	n, err := LoadDir(dir)
	if n != 2 {
		t.Errorf("loaded %d songs, want 2", n)
	}
	if err == nil {
		t.Error("expected errors for the broken and duplicate files")
	}
	if !registry.Exists("loaddir-a") || !registry.Exists("loaddir-b") {
		t.Error("valid songs should be registered despite other failures")
	}
}

func TestLoadDirMissing(t *testing.T) {
	n, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if n != 0 || err != nil {
		t.Errorf("LoadDir(missing) = %d, %v; want 0, nil", n, err)
	}
}
