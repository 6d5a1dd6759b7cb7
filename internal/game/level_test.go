package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLevelIsValid(t *testing.T) {
	level := DefaultLevel()
	if err := level.Validate(); err != nil {
		t.Fatalf("default level: %v", err)
	}
	if len(level.Collectibles) != 6 {
		t.Fatalf("collectibles: got %d want 6", len(level.Collectibles))
	}
}

func TestLoadLevelMissingFileFallsBack(t *testing.T) {
	level, err := LoadLevel(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if level.Name != DefaultLevel().Name {
		t.Fatalf("expected default level, got %q", level.Name)
	}
}

func TestLoadLevelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.json")
	data := `{
  "format_version": 1,
  "level": {
    "name": "Basement",
    "spawn": {"x": 0, "y": 1, "z": 0},
    "floor_half_extent": 4,
    "collectibles": [
      {"id": "box", "name": "Box file", "position": {"x": 1, "y": 0.5, "z": 1}, "dialogue": "memo"}
    ]
  }
}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	level, err := LoadLevel(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if level.Name != "Basement" || len(level.Collectibles) != 1 || level.Spawn.Y != 1 {
		t.Fatalf("unexpected level %#v", level)
	}
}

func TestLoadLevelRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{
		"version.json":   `{"format_version": 2, "level": {}}`,
		"empty.json":     `{"format_version": 1, "level": {"name": "x", "floor_half_extent": 1}}`,
		"duplicate.json": `{"format_version": 1, "level": {"name": "x", "floor_half_extent": 1, "collectibles": [{"id": "a", "dialogue": "memo"}, {"id": "a", "dialogue": "memo"}]}}`,
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := LoadLevel(path); !errors.Is(err, ErrInvalidLevel) {
			t.Fatalf("%s: got %v want ErrInvalidLevel", name, err)
		}
	}
}
