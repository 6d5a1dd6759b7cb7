package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCatalogPathStaysUnderRoot(t *testing.T) {
	c := New("/srv/assets")
	for _, ref := range []string{"", "  ", "../secret.png", "/etc/passwd", "a/../../b.png"} {
		if p, ok := c.Path(ref); ok {
			t.Fatalf("ref %q escaped to %q", ref, p)
		}
	}
	p, ok := c.Path("portraits/../director.png")
	if !ok || p != filepath.Join("/srv/assets", "director.png") {
		t.Fatalf("path: got %q,%t", p, ok)
	}
}

func TestCatalogExists(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "director.png"), []byte("png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Mkdir(filepath.Join(root, "sounds"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	c := New(root)
	if !c.Exists("director.png") {
		t.Fatalf("expected director.png to exist")
	}
	if c.Exists("sounds") {
		t.Fatalf("directories are not assets")
	}
	if c.Exists("missing.ogg") {
		t.Fatalf("missing.ogg should not exist")
	}
}

func TestNewDefaultsRoot(t *testing.T) {
	if got := New("").Root; got != "assets" {
		t.Fatalf("root: got %q want assets", got)
	}
}
