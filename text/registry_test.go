package text

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func writeTestFont(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("writing test font: %v", err)
	}
	return path
}

func TestRegistryAddDir(t *testing.T) {
	dir := t.TempDir()
	writeTestFont(t, dir, "MyFont.ttf")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	if added := r.AddDir(dir); added != 1 {
		t.Errorf("AddDir = %d, want 1", added)
	}

	names := r.Names()
	if len(names) != 1 || names[0] != "myfont" {
		t.Errorf("Names = %v, want [myfont]", names)
	}
}

func TestRegistryFaceByName(t *testing.T) {
	dir := t.TempDir()
	writeTestFont(t, dir, "MyFont.ttf")

	r := NewRegistry(dir)

	face, fallback, err := r.Face("MyFont", 24)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if fallback {
		t.Error("registered font reported as fallback")
	}
	if face.SizePt() != 24 {
		t.Errorf("SizePt = %v, want 24", face.SizePt())
	}
}

func TestRegistryFaceByPath(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFont(t, dir, "direct.ttf")

	r := NewRegistry()

	face, fallback, err := r.Face(path, 16)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if fallback {
		t.Error("explicit path reported as fallback")
	}
	if face == nil {
		t.Fatal("nil face")
	}
}

func TestRegistryMissingPath(t *testing.T) {
	r := NewRegistry()

	face, fallback, err := r.Face(filepath.Join(t.TempDir(), "nope.ttf"), 16)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if face == nil {
		t.Fatal("nil face")
	}
	if !fallback {
		t.Error("fallback = false for a path that does not exist")
	}
}

func TestRegistryUnreadablePath(t *testing.T) {
	r := NewRegistry()

	// A real file that is not a font must also degrade to the fallback.
	path := filepath.Join(t.TempDir(), "garbage.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, fallback, err := r.Face(path, 16)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if !fallback {
		t.Error("fallback = false for an unparseable font file")
	}
}

func TestRegistryFallback(t *testing.T) {
	r := NewRegistry()

	face, fallback, err := r.Face("definitely-not-a-real-font-name", 20)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if !fallback {
		t.Error("unresolvable name should use the bundled fallback")
	}
	if face == nil {
		t.Fatal("nil fallback face")
	}
}

func TestRegistryEmptyNameUsesBundled(t *testing.T) {
	r := NewRegistry()

	face, fallback, err := r.Face("", 20)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if fallback {
		t.Error("empty name is the default face, not a fallback substitution")
	}
	if face == nil {
		t.Fatal("nil face")
	}
}

func TestRegistryFaceCached(t *testing.T) {
	dir := t.TempDir()
	writeTestFont(t, dir, "cached.ttf")

	r := NewRegistry(dir)

	a, _, err := r.Face("cached", 24)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := r.Face("cached", 24)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("same name and size should return the cached face")
	}

	c, _, err := r.Face("cached", 36)
	if err != nil {
		t.Fatal(err)
	}
	if a == c {
		t.Error("different sizes must not share a face")
	}
}
