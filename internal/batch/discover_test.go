package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDiscoverSingleFiles(t *testing.T) {
	dir := t.TempDir()
	wav := writeFile(t, filepath.Join(dir, "drum_120.wav"))
	writeFile(t, filepath.Join(dir, "notes.txt"))

	got, err := Discover([]string{wav, filepath.Join(dir, "notes.txt")})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if want := []string{wav}; !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}

func TestDiscoverWalksDirectoriesRecursively(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, filepath.Join(dir, "a.wav"))
	b := writeFile(t, filepath.Join(dir, "nested", "deep", "b.FLAC"))
	writeFile(t, filepath.Join(dir, "nested", "cover.jpg"))

	got, err := Discover([]string{dir})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Discover found %d files, want 2: %v", len(got), got)
	}
	found := map[string]bool{got[0]: true, got[1]: true}
	if !found[a] || !found[b] {
		t.Errorf("Discover = %v, want %v and %v", got, a, b)
	}
}

func TestDiscoverDeduplicatesPreservingOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, filepath.Join(dir, "a.mp3"))
	b := writeFile(t, filepath.Join(dir, "b.ogg"))

	got, err := Discover([]string{b, dir, b})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if want := []string{b, a}; !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v (first mention wins)", got, want)
	}
}

func TestDiscoverMissingPathFails(t *testing.T) {
	if _, err := Discover([]string{filepath.Join(t.TempDir(), "gone.wav")}); err == nil {
		t.Error("Discover on missing path should fail")
	}
}

func TestDiscoverExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.WAV", "b.Aif", "c.M4A"} {
		writeFile(t, filepath.Join(dir, name))
	}
	got, err := Discover([]string{dir})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Discover found %d files, want 3: %v", len(got), got)
	}
}
