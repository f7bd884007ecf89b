package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if s != Default() {
		t.Errorf("Load on missing file = %+v, want defaults %+v", s, Default())
	}
}

func TestDefaults(t *testing.T) {
	s := Default()
	if s.TargetBPM != 100 || s.Overwrite || !s.FlattenNames || s.OutputDir != "./output" || s.ExtraLabel != "" {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retempo.config.env")
	want := Settings{
		TargetBPM:    128,
		OutputDir:    "/music/converted",
		Overwrite:    true,
		FlattenNames: false,
		ExtraLabel:   "club_edit",
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadMalformedValuesFallBackPerField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retempo.config.env")
	content := "TARGET_BPM=fast\nOVERWRITE=yes please\nOUT_DIR=/kept\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.TargetBPM != 100 {
		t.Errorf("TargetBPM = %d, want default 100 for malformed value", s.TargetBPM)
	}
	if s.Overwrite {
		t.Error("Overwrite = true, want default false for malformed value")
	}
	if s.OutputDir != "/kept" {
		t.Errorf("OutputDir = %q, want /kept", s.OutputDir)
	}
}
