// Package config holds the persisted batch settings: target tempo, output
// directory and naming policy. Settings live in a flat key-value file read at
// startup and written on demand; a missing file means defaults apply.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultFile is the settings file looked up in the working directory when no
// explicit path is given.
const DefaultFile = "retempo.config.env"

// Settings keys in the persisted file.
const (
	keyTargetBPM = "TARGET_BPM"
	keyOverwrite = "OVERWRITE"
	keyFlatNames = "FLAT_NAMES"
	keyOutDir    = "OUT_DIR"
	keySuffix    = "SUFFIX"
)

// Settings is the read-only input of a batch run. The orchestrator copies it
// at run start and never mutates it.
type Settings struct {
	TargetBPM    int    // Tempo every file is converted to.
	OutputDir    string // Directory receiving converted files.
	Overwrite    bool   // Replace existing outputs instead of skipping.
	FlattenNames bool   // Name outputs from the file name only, not the full path.
	ExtraLabel   string // Optional label appended to every output name.
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		TargetBPM:    100,
		OutputDir:    "./output",
		Overwrite:    false,
		FlattenNames: true,
		ExtraLabel:   "",
	}
}

// Load reads settings from path. A missing file is not an error: defaults are
// returned. Unknown keys are ignored; malformed values fall back to defaults
// field by field.
func Load(path string) (Settings, error) {
	s := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return s, fmt.Errorf("read settings %s: %w", path, err)
	}

	if v, ok := values[keyTargetBPM]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			s.TargetBPM = n
		}
	}
	if v, ok := values[keyOverwrite]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Overwrite = b
		}
	}
	if v, ok := values[keyFlatNames]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			s.FlattenNames = b
		}
	}
	if v, ok := values[keyOutDir]; ok && v != "" {
		s.OutputDir = v
	}
	if v, ok := values[keySuffix]; ok {
		s.ExtraLabel = v
	}
	return s, nil
}

// Save writes settings to path, replacing any previous content.
func Save(path string, s Settings) error {
	values := map[string]string{
		keyTargetBPM: strconv.Itoa(s.TargetBPM),
		keyOverwrite: strconv.FormatBool(s.Overwrite),
		keyFlatNames: strconv.FormatBool(s.FlattenNames),
		keyOutDir:    s.OutputDir,
		keySuffix:    s.ExtraLabel,
	}
	if err := godotenv.Write(values, path); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}
