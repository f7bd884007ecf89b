// Package ffmpeg drives an external ffmpeg binary as the tempo-stretch
// converter. The binary is discovered once per run; a missing binary is a
// fatal precondition for the whole batch, never per-file noise.
package ffmpeg

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ResourcesEnv names the environment variable pointing at a bundled-resources
// root when running from a packaged distribution.
const ResourcesEnv = "RETEMPO_RESOURCES"

// ErrNotFound reports that no ffmpeg binary is discoverable anywhere on the
// search ladder.
var ErrNotFound = errors.New("ffmpeg not found (place it next to the retempo executable, in ./ffmpeg/ or ./assets/, or on PATH)")

// Locate finds the ffmpeg binary. Search order, first match wins:
// next to the executable, in an ffmpeg/ subfolder, in an assets/ subfolder,
// the same three spots under the bundled-resources root, then PATH.
func Locate() (string, error) {
	exeDir := ""
	if exe, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exe)
	}
	return locate(exeDir, os.Getenv(ResourcesEnv))
}

func locate(exeDir, resourceRoot string) (string, error) {
	name := binaryName()

	var roots []string
	if exeDir != "" {
		roots = append(roots, exeDir)
	}
	if resourceRoot != "" && resourceRoot != exeDir {
		roots = append(roots, resourceRoot)
	}

	for _, root := range roots {
		for _, candidate := range []string{
			filepath.Join(root, name),
			filepath.Join(root, "ffmpeg", name),
			filepath.Join(root, "assets", name),
		} {
			if isFile(candidate) {
				return candidate, nil
			}
		}
	}

	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}
	return "", ErrNotFound
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "ffmpeg.exe"
	}
	return "ffmpeg"
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
