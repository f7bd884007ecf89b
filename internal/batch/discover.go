// Package batch orchestrates a conversion run: it expands the user's input
// paths into a work list and drives each file through detection, planning,
// naming and conversion, one file at a time.
package batch

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// audioExtensions is the allow-list of file types a run will pick up.
// Everything else in a walked directory is ignored silently.
var audioExtensions = map[string]bool{
	".wav":  true,
	".flac": true,
	".aiff": true,
	".aif":  true,
	".ogg":  true,
	".mp3":  true,
	".m4a":  true,
}

// Discover expands paths into the list of audio files to convert. Plain files
// are taken as-is when their extension is allowed; directories are walked
// recursively. Results are absolute paths, de-duplicated, in first-seen order.
func Discover(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if seen[abs] {
			return nil
		}
		seen[abs] = true
		files = append(files, abs)
		return nil
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if isAudio(path) {
				if err := add(path); err != nil {
					return nil, err
				}
			}
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isAudio(p) {
				return nil
			}
			return add(p)
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func isAudio(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}
