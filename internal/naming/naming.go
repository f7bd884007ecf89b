// Package naming builds clean, collision-resistant output paths for converted
// audio files. Digits (including the tempo being replaced), loop-pack stopwords
// and separator noise are stripped so the output name is stable across repeated
// conversions of the same source.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Placeholder used when sanitization empties a name entirely.
const Placeholder = "converted"

var (
	reDigits        = regexp.MustCompile(`[0-9]+`)
	reStopwords     = regexp.MustCompile(`(?i)\b(drum|loop|full)\b`)
	reSpaces        = regexp.MustCompile(`\s+`)
	reUnderscores   = regexp.MustCompile(`_+`)
	reTrailingJunk  = regexp.MustCompile(`[^A-Za-z]+$`)
	reSuffixIllegal = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
)

// OutputPath derives the output path for src inside outDir.
//
// When flatten is true only the source file's own name seeds the output name;
// otherwise the full source path is folded into the name (drive markers
// removed, separators replaced) so files from different directories keep
// distinct, traceable names. A non-empty suffix is normalized and appended.
// The original extension is kept, lower-cased. The result never ends in a
// digit, underscore or hyphen, and the function is idempotent on its own
// output for the same suffix.
func OutputPath(src, outDir string, flatten bool, suffix string) string {
	rel := filepath.Base(src)
	if !flatten {
		rel = strings.ReplaceAll(filepath.ToSlash(src), ":", "")
		rel = strings.ReplaceAll(rel, "/", "_")
	}
	ext := strings.ToLower(filepath.Ext(src))
	base := strings.TrimSuffix(rel, filepath.Ext(rel))

	token := ""
	if suf := normalizeSuffix(suffix); suf != "" {
		token = reUnderscores.ReplaceAllString("_"+suf, "_")
		token = reTrailingJunk.ReplaceAllString(token, "")
	}

	// A label already carried by the stem is stripped before sanitization and
	// re-appended afterwards. Sanitizing would mangle a label with digits in
	// it, so a suffix-match against the sanitized name alone is not enough to
	// keep re-sanitizing an output name a no-op.
	if token != "" {
		base = strings.TrimSuffix(base, token)
	}

	clean := SanitizeBase(base)

	if token != "" && !strings.HasSuffix(clean, token) {
		clean += token
	}

	clean = strings.TrimRight(clean, "_-")
	if clean == "" {
		clean = Placeholder
	}

	out := filepath.Join(outDir, clean+ext)
	if abs, err := filepath.Abs(out); err == nil {
		out = abs
	}
	return out
}

// SanitizeBase strips digits, stopwords and separator noise from a name stem.
// The result contains only letter words joined by single underscores and never
// ends in a non-letter; an emptied name becomes the fixed placeholder.
func SanitizeBase(base string) string {
	s := reDigits.ReplaceAllString(base, "")

	// Separators become spaces so stopwords can be removed as whole words.
	spaced := strings.NewReplacer("_", " ", "-", " ").Replace(s)
	spaced = reStopwords.ReplaceAllString(spaced, "")
	spaced = strings.TrimSpace(reSpaces.ReplaceAllString(spaced, " "))

	s = strings.ReplaceAll(spaced, " ", "_")
	s = reUnderscores.ReplaceAllString(s, "_")
	s = reTrailingJunk.ReplaceAllString(s, "")

	if s == "" {
		return Placeholder
	}
	return s
}

// normalizeSuffix cleans a user-supplied label: trimmed, spaces to
// underscores, runs collapsed, characters outside [A-Za-z0-9_-] dropped.
// Returns "" when nothing usable remains.
func normalizeSuffix(suffix string) string {
	suf := strings.TrimSpace(suffix)
	suf = strings.ReplaceAll(suf, " ", "_")
	suf = reUnderscores.ReplaceAllString(suf, "_")
	return reSuffixIllegal.ReplaceAllString(suf, "")
}
