// Package detect infers a tempo in beats per minute from an audio file's name.
package detect

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Accepted tempo range, inclusive. Values outside it are never candidates.
const (
	MinBPM = 40
	MaxBPM = 220
)

// Source identifies which heuristic produced a detection.
type Source int

const (
	// SourceTagged means the value directly followed an explicit "bpm" token.
	SourceTagged Source = iota
	// SourceScored means the value won the standalone-number scoring pass.
	SourceScored
)

// String returns a short label for logging.
func (s Source) String() string {
	if s == SourceTagged {
		return "tagged"
	}
	return "scored"
}

// Detection is a tempo inferred from a filename.
type Detection struct {
	BPM    int
	Source Source
}

// keywords mark loop/drum material. Their presence raises every candidate's
// score uniformly for that filename, not per candidate.
var keywords = []string{"loop", "drum", "beat", "kick", "snare", "hats", "perc", "groove"}

var (
	// reTagged captures the digit run following a "bpm" token and optional
	// separators. The run length is validated separately because RE2 has no
	// lookahead to reject a fourth adjacent digit.
	reTagged = regexp.MustCompile(`(?i)bpm[\s_-]*([0-9]+)`)

	// reDigitRun matches maximal digit runs; a run of exactly 2-3 digits is a
	// standalone candidate by construction (no adjacent digits possible).
	reDigitRun = regexp.MustCompile(`[0-9]+`)
)

// Detect extracts a plausible BPM from filename. The extension is ignored.
// An explicit "bpm" tag with an in-range 2-3 digit value wins immediately;
// otherwise every standalone 2-3 digit number in range is scored and the
// highest-scoring one is returned, ties broken by latest occurrence.
// The second return value is false when nothing plausible is found.
func Detect(filename string) (Detection, bool) {
	base := stem(filename)

	if bpm, ok := taggedBPM(base); ok && bpm >= MinBPM && bpm <= MaxBPM {
		return Detection{BPM: bpm, Source: SourceTagged}, true
	}

	candidates := standaloneCandidates(base)
	if len(candidates) == 0 {
		return Detection{}, false
	}

	lower := strings.ToLower(base)
	bonus := 0
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			bonus = 50
			break
		}
	}

	bestScore, bestIdx, best := -1, -1, 0
	for _, c := range candidates {
		// Distance from the start of the name to the candidate's last
		// occurrence: numbers nearer the end of the name score higher.
		idx := strings.LastIndex(lower, strconv.Itoa(c))
		score := bonus
		if idx >= 0 {
			score += 2 * idx
		}
		// Highest score wins; on equal scores the latest occurrence wins.
		if score > bestScore || (score == bestScore && idx >= bestIdx) {
			bestScore, bestIdx, best = score, idx, c
		}
	}
	return Detection{BPM: best, Source: SourceScored}, true
}

// taggedBPM returns the value of the first "bpm"-tagged 2-3 digit run, even
// when it is out of range; the caller decides whether to fall through to
// scoring. Tags followed by longer digit runs are not tags at all.
func taggedBPM(base string) (int, bool) {
	for _, m := range reTagged.FindAllStringSubmatchIndex(base, -1) {
		run := base[m[2]:m[3]]
		if len(run) < 2 || len(run) > 3 {
			continue
		}
		n, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}

// standaloneCandidates collects every in-range number formed by a maximal
// digit run of exactly 2 or 3 digits, in order of occurrence.
func standaloneCandidates(base string) []int {
	var out []int
	for _, run := range reDigitRun.FindAllString(base, -1) {
		if len(run) < 2 || len(run) > 3 {
			continue
		}
		n, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		if n >= MinBPM && n <= MaxBPM {
			out = append(out, n)
		}
	}
	return out
}

// stem strips the directory and the final extension from a path.
func stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
