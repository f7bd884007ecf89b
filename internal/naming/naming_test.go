package naming

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeBase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"digits removed", "groove_95", "groove"},
		{"stopwords removed", "drum_loop_full_bass_140", "bass"},
		{"separators collapsed", "deep--house__stab", "deep_house_stab"},
		{"trailing junk stripped", "pad_-_", "pad"},
		{"stopword inside word kept", "drummer_solo", "drummer_solo"},
		{"mixed case stopwords", "DRUM_Loop_kick", "kick"},
		{"emptied name becomes placeholder", "120_-_303", Placeholder},
		{"spaces normalised", "warm  analog   keys", "warm_analog_keys"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeBase(tt.in); got != tt.want {
				t.Errorf("SanitizeBase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOutputPathFlatten(t *testing.T) {
	got := OutputPath("/samples/kits/drum_loop_120_fat.WAV", "/out", true, "")
	want, _ := filepath.Abs(filepath.Join("/out", "fat.wav"))
	if got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}

func TestOutputPathTreePreservesDirectories(t *testing.T) {
	a := OutputPath("/samples/funk/groove_95.wav", "/out", false, "")
	b := OutputPath("/samples/soul/groove_95.wav", "/out", false, "")
	if a == b {
		t.Errorf("tree naming collided: %q", a)
	}
	if !strings.Contains(filepath.Base(a), "funk") {
		t.Errorf("tree name %q should trace the source directory", a)
	}
}

func TestOutputPathSuffix(t *testing.T) {
	tests := []struct {
		name   string
		suffix string
		want   string
	}{
		{"plain label", "_mix", "groove_mix.wav"},
		{"label with spaces", "_club  edit", "groove_club_edit.wav"},
		{"label with illegal chars", "_v2!!", "groove_v.wav"},
		{"label of pure digits vanishes", "_2024", "groove.wav"},
		{"empty label unchanged", "", "groove.wav"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputPath("groove_95.wav", "/out", true, tt.suffix)
			if filepath.Base(got) != tt.want {
				t.Errorf("OutputPath suffix %q = %q, want %q", tt.suffix, filepath.Base(got), tt.want)
			}
		})
	}
}

// Output names never end in a digit, underscore or hyphen, whatever the input.
func TestOutputPathNeverEndsInJunk(t *testing.T) {
	inputs := []string{
		"groove_95.wav",
		"120.wav",
		"a-1_b-2_c-3.flac",
		"drum_loop_.aiff",
		"x__-__y_77.ogg",
	}
	for _, in := range inputs {
		for _, suffix := range []string{"", "_mix", "_take2"} {
			got := filepath.Base(OutputPath(in, "/out", true, suffix))
			stem := strings.TrimSuffix(got, filepath.Ext(got))
			last := stem[len(stem)-1]
			if !(last >= 'a' && last <= 'z' || last >= 'A' && last <= 'Z') {
				t.Errorf("OutputPath(%q, suffix %q) = %q ends in %q", in, suffix, got, last)
			}
		}
	}
}

// Re-sanitizing an output name with the same suffix must be a no-op.
func TestOutputPathIdempotent(t *testing.T) {
	inputs := []string{
		"drum_loop_140_fat.wav",
		"groove_95.flac",
		"120_-_303.aiff",
		"warm keys 88.ogg",
	}
	for _, in := range inputs {
		// a2b keeps a digit inside the appended label, take2 loses its
		// trailing digit during normalization.
		for _, suffix := range []string{"", "_mix", "_club edit2", "a2b", "take2"} {
			first := OutputPath(in, "/out", true, suffix)
			second := OutputPath(first, "/out", true, suffix)
			if first != second {
				t.Errorf("OutputPath(%q, suffix %q) not idempotent: %q then %q", in, suffix, first, second)
			}
		}
	}
}

func TestOutputPathSuffixKeepsInteriorDigits(t *testing.T) {
	got := OutputPath("groove_95.wav", "/out", true, "a2b")
	if filepath.Base(got) != "groove_a2b.wav" {
		t.Errorf("OutputPath = %q, want groove_a2b.wav", filepath.Base(got))
	}
}

func TestOutputPathExtensionLowercased(t *testing.T) {
	got := OutputPath("LEAD_77.AIFF", "/out", true, "")
	if ext := filepath.Ext(got); ext != ".aiff" {
		t.Errorf("extension = %q, want .aiff", ext)
	}
}
