package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ExecError reports a failed converter invocation together with the captured
// process output, so the batch log can show ffmpeg's own diagnostic.
type ExecError struct {
	Err    error
	Output string
}

func (e *ExecError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("ffmpeg: %v", e.Err)
	}
	return fmt.Sprintf("ffmpeg: %v: %s", e.Err, e.Output)
}

func (e *ExecError) Unwrap() error { return e.Err }

// Converter invokes ffmpeg to apply a tempo-stretch stage chain. It implements
// the batch package's Locator and Converter collaborator interfaces.
type Converter struct {
	path string
}

// NewConverter returns a converter that resolves the ffmpeg binary on first use.
func NewConverter() *Converter {
	return &Converter{}
}

// Locate resolves and caches the ffmpeg binary path.
func (c *Converter) Locate() (string, error) {
	if c.path != "" {
		return c.path, nil
	}
	path, err := Locate()
	if err != nil {
		return "", err
	}
	c.path = path
	return path, nil
}

// Convert stretches src into dst by the given stage chain, overwriting dst if
// present. The call blocks until the process exits; no timeout is applied, so
// a legitimately slow conversion is never cut short. Failures carry the
// captured process output as an *ExecError.
func (c *Converter) Convert(ctx context.Context, src, dst string, stages []float64) error {
	bin, err := c.Locate()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, bin, buildArgs(src, dst, stages)...)
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		return &ExecError{Err: err, Output: strings.TrimSpace(output.String())}
	}
	return nil
}

// FilterSpec renders the stage chain as a serial atempo filter specification,
// one atempo per stage, joined in order.
func FilterSpec(stages []float64) string {
	parts := make([]string, len(stages))
	for i, f := range stages {
		parts[i] = fmt.Sprintf("atempo=%.6f", f)
	}
	return strings.Join(parts, ",")
}

// buildArgs assembles the ffmpeg invocation. WAV and AIFF destinations are
// forced to 24-bit PCM so uncompressed outputs keep a known bit depth.
func buildArgs(src, dst string, stages []float64) []string {
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-i", src,
		"-filter:a", FilterSpec(stages),
	}
	switch strings.ToLower(filepath.Ext(dst)) {
	case ".wav", ".aiff", ".aif":
		args = append(args, "-c:a", "pcm_s24le")
	}
	return append(args, dst)
}
