package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// FFprobe asks the external ffprobe tool for a file's duration. Any failure
// (missing binary, non-zero exit, timeout, unparsable output) is reported as
// ok=false; the reason goes to Log at debug level.
type FFprobe struct {
	Locator *Locator
	Timeout time.Duration // Zero means no timeout beyond ctx.
	Log     DebugLogger   // Optional.
}

// NewFFprobe returns an FFprobe backed by loc.
func NewFFprobe(loc *Locator, timeout time.Duration, log DebugLogger) *FFprobe {
	return &FFprobe{Locator: loc, Timeout: timeout, Log: log}
}

// Name implements [Prober].
func (f *FFprobe) Name() string { return "ffprobe" }

// Probe implements [Prober].
func (f *FFprobe) Probe(ctx context.Context, path string) (float64, bool) {
	out, err := f.run(ctx,
		"-v", "error",
		"-print_format", "json",
		"-show_entries", "format=duration:stream=codec_type,duration",
		path,
	)
	if err != nil {
		f.debug("ffprobe %q: %v", path, err)
		return 0, false
	}
	seconds, err := ParseDuration(out)
	if err != nil {
		f.debug("ffprobe %q: %v", path, err)
		return 0, false
	}
	return seconds, true
}

// Version returns the first line of `ffprobe -version`.
func (f *FFprobe) Version(ctx context.Context) (string, error) {
	out, err := f.run(ctx, "-version")
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line), nil
}

func (f *FFprobe) run(ctx context.Context, args ...string) ([]byte, error) {
	bin, err := f.Locator.Find()
	if err != nil {
		return nil, err
	}
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("timed out after %s", f.Timeout)
		}
		if msg := lastLine(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return out, nil
}

// lastLine returns the last non-empty line of ffprobe's stderr, which is
// where it reports why a file could not be read.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

func (f *FFprobe) debug(format string, args ...interface{}) {
	if f.Log != nil {
		f.Log.Debug(format, args...)
	}
}

// ParseDuration extracts a duration in seconds from ffprobe JSON output.
// The container duration wins; when it is absent or "N/A" the first audio
// stream's duration is used. Exported for testing without a real ffprobe
// binary.
func ParseDuration(data []byte) (float64, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	if d, ok := parseSeconds(raw.Format.Duration); ok {
		return d, nil
	}
	for _, s := range raw.Streams {
		if s.CodecType != "audio" {
			continue
		}
		if d, ok := parseSeconds(s.Duration); ok {
			return d, nil
		}
		break
	}
	return 0, fmt.Errorf("no duration in ffprobe output")
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

type ffprobeStream struct {
	CodecType string `json:"codec_type"`
	Duration  string `json:"duration"`
}

func parseSeconds(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !usable(v) {
		return 0, false
	}
	return v, true
}
