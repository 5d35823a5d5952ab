// Package check provides system diagnostics (--check mode): where ffprobe
// was found, its version, and which formats can be measured without it.
package check

import (
	"context"
	"strings"

	"github.com/backmassage/xnbverter/internal/config"
	"github.com/backmassage/xnbverter/internal/filetype"
	"github.com/backmassage/xnbverter/internal/probe"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// Report is the outcome of a check run.
type Report struct {
	FfprobePath    string
	FfprobeVersion string
	NativeFormats  []string // Song extensions measurable in-process.
	Unmeasurable   []string // Song extensions only ffprobe or the operator can measure.
}

// Ready reports whether every song format has at least one probe.
func (r Report) Ready() bool {
	return r.FfprobePath != "" || len(r.Unmeasurable) == 0
}

// RunCheck reports ffprobe availability and the native decoder coverage.
// It returns false when some song format can only be measured by hand.
func RunCheck(ctx context.Context, cfg *config.Config, ff *probe.FFprobe, log Logger) bool {
	log.Info("=== System Check ===")
	rep := Inspect(ctx, cfg, ff)

	if rep.FfprobePath == "" {
		log.Warn("ffprobe not found (looked next to the executable and on PATH)")
	} else if rep.FfprobeVersion == "" {
		log.Warn("ffprobe found at %s but -version failed", rep.FfprobePath)
	} else {
		log.Success("ffprobe: %s", rep.FfprobeVersion)
		log.Info("  at %s", rep.FfprobePath)
	}

	if len(rep.NativeFormats) == 0 {
		log.Info("Native probes: disabled (--no-native-probe)")
	} else {
		log.Success("Native probes: %s", strings.Join(rep.NativeFormats, " "))
	}

	if rep.Ready() {
		log.Success("All song formats can be measured")
		return true
	}
	log.Error("No probe for: %s (durations will be asked for, or written as 0 ms)",
		strings.Join(rep.Unmeasurable, " "))
	return false
}

// Inspect gathers the data behind RunCheck without logging.
func Inspect(ctx context.Context, cfg *config.Config, ff *probe.FFprobe) Report {
	var rep Report
	if path, err := ff.Locator.Find(); err == nil {
		rep.FfprobePath = path
		if v, err := ff.Version(ctx); err == nil {
			rep.FfprobeVersion = v
		}
	}

	native := map[string]bool{}
	if cfg.NativeProbe {
		for _, ext := range probe.NativeFormats() {
			native[ext] = true
			rep.NativeFormats = append(rep.NativeFormats, ext)
		}
	}
	for _, ext := range songExtensions() {
		if !native[ext] {
			rep.Unmeasurable = append(rep.Unmeasurable, ext)
		}
	}
	return rep
}

// songExtensions returns the song extensions in a stable order.
func songExtensions() []string {
	order := []string{".wav", ".mp3", ".ogg", ".wma"}
	var out []string
	for _, ext := range order {
		if filetype.Song[ext] {
			out = append(out, ext)
		}
	}
	return out
}
