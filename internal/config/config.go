// Package config holds runtime configuration: defaults, environment
// overrides, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// --- Enum types for validated string fields ---

// Task selects which kind of asset the input files are converted into.
// It is chosen once per run and never changes afterwards.
type Task string

const (
	TaskNone Task = ""     // No task selected yet (may be asked interactively).
	TaskSong Task = "song" // Streaming Song .xnb for .wav/.mp3/.ogg/.wma inputs.
)

// ParseTask maps user input ("song", "Song", "SONG") to a Task.
func ParseTask(s string) (Task, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "song":
		return TaskSong, nil
	default:
		return TaskNone, fmt.Errorf("unknown output type %q (use 'song')", s)
	}
}

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Environment variables consulted by [ApplyEnv].
const (
	EnvFfprobePath  = "XNBVERTER_FFPROBE"
	EnvProbeTimeout = "XNBVERTER_PROBE_TIMEOUT"
)

// DefaultProbeTimeout bounds a single ffprobe invocation so a stuck child
// process cannot hang the batch.
const DefaultProbeTimeout = 30 * time.Second

// Config holds all runtime settings. It is populated by [DefaultConfig],
// adjusted by [ApplyEnv], then mutated by [ParseFlags] before being passed
// (by pointer) to packages that need it.
type Config struct {
	// Inputs (set from positional args, in command-line order).
	InputPaths []string
	Task       Task

	// Duration probing.
	FfprobePath  string        // Explicit ffprobe binary. Empty: search next to executable, then PATH.
	ProbeTimeout time.Duration // Default: 30s.
	NativeProbe  bool          // Default: true. Fall back to in-process decoders and ID3 tags.

	// Behavior flags.
	DryRun bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before [ApplyEnv] and [ParseFlags].
func DefaultConfig() Config {
	return Config{
		Task:         TaskNone,
		ProbeTimeout: DefaultProbeTimeout,
		NativeProbe:  true,
		ColorMode:    ColorAuto,
	}
}

// ApplyEnv overlays environment settings onto cfg. Flags parsed afterwards
// take precedence. Malformed values are ignored and the current value kept.
func ApplyEnv(cfg *Config) {
	cfg.FfprobePath = envStr(EnvFfprobePath, cfg.FfprobePath)
	cfg.ProbeTimeout = envDuration(EnvProbeTimeout, cfg.ProbeTimeout)
}

// Validate checks enum fields and numeric bounds. Input paths are not
// required here: an empty input list is reported by the pipeline so the
// caller can show usage.
func (c *Config) Validate() error {
	switch c.Task {
	case TaskNone, TaskSong:
		// valid
	default:
		return errors.New("invalid output type (use 'song')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.ProbeTimeout <= 0 {
		return fmt.Errorf("probe timeout must be positive (got %s)", c.ProbeTimeout)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envDuration accepts Go duration syntax ("45s", "2m") or a bare number of
// seconds ("45").
func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if d, err := parseDuration(v); err == nil && d > 0 {
		return d
	}
	return fallback
}
