package config

// This file implements CLI flag parsing and help text.
// Input files and options may be interleaved in any order; every positional
// argument is collected as an input path, in order.

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ParseFlags parses args (without the program name) into cfg. On --help or
// --version it prints and exits. On error it returns non-nil (unknown flag,
// missing option value, invalid output type).
func ParseFlags(cfg *Config, args []string, version string) error {
	fs := flag.NewFlagSet("xnbverter", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var extra extraFlags

	defineTaskFlags(fs, cfg)
	defineProbeFlags(fs, cfg, &extra)
	defineDisplayFlags(fs, cfg, &extra)
	defineUtilityFlags(fs, &extra)

	paths, err := parseInterleaved(fs, args)
	if err != nil {
		if err == flag.ErrHelp {
			extra.showHelp = true
		} else {
			return err
		}
	}
	cfg.InputPaths = append(cfg.InputPaths, paths...)

	applyExtraFlags(cfg, &extra)

	if extra.showHelp {
		PrintUsage(os.Stderr, version)
		os.Exit(0)
	}
	if extra.showVersion {
		fmt.Fprintln(os.Stdout, "xnbverter v"+version)
		os.Exit(0)
	}
	return nil
}

// parseInterleaved runs fs.Parse repeatedly, peeling one positional argument
// off after each stop, so "a.wav -ot song b.wav" yields both files. Anything
// after a literal "--" is taken as paths verbatim.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var paths []string
	for {
		if err := fs.Parse(args); err != nil {
			return paths, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return paths, nil
		}
		consumed := len(args) - len(rest)
		if consumed > 0 && args[consumed-1] == "--" {
			return append(paths, rest...), nil
		}
		paths = append(paths, rest[0])
		args = rest[1:]
	}
}

// extraFlags holds boolean flags that are applied after Parse: negations of
// defaults, and flags that trigger exit (showHelp, showVersion).
type extraFlags struct {
	noNativeProbe bool
	forceColor    bool
	noColor       bool
	showVersion   bool
	showHelp      bool
}

// defineTaskFlags registers -ot/--output-type.
func defineTaskFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&taskValue{&cfg.Task}, "output-type", "Output type: song")
	fs.Var(&taskValue{&cfg.Task}, "ot", "Same as --output-type")
}

// defineProbeFlags registers --ffprobe, --probe-timeout, --no-native-probe, --dry-run.
func defineProbeFlags(fs *flag.FlagSet, cfg *Config, n *extraFlags) {
	fs.StringVar(&cfg.FfprobePath, "ffprobe", cfg.FfprobePath, "Path to ffprobe binary")
	fs.Var(&durationValue{&cfg.ProbeTimeout}, "probe-timeout", "Timeout per ffprobe call (e.g. 30s)")
	fs.BoolVar(&n.noNativeProbe, "no-native-probe", false, "Only use ffprobe for durations")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Resolve durations but do not write files")
	fs.BoolVar(&cfg.DryRun, "n", false, "Same as --dry-run")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *extraFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *extraFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

func applyExtraFlags(cfg *Config, n *extraFlags) {
	if n.noNativeProbe {
		cfg.NativeProbe = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// PrintUsage writes the help text to w. Column-aligned for readability.
func PrintUsage(w io.Writer, version string) {
	const col1 = 30
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "XNBVerter v" + version + " - streaming Song .xnb generator"},
		{"", ""},
		{"  xnbverter INPUT_FILE... [OPTIONS]", ""},
		{"", ""},
		{"Files and options may appear in any order. Without -ot, an", ""},
		{"interactive session asks which output type to create.", ""},
		{"", ""},
		{"Output", ""},
		{"  -ot, --output-type <song>", "Song .xnb for .wav, .mp3, .ogg or .wma files"},
		{"  -n, --dry-run", "Resolve durations only; do not write files"},
		{"", ""},
		{"Duration", ""},
		{"  --ffprobe <path>", "ffprobe binary (default: next to xnbverter, then PATH)"},
		{"  --probe-timeout <dur>", "Timeout per ffprobe call (default: 30s)"},
		{"  --no-native-probe", "Do not fall back to built-in decoders/ID3 tags"},
		{"", ""},
		{"If no duration can be measured you are asked for it in milliseconds;", ""},
		{"when input or output is redirected, 0 is used instead.", ""},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffprobe, decoders)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters so we can use enum and duration types with flag.Var.

type taskValue struct{ p *Task }

func (t *taskValue) String() string {
	if t.p == nil {
		return ""
	}
	return string(*t.p)
}

func (t *taskValue) Set(s string) error {
	task, err := ParseTask(s)
	if err != nil {
		return err
	}
	*t.p = task
	return nil
}

type durationValue struct{ p *time.Duration }

func (d *durationValue) String() string {
	if d.p == nil {
		return ""
	}
	return d.p.String()
}

func (d *durationValue) Set(s string) error {
	v, err := parseDuration(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("invalid duration %q (use e.g. 30s or 45)", s)
	}
	*d.p = v
	return nil
}

// parseDuration accepts Go duration syntax or a bare number of seconds.
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	return time.ParseDuration(s)
}
