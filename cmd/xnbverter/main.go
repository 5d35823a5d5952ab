// Command xnbverter writes XNB Song descriptors that point a game's content
// pipeline at audio files streamed from disk.
//
// It parses flags, validates configuration and input paths, and either runs
// system diagnostics (--check) or the conversion pipeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/xnbverter/internal/check"
	"github.com/backmassage/xnbverter/internal/config"
	"github.com/backmassage/xnbverter/internal/display"
	"github.com/backmassage/xnbverter/internal/duration"
	"github.com/backmassage/xnbverter/internal/logging"
	"github.com/backmassage/xnbverter/internal/pipeline"
	"github.com/backmassage/xnbverter/internal/probe"
	"github.com/backmassage/xnbverter/internal/prompt"
	"github.com/backmassage/xnbverter/internal/term"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	config.ApplyEnv(&cfg)
	if err := config.ParseFlags(&cfg, os.Args[1:], version); err != nil {
		fmt.Fprintf(os.Stderr, "xnbverter: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "xnbverter: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "xnbverter: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available; all output goes through log from here on.
	display.PrintBanner(os.Stdout, version)
	log.Debug("Run %s (build %s)", log.RunID(), commit)

	// Phase 3: Signal handling. The first SIGINT/SIGTERM cancels the run
	// between files; a second one gets the default behavior and kills the
	// process (useful while blocked on a prompt).
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		signal.Stop(sigCh)
		log.Warn("Received interrupt, stopping after the current file…")
		cancel()
	}()

	ff := probe.NewFFprobe(probe.NewLocator(cfg.FfprobePath), cfg.ProbeTimeout, log)

	if cfg.CheckOnly {
		if !check.RunCheck(ctx, &cfg, ff, log) {
			return 1
		}
		return 0
	}

	paths := pipeline.Validate(cfg.InputPaths)
	if len(paths) == 0 {
		if len(cfg.InputPaths) > 0 {
			log.Error("None of the %d argument(s) is an existing audio file", len(cfg.InputPaths))
		}
		config.PrintUsage(os.Stdout, version)
		return 1
	}
	if dropped := len(cfg.InputPaths) - len(paths); dropped > 0 {
		log.Debug("Ignored %d argument(s) that are not existing audio files", dropped)
	}

	// Phase 4: Wire the probe chain, prompts and pipeline.
	interactive := term.Interactive(os.Stdin, os.Stdout)
	chain := &probe.Chain{Probers: []probe.Prober{ff}, Log: log}
	if cfg.NativeProbe {
		chain.Probers = append(chain.Probers, &probe.DecoderProber{Log: log}, &probe.TagProber{Log: log})
	}
	console := prompt.NewConsole(os.Stdin, os.Stdout)

	runner := &pipeline.Runner{
		Resolver: &duration.Resolver{
			Probe:       chain,
			Interactive: interactive,
			Prompter:    console,
			Log:         log,
		},
		Asker:       console,
		Interactive: interactive,
		DryRun:      cfg.DryRun,
		Log:         log,
	}

	_, err = runner.Run(ctx, cfg.Task, paths)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, pipeline.ErrNoTask):
		log.Error("No tasks selected. Exiting.")
	case errors.Is(err, context.Canceled):
		// Already reported.
	default:
		log.Error("%v", err)
	}
	return 1
}
