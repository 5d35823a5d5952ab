package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/backmassage/xnbverter/internal/config"
	"github.com/backmassage/xnbverter/internal/display"
	"github.com/backmassage/xnbverter/internal/filetype"
	"github.com/backmassage/xnbverter/internal/logging"
	"github.com/backmassage/xnbverter/internal/naming"
	"github.com/backmassage/xnbverter/internal/xnb"
)

// DurationResolver supplies the duration stored in each descriptor.
type DurationResolver interface {
	Resolve(ctx context.Context, path string) int32
}

// TaskAsker lets the operator pick a task when none was given.
type TaskAsker interface {
	AskTask() (config.Task, error)
}

// Runner converts validated inputs one at a time.
type Runner struct {
	Resolver    DurationResolver
	Asker       TaskAsker // Consulted only when Interactive.
	Interactive bool
	DryRun      bool
	Log         *logging.Logger
}

// Run performs task over paths, which should already have passed
// [Validate]. The first failed write stops the batch and is returned as an
// [*EncodeError]; descriptors written before it are kept. If ctx is
// cancelled the run stops between files and returns ctx.Err().
func (r *Runner) Run(ctx context.Context, task config.Task, paths []string) (RunStats, error) {
	var stats RunStats
	if len(paths) == 0 {
		return stats, ErrNoInput
	}

	if task == config.TaskNone && r.Interactive && r.Asker != nil {
		chosen, err := r.Asker.AskTask()
		if err != nil {
			r.Log.Warn("No task chosen: %v", err)
		} else {
			task = chosen
		}
	}
	if task == config.TaskNone {
		return stats, ErrNoTask
	}
	if task != config.TaskSong {
		return stats, fmt.Errorf("unsupported task %q", task)
	}

	stats.Total = len(paths)
	tracker := naming.NewOutputTracker()
	start := time.Now()

	r.Log.Info("Found %d file(s)", stats.Total)
	if r.DryRun {
		r.Log.Warn("DRY RUN: no files will be written")
	}

	var err error
	for i, path := range paths {
		stats.Current = i + 1
		if ctx.Err() != nil {
			r.Log.Warn("Interrupted")
			err = ctx.Err()
			break
		}
		if err = r.songFile(ctx, path, &stats, tracker); err != nil {
			break
		}
	}

	r.logSummary(&stats, time.Since(start))
	return stats, err
}

// songFile converts one input. Inputs that are not song sources count as
// skipped.
func (r *Runner) songFile(ctx context.Context, path string, stats *RunStats, tracker *naming.OutputTracker) error {
	name := filepath.Base(path)
	if !filetype.IsSong(path) {
		r.Log.Debug("Skip (not a song source): %s", name)
		stats.Skipped++
		return nil
	}

	r.Log.Info("[%d/%d] Creating Song XNB for %s", stats.Current, stats.Total, name)

	out := naming.OutputPath(path)
	if prev, clash := tracker.Claim(path, out); clash {
		r.Log.Warn("  %s overwrites %s written for %s", name, filepath.Base(out), filepath.Base(prev))
	}

	ms := r.Resolver.Resolve(ctx, path)
	if ctx.Err() != nil {
		// Don't write a fallback duration for a file the operator abandoned.
		r.Log.Warn("Interrupted")
		return ctx.Err()
	}
	r.Log.Info("  Duration: %s", display.FormatMillis(ms))

	if r.DryRun {
		r.Log.Success("[DRY] Would write %s", out)
		stats.Created++
		return nil
	}

	written, err := xnb.WriteSongFile(path, ms)
	if err != nil {
		stats.Failed++
		r.Log.Error("Encode failed for %s: %v", filepath.Base(written), err)
		return &EncodeError{Stage: StageEncode, Path: path, Err: err}
	}

	stats.Created++
	stats.TotalOutputBytes += int64(xnb.Song{Filename: name, DurationMs: ms}.EncodedLen())
	r.Log.Success("XNB created: %s", written)
	return nil
}

func (r *Runner) logSummary(stats *RunStats, elapsed time.Duration) {
	r.Log.Info("==============================")
	verb := "created"
	if r.DryRun {
		verb = "would be created"
	}
	r.Log.Info("Done: %d %s, %d skipped, %d failed", stats.Created, verb, stats.Skipped, stats.Failed)
	r.Log.Info("  Total files processed: %d of %d", stats.Processed(), stats.Total)
	if !r.DryRun && stats.Created > 0 {
		r.Log.Info("  Descriptor bytes written: %s", display.FormatBytes(stats.TotalOutputBytes))
	}
	r.Log.Info("  Elapsed: %s", display.FormatElapsed(elapsed))
}
