// Package duration turns an audio file into the millisecond duration stored
// in its Song descriptor.
//
// Resolution is strictly ordered: probe, then (interactive runs only) ask the
// operator, then 0. It never fails.
package duration

import (
	"context"
	"errors"
	"io"
	"math"

	"github.com/backmassage/xnbverter/internal/probe"
)

// Prompter asks the operator for a duration.
type Prompter interface {
	AskDurationMs(path string) (int32, error)
}

// Logger is the logging surface the resolver needs.
type Logger interface {
	Warn(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

// Resolver resolves durations for one run.
type Resolver struct {
	Probe       probe.Prober
	Interactive bool
	Prompter    Prompter // Required when Interactive.
	Log         Logger   // Optional.

	// inputClosed is set once the operator's input has ended; later files
	// skip the prompt instead of hitting EOF again.
	inputClosed bool
}

// Resolve returns the duration of path in milliseconds.
func (r *Resolver) Resolve(ctx context.Context, path string) int32 {
	if r.Probe != nil {
		if seconds, ok := r.Probe.Probe(ctx, path); ok {
			if ms, ok := ToMillis(seconds); ok {
				return ms
			}
			r.debug("probe returned unusable duration %v for %s", seconds, path)
		}
	}

	if r.Interactive && r.Prompter != nil && !r.inputClosed && ctx.Err() == nil {
		ms, err := r.Prompter.AskDurationMs(path)
		if err == nil {
			return ms
		}
		if errors.Is(err, io.EOF) {
			r.inputClosed = true
		}
		r.warn("No duration entered for %s (%v); using 0 ms", path, err)
		return 0
	}

	r.debug("no duration available for %s; using 0 ms", path)
	return 0
}

// ToMillis converts seconds to whole milliseconds, rounding half away from
// zero and capping at math.MaxInt32. ok is false for NaN, infinities and
// negative input.
func ToMillis(seconds float64) (int32, bool) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return 0, false
	}
	ms := math.Round(seconds * 1000)
	if ms >= math.MaxInt32 {
		return math.MaxInt32, true
	}
	return int32(ms), true
}

func (r *Resolver) warn(format string, args ...interface{}) {
	if r.Log != nil {
		r.Log.Warn(format, args...)
	}
}

func (r *Resolver) debug(format string, args ...interface{}) {
	if r.Log != nil {
		r.Log.Debug(format, args...)
	}
}
