package probe

import (
	"context"
	"math"
)

// Prober returns the duration of the audio file at path in seconds.
// ok is false whenever no usable duration could be obtained.
type Prober interface {
	Name() string
	Probe(ctx context.Context, path string) (seconds float64, ok bool)
}

// DebugLogger is the logging surface used to report why a prober gave up.
type DebugLogger interface {
	Debug(string, ...interface{})
}

// Chain tries each prober in order and returns the first usable duration.
type Chain struct {
	Probers []Prober
	Log     DebugLogger // Optional.
}

// Name implements [Prober].
func (c *Chain) Name() string { return "chain" }

// Probe implements [Prober].
func (c *Chain) Probe(ctx context.Context, path string) (float64, bool) {
	for _, p := range c.Probers {
		if ctx.Err() != nil {
			return 0, false
		}
		seconds, ok := p.Probe(ctx, path)
		if ok {
			c.debug("%s: %.3fs for %s", p.Name(), seconds, path)
			return seconds, true
		}
		c.debug("%s: no duration for %s", p.Name(), path)
	}
	return 0, false
}

func (c *Chain) debug(format string, args ...interface{}) {
	if c.Log != nil {
		c.Log.Debug(format, args...)
	}
}

// usable reports whether a probed value can be turned into a duration.
func usable(seconds float64) bool {
	return !math.IsNaN(seconds) && !math.IsInf(seconds, 0) && seconds >= 0
}
