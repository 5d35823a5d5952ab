package display

import (
	"fmt"
	"time"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatMillis renders a descriptor duration as clock time followed by the
// raw value, e.g. "1:23.456 (83456 ms)". Hours appear only when non-zero.
func FormatMillis(ms int32) string {
	if ms < 0 {
		return fmt.Sprintf("%d ms", ms)
	}
	total := int64(ms)
	h := total / 3_600_000
	m := total / 60_000 % 60
	s := total / 1000 % 60
	frac := total % 1000
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d.%03d (%d ms)", h, m, s, frac, ms)
	}
	return fmt.Sprintf("%d:%02d.%03d (%d ms)", m, s, frac, ms)
}

// FormatElapsed renders a wall-clock duration rounded to 10 ms (e.g. "1.25s").
func FormatElapsed(d time.Duration) string {
	return d.Round(10 * time.Millisecond).String()
}
