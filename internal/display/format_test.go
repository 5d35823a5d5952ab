package display

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"single descriptor", 121, "121 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatMillis(t *testing.T) {
	tests := []struct {
		name string
		ms   int32
		want string
	}{
		{"zero", 0, "0:00.000 (0 ms)"},
		{"sub-second", 42, "0:00.042 (42 ms)"},
		{"five and a half seconds", 5500, "0:05.500 (5500 ms)"},
		{"minutes", 83456, "1:23.456 (83456 ms)"},
		{"hours", 3_723_004, "1:02:03.004 (3723004 ms)"},
		{"negative", -1, "-1 ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMillis(tt.ms); got != tt.want {
				t.Errorf("FormatMillis(%d) = %q, want %q", tt.ms, got, tt.want)
			}
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	if got := FormatElapsed(1254 * time.Millisecond); got != "1.25s" {
		t.Errorf("FormatElapsed = %q, want 1.25s", got)
	}
	if got := FormatElapsed(0); got != "0s" {
		t.Errorf("FormatElapsed(0) = %q, want 0s", got)
	}
}
