package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestParseTask(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Task
		wantErr bool
	}{
		{"lowercase", "song", TaskSong, false},
		{"mixed case", "Song", TaskSong, false},
		{"padded", "  SONG ", TaskSong, false},
		{"unknown", "texture", TaskNone, true},
		{"empty", "", TaskNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTask(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTask(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTask(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_Task(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
	}{
		{"none is valid", TaskNone, false},
		{"song is valid", TaskSong, false},
		{"unknown is invalid", "effect", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Task = tt.task
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ColorMode = "sometimes"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject unknown color mode")
	}
}

func TestValidate_ProbeTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProbeTimeout = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject zero probe timeout")
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Task != TaskNone {
		t.Errorf("default Task = %q, want none", cfg.Task)
	}
	if cfg.ProbeTimeout != DefaultProbeTimeout {
		t.Errorf("default ProbeTimeout = %v, want %v", cfg.ProbeTimeout, DefaultProbeTimeout)
	}
	if !cfg.NativeProbe {
		t.Error("default NativeProbe should be true")
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
	if cfg.DryRun {
		t.Error("default DryRun should be false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvFfprobePath, "/opt/ff/ffprobe")
	t.Setenv(EnvProbeTimeout, "45")

	cfg := DefaultConfig()
	ApplyEnv(&cfg)

	if cfg.FfprobePath != "/opt/ff/ffprobe" {
		t.Errorf("FfprobePath = %q", cfg.FfprobePath)
	}
	if cfg.ProbeTimeout != 45*time.Second {
		t.Errorf("ProbeTimeout = %v, want 45s", cfg.ProbeTimeout)
	}
}

func TestApplyEnv_InvalidTimeoutKeepsDefault(t *testing.T) {
	t.Setenv(EnvFfprobePath, "")
	t.Setenv(EnvProbeTimeout, "soon")

	cfg := DefaultConfig()
	ApplyEnv(&cfg)

	if cfg.ProbeTimeout != DefaultProbeTimeout {
		t.Errorf("ProbeTimeout = %v, want default", cfg.ProbeTimeout)
	}
	if cfg.FfprobePath != "" {
		t.Errorf("FfprobePath = %q, want empty", cfg.FfprobePath)
	}
}

func TestParseFlags_Interleaved(t *testing.T) {
	cfg := DefaultConfig()
	args := []string{"a.wav", "-ot", "song", "b.mp3", "--verbose", "c.ogg"}
	if err := ParseFlags(&cfg, args, "test"); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	want := []string{"a.wav", "b.mp3", "c.ogg"}
	if !reflect.DeepEqual(cfg.InputPaths, want) {
		t.Errorf("InputPaths = %v, want %v", cfg.InputPaths, want)
	}
	if cfg.Task != TaskSong {
		t.Errorf("Task = %q, want song", cfg.Task)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be set")
	}
}

func TestParseFlags_LongOutputType(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, []string{"--output-type", "SONG", "x.wma"}, "test"); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.Task != TaskSong {
		t.Errorf("Task = %q, want song", cfg.Task)
	}
}

func TestParseFlags_DoubleDashTakesRestAsPaths(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, []string{"-ot", "song", "--", "-weird.wav", "b.wav"}, "test"); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	want := []string{"-weird.wav", "b.wav"}
	if !reflect.DeepEqual(cfg.InputPaths, want) {
		t.Errorf("InputPaths = %v, want %v", cfg.InputPaths, want)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown output type", []string{"-ot", "texture", "a.wav"}},
		{"missing output type value", []string{"a.wav", "-ot"}},
		{"unknown option", []string{"--bogus", "a.wav"}},
		{"bad timeout", []string{"--probe-timeout", "later"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := ParseFlags(&cfg, tt.args, "test"); err == nil {
				t.Errorf("ParseFlags(%v) should fail", tt.args)
			}
		})
	}
}

func TestParseFlags_ProbeAndColor(t *testing.T) {
	cfg := DefaultConfig()
	args := []string{"--no-native-probe", "--probe-timeout", "2m", "--no-color", "--ffprobe", "/x/ffprobe", "-n"}
	if err := ParseFlags(&cfg, args, "test"); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.NativeProbe {
		t.Error("NativeProbe should be cleared")
	}
	if cfg.ProbeTimeout != 2*time.Minute {
		t.Errorf("ProbeTimeout = %v, want 2m", cfg.ProbeTimeout)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want never", cfg.ColorMode)
	}
	if cfg.FfprobePath != "/x/ffprobe" {
		t.Errorf("FfprobePath = %q", cfg.FfprobePath)
	}
	if !cfg.DryRun {
		t.Error("DryRun should be set")
	}
	if len(cfg.InputPaths) != 0 {
		t.Errorf("InputPaths = %v, want none", cfg.InputPaths)
	}
}

func TestPrintUsage(t *testing.T) {
	var b strings.Builder
	PrintUsage(&b, "9.9.9")
	out := b.String()
	for _, want := range []string{"XNBVerter v9.9.9", "--output-type", "--ffprobe", "milliseconds"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}
