package check

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/backmassage/xnbverter/internal/config"
	"github.com/backmassage/xnbverter/internal/probe"
)

type mockLogger struct {
	lines map[string][]string
}

func newMockLogger() *mockLogger { return &mockLogger{lines: map[string][]string{}} }

func (m *mockLogger) add(level, format string, args ...interface{}) {
	m.lines[level] = append(m.lines[level], fmt.Sprintf(format, args...))
}

func (m *mockLogger) Info(f string, a ...interface{})    { m.add("info", f, a...) }
func (m *mockLogger) Success(f string, a ...interface{}) { m.add("success", f, a...) }
func (m *mockLogger) Warn(f string, a ...interface{})    { m.add("warn", f, a...) }
func (m *mockLogger) Error(f string, a ...interface{})   { m.add("error", f, a...) }

func missingFFprobe() *probe.FFprobe {
	loc := &probe.Locator{
		Executable: func() (string, error) { return "", errors.New("no exe") },
		LookPath:   func(string) (string, error) { return "", errors.New("not found") },
	}
	return probe.NewFFprobe(loc, time.Second, nil)
}

func TestInspect_NoFfprobe(t *testing.T) {
	cfg := config.DefaultConfig()
	rep := Inspect(context.Background(), &cfg, missingFFprobe())

	if rep.FfprobePath != "" {
		t.Errorf("FfprobePath = %q, want empty", rep.FfprobePath)
	}
	if len(rep.NativeFormats) != 3 {
		t.Errorf("NativeFormats = %v, want wav/mp3/ogg", rep.NativeFormats)
	}
	if len(rep.Unmeasurable) != 1 || rep.Unmeasurable[0] != ".wma" {
		t.Errorf("Unmeasurable = %v, want [.wma]", rep.Unmeasurable)
	}
	if rep.Ready() {
		t.Error("report without ffprobe should not be ready (wma)")
	}
}

func TestInspect_NativeDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.NativeProbe = false
	rep := Inspect(context.Background(), &cfg, missingFFprobe())
	if len(rep.NativeFormats) != 0 {
		t.Errorf("NativeFormats = %v, want none", rep.NativeFormats)
	}
	if len(rep.Unmeasurable) != 4 {
		t.Errorf("Unmeasurable = %v, want all four song formats", rep.Unmeasurable)
	}
}

func TestRunCheck_WithFakeFfprobe(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in needs a POSIX shell")
	}
	bin := filepath.Join(t.TempDir(), "ffprobe")
	script := "#!/bin/sh\necho 'ffprobe version 7.0 Copyright (c) 2007-2024'\n"
	if err := os.WriteFile(bin, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	log := newMockLogger()
	ok := RunCheck(context.Background(), &cfg, probe.NewFFprobe(probe.NewLocator(bin), time.Second, nil), log)
	if !ok {
		t.Fatalf("RunCheck = false, errors: %v", log.lines["error"])
	}
	if len(log.lines["success"]) == 0 || log.lines["success"][0] != "ffprobe: ffprobe version 7.0 Copyright (c) 2007-2024" {
		t.Errorf("success lines = %v", log.lines["success"])
	}
}

func TestRunCheck_Missing(t *testing.T) {
	cfg := config.DefaultConfig()
	log := newMockLogger()
	if RunCheck(context.Background(), &cfg, missingFFprobe(), log) {
		t.Error("RunCheck = true without ffprobe")
	}
	if len(log.lines["warn"]) == 0 || len(log.lines["error"]) == 0 {
		t.Errorf("expected a warning and an error, got %v", log.lines)
	}
}
