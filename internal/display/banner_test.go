package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/backmassage/xnbverter/internal/config"
	"github.com/backmassage/xnbverter/internal/term"
)

func TestPrintBanner(t *testing.T) {
	term.Configure(config.ColorNever)

	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")
	out := buf.String()
	if !strings.Contains(out, "XNBVerter 1.2.3") {
		t.Errorf("banner missing name/version:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("banner has ANSI escapes with colors disabled: %q", out)
	}
	if lines := strings.Count(out, "\n"); lines != 3 {
		t.Errorf("banner has %d lines, want 3 (boxed)", lines)
	}
}
