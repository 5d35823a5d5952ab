package probe

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"

	"github.com/backmassage/xnbverter/internal/filetype"
)

// lengthFrame is the ID3v2 text frame holding the track length in ms.
const lengthFrame = "TLEN"

// TagProber reads the ID3v2 TLEN frame of an MP3. It is the last resort:
// taggers often omit the frame, and when present it is only as accurate as
// whoever wrote it.
type TagProber struct {
	Log DebugLogger // Optional.
}

// Name implements [Prober].
func (t *TagProber) Name() string { return "id3-tlen" }

// Probe implements [Prober].
func (t *TagProber) Probe(ctx context.Context, path string) (float64, bool) {
	if ctx.Err() != nil || filetype.Ext(path) != ".mp3" {
		return 0, false
	}
	seconds, err := readTagLength(path)
	if err != nil {
		if t.Log != nil {
			t.Log.Debug("id3 %q: %v", path, err)
		}
		return 0, false
	}
	return seconds, true
}

func readTagLength(path string) (float64, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{lengthFrame}})
	if err != nil {
		return 0, err
	}
	defer tag.Close()

	frame := tag.GetTextFrame(lengthFrame)
	text := strings.TrimSpace(strings.Trim(frame.Text, "\x00"))
	if text == "" {
		return 0, fmt.Errorf("no %s frame", lengthFrame)
	}
	ms, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", lengthFrame, text, err)
	}
	seconds := ms / 1000
	if !usable(seconds) {
		return 0, fmt.Errorf("%s %q out of range", lengthFrame, text)
	}
	return seconds, nil
}
