package probe

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/backmassage/xnbverter/internal/filetype"
)

type decodeFunc func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

var decoders = map[string]decodeFunc{
	".wav": func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(rc) },
	".mp3": mp3.Decode,
	".ogg": vorbis.Decode,
}

// NativeFormats lists the extensions [DecoderProber] can measure.
func NativeFormats() []string {
	return []string{".wav", ".mp3", ".ogg"}
}

// DecoderProber measures duration by opening the file with an in-process
// decoder and dividing the sample count by the sample rate. WMA has no
// decoder and always reports ok=false.
type DecoderProber struct {
	Log DebugLogger // Optional.
}

// Name implements [Prober].
func (d *DecoderProber) Name() string { return "decoder" }

// Probe implements [Prober].
func (d *DecoderProber) Probe(ctx context.Context, path string) (float64, bool) {
	if ctx.Err() != nil {
		return 0, false
	}
	decode, ok := decoders[filetype.Ext(path)]
	if !ok {
		return 0, false
	}
	seconds, err := decodeLength(path, decode)
	if err != nil {
		if d.Log != nil {
			d.Log.Debug("decoder %q: %v", path, err)
		}
		return 0, false
	}
	return seconds, true
}

func decodeLength(path string, decode decodeFunc) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	streamer, format, err := decode(f)
	if err != nil {
		return 0, err
	}
	defer streamer.Close()

	if format.SampleRate <= 0 {
		return 0, fmt.Errorf("invalid sample rate %d", format.SampleRate)
	}
	n := streamer.Len()
	if n < 0 {
		return 0, fmt.Errorf("unknown stream length")
	}
	seconds := float64(n) / float64(format.SampleRate)
	if !usable(seconds) {
		return 0, fmt.Errorf("unusable length %v", seconds)
	}
	return seconds, nil
}
