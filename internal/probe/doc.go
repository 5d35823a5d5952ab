// Package probe measures audio durations in seconds.
//
// A [Prober] never fails hard: a missing tool, an unreadable file, a
// timeout or unparsable output all collapse to ok=false so the caller can
// move on to its next fallback. [Chain] tries several probers in order:
//
//   - [FFprobe]: runs ffprobe (located once per run by [Locator]).
//   - [DecoderProber]: decodes WAV, MP3 and Ogg Vorbis headers in-process.
//   - [TagProber]: reads the ID3v2 TLEN frame of MP3 files.
package probe
