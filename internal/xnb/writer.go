package xnb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/xnbverter/internal/naming"
)

// Sentinel errors returned by WriteSongFile.
var (
	ErrEmptyPath  = errors.New("xnb: input path is empty")
	ErrNotWritten = errors.New("xnb: output file missing after write")
)

// WriteSongFile writes a song descriptor for inputPath next to it, replacing
// the extension with .xnb, and returns the output path. An existing file at
// that path is overwritten. The descriptor references the input by base name
// only, so the .xnb and the audio file must stay side by side.
func WriteSongFile(inputPath string, durationMs int32) (string, error) {
	if inputPath == "" {
		return "", ErrEmptyPath
	}
	outputPath := naming.OutputPath(inputPath)

	song := Song{
		Filename:   filepath.Base(inputPath),
		DurationMs: durationMs,
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return outputPath, fmt.Errorf("create %s: %w", outputPath, err)
	}
	if _, err := song.WriteTo(f); err != nil {
		f.Close()
		return outputPath, fmt.Errorf("write %s: %w", outputPath, err)
	}
	if err := f.Close(); err != nil {
		return outputPath, fmt.Errorf("close %s: %w", outputPath, err)
	}

	if _, err := os.Stat(outputPath); err != nil {
		return outputPath, fmt.Errorf("%w: %s: %v", ErrNotWritten, outputPath, err)
	}
	return outputPath, nil
}
