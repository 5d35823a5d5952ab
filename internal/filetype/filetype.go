// Package filetype classifies input files by extension.
package filetype

import (
	"path/filepath"

	"golang.org/x/text/cases"
)

// Recognized is every extension the tool accepts as input at all.
// Descriptors (.xnb) are recognized so they pass validation, but no task
// converts them.
var Recognized = map[string]bool{
	".wav": true,
	".mp3": true,
	".ogg": true,
	".wma": true,
	".xnb": true,
}

// Song is the subset of [Recognized] a Song descriptor can reference.
var Song = map[string]bool{
	".wav": true,
	".mp3": true,
	".ogg": true,
	".wma": true,
}

// Ext returns the extension of path case-folded for map lookups, so ".WAV",
// ".Wav" and ".wav" compare equal.
func Ext(path string) string {
	return cases.Fold().String(filepath.Ext(path))
}

// IsRecognized reports whether path carries a recognized extension.
func IsRecognized(path string) bool { return Recognized[Ext(path)] }

// IsSong reports whether path can be converted into a Song descriptor.
func IsSong(path string) bool { return Song[Ext(path)] }
