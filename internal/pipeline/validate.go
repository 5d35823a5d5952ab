package pipeline

import (
	"os"

	"github.com/backmassage/xnbverter/internal/filetype"
)

// Validate keeps the paths that name an existing regular file with a
// recognized extension. Everything else is dropped without comment. Order
// and duplicates are preserved.
func Validate(paths []string) []string {
	var valid []string
	for _, p := range paths {
		if !filetype.IsRecognized(p) {
			continue
		}
		fi, err := os.Stat(p)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		valid = append(valid, p)
	}
	return valid
}
