package naming

import (
	"path/filepath"
	"strings"
)

// DescriptorExt is the extension given to every generated descriptor.
const DescriptorExt = ".xnb"

// OutputPath returns the descriptor path for input: same directory, same
// stem, extension replaced by .xnb. A name without an extension gains one.
//
//	music/Theme.ogg  ->  music/Theme.xnb
//	music/Theme      ->  music/Theme.xnb
func OutputPath(input string) string {
	return ReplaceExtension(input, DescriptorExt)
}

// ReplaceExtension swaps the final extension of path for ext. Only the base
// name is inspected, so dots in directory names are left alone.
func ReplaceExtension(path, ext string) string {
	base := filepath.Base(path)
	if e := filepath.Ext(base); e != "" && e != base {
		path = strings.TrimSuffix(path, e)
	}
	return path + ext
}
