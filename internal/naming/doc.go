// Package naming derives descriptor output paths from input paths and
// tracks which input claimed each output path within a run.
package naming
