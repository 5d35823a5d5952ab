package pipeline

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Runner.Run before any file is touched.
var (
	ErrNoInput = errors.New("no input files")
	ErrNoTask  = errors.New("no tasks selected")
)

// StageEncode is the EncodeError stage for a failed descriptor write.
const StageEncode = "encode"

// EncodeError reports the file whose conversion stopped the batch.
type EncodeError struct {
	Stage string // Step that failed.
	Path  string // Input file.
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
