// Package pipeline validates input paths and runs the selected task over
// them, one file at a time, with a summary at the end.
//
// Files:
//   - validate.go: Validate filters raw arguments down to existing files
//     with a recognized extension.
//   - runner.go: Runner.Run selects the task and converts each song file.
//   - errors.go: ErrNoInput, ErrNoTask and EncodeError.
//   - stats.go: RunStats counters.
package pipeline
