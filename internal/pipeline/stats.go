package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total   int // Validated inputs handed to the run.
	Current int // Index of the file being processed (1-based).
	Created int // Descriptors written (or that would be, in a dry run).
	Skipped int // Inputs the task does not apply to.
	Failed  int

	// TotalOutputBytes is the sum of descriptor sizes written.
	TotalOutputBytes int64
}

// Processed returns how many inputs reached a final state.
func (s *RunStats) Processed() int {
	return s.Created + s.Skipped + s.Failed
}
