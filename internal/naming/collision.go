package naming

import (
	"sync"
)

// OutputTracker records which input file claimed each output path during a
// run. Inputs that differ only by extension (Theme.wav, Theme.ogg) map to the
// same descriptor; the tracker lets the pipeline warn that the later input
// overwrites the earlier one. All methods are goroutine-safe.
type OutputTracker struct {
	mu     sync.Mutex
	owners map[string]string // output path → input path that last wrote it
}

// NewOutputTracker creates a ready-to-use tracker.
func NewOutputTracker() *OutputTracker {
	return &OutputTracker{
		owners: make(map[string]string),
	}
}

// Claim assigns output to input. If a different input already claimed
// output, that input is returned with ok set; ownership moves to input
// either way. Re-claiming by the same input (duplicate arguments) is not a
// collision.
func (t *OutputTracker) Claim(input, output string) (previous string, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	owner, exists := t.owners[output]
	t.owners[output] = input
	if !exists || owner == input {
		return "", false
	}
	return owner, true
}

// Owner returns the input that last claimed output, if any.
func (t *OutputTracker) Owner(output string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	owner, ok := t.owners[output]
	return owner, ok
}
