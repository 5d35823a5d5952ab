package probe

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
)

// ErrFfprobeNotFound is returned by [Locator.Find] when no ffprobe binary is
// available.
var ErrFfprobeNotFound = errors.New("ffprobe not found (next to executable or on PATH)")

// Locator finds the ffprobe binary. The search runs at most once; the
// outcome (path or error) is remembered for the rest of the run so a missing
// tool is not searched for again for every file.
//
// Search order: Explicit, then a binary next to the running executable,
// then PATH.
type Locator struct {
	// Explicit is a user-supplied binary path or command name.
	Explicit string

	// Hooks for tests; nil means the os/exec defaults.
	Executable func() (string, error)
	LookPath   func(string) (string, error)

	once sync.Once
	path string
	err  error
}

// NewLocator returns a Locator that prefers explicit when non-empty.
func NewLocator(explicit string) *Locator {
	return &Locator{Explicit: explicit}
}

// Find returns the ffprobe path or [ErrFfprobeNotFound].
func (l *Locator) Find() (string, error) {
	l.once.Do(func() {
		l.path, l.err = l.search()
	})
	return l.path, l.err
}

func (l *Locator) search() (string, error) {
	lookPath := l.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	executable := l.Executable
	if executable == nil {
		executable = os.Executable
	}

	if l.Explicit != "" {
		if isFile(l.Explicit) {
			return l.Explicit, nil
		}
		if p, err := lookPath(l.Explicit); err == nil {
			return p, nil
		}
		return "", ErrFfprobeNotFound
	}

	if exe, err := executable(); err == nil {
		dir := filepath.Dir(exe)
		for _, name := range binaryNames() {
			candidate := filepath.Join(dir, name)
			if isFile(candidate) {
				return candidate, nil
			}
		}
	}

	if p, err := lookPath("ffprobe"); err == nil {
		return p, nil
	}
	return "", ErrFfprobeNotFound
}

func binaryNames() []string {
	if runtime.GOOS == "windows" {
		return []string{"ffprobe.exe"}
	}
	return []string{"ffprobe", "ffprobe.exe"}
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
