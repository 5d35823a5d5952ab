// Package prompt implements the operator-facing questions asked when a run
// is interactive: which task to perform and, when no probe can measure a
// file, its duration in milliseconds.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/backmassage/xnbverter/internal/config"
	"github.com/backmassage/xnbverter/internal/term"
)

type styles struct {
	title   lipgloss.Style
	path    lipgloss.Style
	cursor  lipgloss.Style
	invalid lipgloss.Style
}

// Console asks questions on out and reads answers line by line from in.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	styles styles
}

// NewConsole returns a Console. Styling follows the global color state in
// internal/term.
func NewConsole(in io.Reader, out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	if !term.Enabled() {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		styles: styles{
			title:   r.NewStyle().Bold(true),
			path:    r.NewStyle().Foreground(lipgloss.Color("12")),
			cursor:  r.NewStyle().Foreground(lipgloss.Color("241")),
			invalid: r.NewStyle().Foreground(lipgloss.Color("9")),
		},
	}
}

// AskTask shows the task menu until a valid option is chosen. It returns
// io.EOF (wrapped) if input ends first.
func (c *Console) AskTask() (config.Task, error) {
	for {
		fmt.Fprintln(c.out, c.styles.title.Render("Enter your option and press Enter/Return:"))
		fmt.Fprintln(c.out, "1. Create Song .XNB")
		line, err := c.readLine()
		if err != nil {
			return config.TaskNone, fmt.Errorf("task menu: %w", err)
		}
		if n, perr := strconv.Atoi(line); perr == nil && n == 1 {
			return config.TaskSong, nil
		}
		fmt.Fprintln(c.out, c.styles.invalid.Render("Invalid option. Try again."))
	}
}

// AskDurationMs asks for the duration of path until a non-negative int32
// is entered. It returns io.EOF (wrapped) if input ends first.
func (c *Console) AskDurationMs(path string) (int32, error) {
	for {
		fmt.Fprintln(c.out, "Enter the duration of:")
		fmt.Fprintln(c.out, c.styles.path.Render(path))
		fmt.Fprintln(c.out, "in milliseconds (integer):")
		line, err := c.readLine()
		if err != nil {
			return 0, fmt.Errorf("duration of %s: %w", path, err)
		}
		if ms, ok := ParseMillis(line); ok {
			return ms, nil
		}
		fmt.Fprintln(c.out, c.styles.invalid.Render("Invalid duration. Try again."))
	}
}

// ParseMillis accepts a base-10 integer in [0, MaxInt32].
func ParseMillis(s string) (int32, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil || v < 0 {
		return 0, false
	}
	return int32(v), true
}

// readLine prints the cursor and reads one line. A final unterminated line
// is returned as-is; io.EOF is only reported when nothing was read.
func (c *Console) readLine() (string, error) {
	fmt.Fprint(c.out, c.styles.cursor.Render(">")+" ")
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
