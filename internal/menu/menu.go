// Package menu implements a keyboard-navigable grid selection menu for the
// terminal. Labels are laid out column-major into as many columns as fit the
// available width, the cursor wraps around every grid edge, and the caller
// gets back the index of the confirmed entry in the original label order.
// Truncation and padding are purely display concerns; the returned index is
// always valid against the caller's own slice.
package menu

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var (
	// ErrEmptyMenu is returned when there are no labels to choose from.
	// Callers typically treat it as "nothing to do" rather than a fault.
	ErrEmptyMenu = errors.New("menu: no options to select from")

	// ErrCancelled is returned when the user leaves the menu without
	// confirming (esc, q, ctrl+c, or the input stream ending). It is
	// deliberately distinct from any index so shell-substitution callers
	// never receive a bogus selection.
	ErrCancelled = errors.New("menu: selection cancelled")
)

// ConfigError reports sizing constraints under which no grid can be laid
// out. It carries the offending values so the caller can correct them.
type ConfigError struct {
	MaxColumnWidth int
	Columns        int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("menu: unusable layout constraints (maxColumnWidth=%d, columns=%d)", e.MaxColumnWidth, e.Columns)
}

// Open shows the menu and blocks until the user confirms or cancels. It
// returns the 0-based index of the chosen entry in labels. All layout and
// configuration errors are detected before anything is drawn.
//
// The menu is rendered to stderr and reads keys from the controlling
// terminal, so stdout stays clean for the selection itself and labels may be
// piped in on stdin.
func Open(labels []string, title string, opts Options) (int, error) {
	geo, err := Layout(labels, opts)
	if err != nil {
		return -1, err
	}

	initial := opts.Initial
	if initial < 0 || initial >= geo.Total {
		initial = 0
	}
	current := -1
	if opts.HighlightCurrent {
		current = initial
	}

	input, closeInput, err := menuInput()
	if err != nil {
		return -1, err
	}
	defer closeInput()

	p := tea.NewProgram(
		newModel(geo, title, initial, current),
		tea.WithInput(input),
		tea.WithOutput(os.Stderr),
	)
	out, err := p.Run()
	if err != nil {
		return -1, fmt.Errorf("menu: %w", err)
	}

	final := out.(model)
	if !final.confirmed {
		return -1, ErrCancelled
	}
	return final.selected, nil
}

// menuInput returns the reader to take keystrokes from. When stdin is a pipe
// (labels supplied via `... | pickctl pick`) the keyboard is still on the
// controlling terminal, so reopen it directly.
func menuInput() (*os.File, func(), error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return os.Stdin, func() {}, nil
	}
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return nil, nil, fmt.Errorf("menu: cannot open terminal for input: %w", err)
	}
	return tty, func() { tty.Close() }, nil
}
