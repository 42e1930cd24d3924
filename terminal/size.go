package terminal

import (
	"errors"
	"fmt"

	"golang.org/x/term"
)

// ErrNoSize reports that no terminal dimensions could be obtained
var ErrNoSize = errors.New("terminal size unavailable")

// Size returns the character grid dimensions of the first descriptor that is a terminal
// Descriptors are tried in order; non-terminals and zero-sized windows are skipped
func Size(fds ...int) (width, height int, err error) {
	var lastErr error
	for _, fd := range fds {
		if !term.IsTerminal(fd) {
			lastErr = fmt.Errorf("fd %d is not a terminal", fd)
			continue
		}

		w, h, err := getTerminalSize(fd)
		if err != nil {
			lastErr = fmt.Errorf("fd %d: %w", fd, err)
			continue
		}
		if w <= 0 || h <= 0 {
			lastErr = fmt.Errorf("fd %d: empty window %dx%d", fd, w, h)
			continue
		}
		return w, h, nil
	}

	if lastErr == nil {
		return 0, 0, ErrNoSize
	}
	return 0, 0, fmt.Errorf("%w: %w", ErrNoSize, lastErr)
}
