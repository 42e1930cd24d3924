//go:build !unix

package terminal

import "golang.org/x/term"

// getTerminalSize returns the terminal size for a given fd
func getTerminalSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}
