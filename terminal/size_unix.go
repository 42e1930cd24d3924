//go:build unix

package terminal

import "golang.org/x/sys/unix"

// getTerminalSize returns the terminal size for a given fd
func getTerminalSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
