// @focus: #sys { term }
// Package terminal provides direct ANSI terminal output for the pipe animation.
//
// Features:
//   - True color (24-bit) foreground sequences
//   - Buffered, allocation-free cell output with explicit flush
//   - Character grid size query (ioctl on Unix, x/term elsewhere)
//   - HSV hue rotation of RGB colors
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
