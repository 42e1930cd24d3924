// @lixen: #focus{sys[term,io,output]}
// @lixen: #interact{trigger[output,ansi]}
package terminal

import (
	"bufio"
	"io"
)

// Output writes positioned, colored cells as raw ANSI sequences
// Writes are buffered until Flush; nothing but the requested sequences reaches the writer
type Output struct {
	dst    io.Writer
	writer *bufio.Writer
}

// NewOutput creates an output over w
func NewOutput(w io.Writer) *Output {
	return &Output{
		dst:    w,
		writer: bufio.NewWriterSize(w, 4096),
	}
}

// Clear queues a full-screen erase
func (o *Output) Clear() {
	o.writer.Write(csiClearScreen)
}

// SetCell queues cursor placement, a truecolor foreground and one glyph (0-indexed x, y)
func (o *Output) SetCell(x, y int, fg RGB, r rune) {
	writeCursorPos(o.writer, x, y)
	writeFgRGB(o.writer, fg)
	o.writer.WriteRune(r)
}

// Flush writes queued bytes to the underlying writer
// On failure the pending bytes are dropped and the writer is reset so that later frames are attempted again
func (o *Output) Flush() error {
	if err := o.writer.Flush(); err != nil {
		o.writer.Reset(o.dst)
		return err
	}
	return nil
}
