package terminal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyWriter fails while fail is set, otherwise records
type flakyWriter struct {
	fail bool
	buf  bytes.Buffer
}

func (f *flakyWriter) Write(p []byte) (int, error) {
	if f.fail {
		return 0, errors.New("broken pipe")
	}
	return f.buf.Write(p)
}

func TestOutputSetCell(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		fg       RGB
		r        rune
		expected string
	}{
		{
			name:     "origin",
			x:        0,
			y:        0,
			fg:       RGB{0, 0, 0},
			r:        '═',
			expected: "\x1b[1;1H\x1b[38;2;0;0;0m═",
		},
		{
			name:     "corner with orange",
			x:        4,
			y:        2,
			fg:       RGB{255, 63, 0},
			r:        '╗',
			expected: "\x1b[3;5H\x1b[38;2;255;63;0m╗",
		},
		{
			name:     "wide column",
			x:        1233,
			y:        99,
			fg:       RGB{10, 200, 9},
			r:        '║',
			expected: "\x1b[100;1234H\x1b[38;2;10;200;9m║",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			out := NewOutput(&buf)
			out.SetCell(tt.x, tt.y, tt.fg, tt.r)
			assert.Zero(t, buf.Len(), "nothing written before flush")

			require.NoError(t, out.Flush())
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestOutputClear(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput(&buf)
	out.Clear()
	require.NoError(t, out.Flush())
	assert.Equal(t, "\x1b[2J", buf.String())
}

func TestOutputRecoversAfterWriteFailure(t *testing.T) {
	w := &flakyWriter{fail: true}
	out := NewOutput(w)

	out.SetCell(0, 0, RGBBlack, '═')
	assert.Error(t, out.Flush())

	w.fail = false
	out.SetCell(1, 0, RGBBlack, '═')
	require.NoError(t, out.Flush())
	assert.Equal(t, "\x1b[1;2H\x1b[38;2;0;0;0m═", w.buf.String(), "failed frame dropped, next frame delivered")
}
