package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pipes/pipe"
	"github.com/lixenwraith/pipes/terminal"
)

func TestRunFailsWithoutTerminal(t *testing.T) {
	t.Chdir(t.TempDir())

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	var out bytes.Buffer
	err = run(context.Background(), pipe.DefaultConfig(), &out, []int{int(f.Fd())})
	assert.ErrorIs(t, err, terminal.ErrNoSize)
	assert.Zero(t, out.Len(), "nothing drawn when the grid is unknown")
}

func TestRunFailsWithNoDescriptors(t *testing.T) {
	t.Chdir(t.TempDir())

	err := run(context.Background(), pipe.DefaultConfig(), &bytes.Buffer{}, nil)
	assert.ErrorIs(t, err, terminal.ErrNoSize)
}

func TestRootCommandShape(t *testing.T) {
	assert.True(t, rootCmd.DisableFlagParsing)
	assert.NoError(t, rootCmd.Args(rootCmd, []string{"10", "extra"}))
}
