package logwriter

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestDisabled(t *testing.T) {
	defer func(c bool) { color.NoColor = c }(color.NoColor)
	var buf bytes.Buffer
	w := New(&buf, false, false)
	require.NoError(t, w.Create())
	defer w.Cleanup()
	require.Equal(t, io.Discard, w.Writer)
	require.True(t, color.NoColor)
	w.Logger("x: ").Println("dropped")
	require.Zero(t, buf.Len())
}

func TestWriter(t *testing.T) {
	defer func(c bool) { color.NoColor = c }(color.NoColor)
	color.NoColor = false
	var buf bytes.Buffer
	w := New(&buf, true, true)
	require.NoError(t, w.Create())
	defer w.Cleanup()
	require.False(t, color.NoColor)
	w.Logger("dining: ").Println("started")
	require.Contains(t, buf.String(), "dining: ")
	require.Contains(t, buf.String(), "started\n")
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dpp.log")
	w := NewFile(path, true, false)
	require.NoError(t, w.Create())
	w.Logger("dpp: ").Println("hello")
	w.Cleanup()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "dpp: ")
	require.Contains(t, string(b), "hello")
}

func TestFileError(t *testing.T) {
	w := NewFile(filepath.Join(t.TempDir(), "missing", "dpp.log"), true, false)
	err := w.Create()
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to create log file")
}

func TestStdout(t *testing.T) {
	w := NewFile("", true, false)
	require.NoError(t, w.Create())
	defer w.Cleanup()
	require.Equal(t, os.Stdout, w.Writer)
}

// Enabling colour keeps the terminal detection of fatih/color.
func TestColourKeepsDetection(t *testing.T) {
	defer func(c bool) { color.NoColor = c }(color.NoColor)
	color.NoColor = true
	w := New(io.Discard, true, true)
	require.NoError(t, w.Create())
	defer w.Cleanup()
	require.True(t, color.NoColor)
}
