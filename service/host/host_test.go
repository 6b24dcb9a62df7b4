package host

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slicer-runner/config"
)

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "load.py")
	require.NoError(t, os.WriteFile(path, []byte("print('hi')\n"), 0644))

	e, err := OpenFile(path)
	require.NoError(t, err)
	text, ok := e.ActiveText()
	assert.True(t, ok)
	assert.Equal(t, "print('hi')\n", text)
	assert.Equal(t, "python", e.LanguageID())
}

func TestOpenFileHasNoSizeCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.py")
	script := bytes.Repeat([]byte("#"), config.MaxScriptSize+512*1024)
	require.NoError(t, os.WriteFile(path, script, 0644))

	e, err := OpenFile(path)
	require.NoError(t, err)
	text, ok := e.ActiveText()
	assert.True(t, ok)
	assert.Len(t, text, len(script))
}

func TestOpenFileMissing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "nope.py"))
	assert.Error(t, err)
}

func TestOpenStdinPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString("slicer.util.getNode('MRHead')")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	defer r.Close()

	e, err := OpenStdin(r)
	require.NoError(t, err)
	text, ok := e.ActiveText()
	assert.True(t, ok)
	assert.Equal(t, "slicer.util.getNode('MRHead')", text)
}

func TestNoEditor(t *testing.T) {
	_, ok := NoEditor().ActiveText()
	assert.False(t, ok)
}

func TestLanguageFor(t *testing.T) {
	assert.Equal(t, "python", LanguageFor("example.py"))
	assert.Equal(t, "python", LanguageFor("EXAMPLE.PY"))
	assert.Equal(t, "shell", LanguageFor("run.sh"))
	assert.Equal(t, "plaintext", LanguageFor("Makefile"))
	assert.Equal(t, "plaintext", LanguageFor("scene.nrrd"))
}

func TestTerminalNotifier(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	n := NewTerminalNotifier(&buf)
	n.Info("a")
	n.Warn("b")
	n.Error("c")
	assert.Equal(t, "[info] a\n[warning] b\n[error] c\n", buf.String())
}

func TestTerminalProgress(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	ran := false
	NewTerminalProgress(&buf).Run("Sending", false, func() { ran = true })
	assert.True(t, ran)
	assert.Equal(t, "Sending (not cancellable)\n", buf.String())
}

func TestOutputChannel(t *testing.T) {
	var buf bytes.Buffer
	d := NewTerminalDisplay(&buf)
	assert.Empty(t, d.Channels())

	ch := d.OutputChannel("Slicer Response")
	assert.Same(t, ch, d.OutputChannel("Slicer Response"))

	ch.AppendLine("OK")
	ch.Show()
	ch.Show()
	assert.Equal(t, "--- Slicer Response ---\nOK\n", buf.String())

	ch.AppendLine("second")
	ch.Show()
	assert.Equal(t, "--- Slicer Response ---\nOK\n--- Slicer Response ---\nsecond\n", buf.String())
	assert.Equal(t, []string{"OK", "second"}, ch.(*terminalChannel).Lines())
	assert.Equal(t, []string{"Slicer Response"}, d.Channels())
}

func TestOutputChannelConcurrentWriters(t *testing.T) {
	var buf bytes.Buffer
	d := NewTerminalDisplay(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch := d.OutputChannel("Slicer Response")
			ch.AppendLine("line")
			ch.Show()
		}()
	}
	wg.Wait()

	assert.Len(t, d.OutputChannel("Slicer Response").(*terminalChannel).Lines(), 20)
	assert.Equal(t, 20, strings.Count(buf.String(), "line\n"))
}

func TestOutputChannelAppendAndShowIsAtomic(t *testing.T) {
	var buf bytes.Buffer
	d := NewTerminalDisplay(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.OutputChannel("Slicer Response").AppendAndShow("line")
		}()
	}
	wg.Wait()

	// Every show prints exactly the line its writer appended.
	assert.Equal(t, strings.Repeat("--- Slicer Response ---\nline\n", 20), buf.String())
}
