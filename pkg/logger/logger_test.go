package logger

import (
	"bytes"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: "trace", expected: "trace"},
		{in: "debug", expected: "debug"},
		{in: "warn", expected: "warn"},
		{in: "error", expected: "error"},
		{in: "fatal", expected: "fatal"},
		{in: "", expected: "info"},
		{in: "bogus", expected: "info"},
	}

	l := New(Options{Stdout: &bytes.Buffer{}})
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			l.SetLogLevel(tt.in)
			assert.Equal(t, tt.expected, l.GetLogLevel())
		})
	}
}

func TestLevels(t *testing.T) {
	var out bytes.Buffer
	l := New(Options{Level: "info", Stdout: &out})

	l.Debug("hidden")
	l.Trace("hidden too")
	l.Info("built", "nodes", 261)
	l.Error("load failed", errors.New("boom"))

	s := out.String()
	assert.NotContains(t, s, "hidden")
	assert.Contains(t, s, "level=INFO")
	assert.Contains(t, s, "nodes=261")
	assert.Contains(t, s, "error=boom")
}

func TestTraceLabel(t *testing.T) {
	var out bytes.Buffer
	l := New(Options{Level: "trace", Stdout: &out})

	l.Trace("descend")
	assert.Contains(t, out.String(), "level=TRACE")
}

func TestFatalExits(t *testing.T) {
	var out bytes.Buffer
	l := New(Options{Stdout: &out})

	code := -1
	l.exit = func(c int) { code = c }
	l.Fatal("cannot continue", nil)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "level=FATAL")
}

func TestFileHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "wordscan.log")
	l := New(Options{Stdout: &bytes.Buffer{}, File: path, MaxSizeMB: 1})

	l.Info("to file", "hits", 2)
	require.NoError(t, l.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"to file"`)
	assert.Contains(t, string(raw), `"hits":2`)
}

func TestPrefixedLogger(t *testing.T) {
	var out bytes.Buffer
	base := New(Options{Stdout: &out})

	l := Named(Named(base, "scan"), "files")
	l.Info("loaded")

	assert.Contains(t, out.String(), "[scan/files] loaded")
}
