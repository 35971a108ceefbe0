package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })
	return &buf
}

func TestLog_NoopWithoutSink(t *testing.T) {
	SetOutput(nil)
	require.NotPanics(t, func() {
		Debug(CatCatalog, "ignored", "k", "v")
		SetEnabled(false)
		SetMinLevel(LevelError)
	})
}

func TestLog_FormatsFields(t *testing.T) {
	buf := captureOutput(t)

	Info(CatCatalog, "work created", "title", "Fashion Forward", "count", 2)

	line := buf.String()
	require.Contains(t, line, "[INFO] [catalog] work created")
	require.Contains(t, line, "title=Fashion Forward")
	require.Contains(t, line, "count=2")
	require.True(t, line[len(line)-1] == '\n')
}

func TestLog_OrphanKey(t *testing.T) {
	buf := captureOutput(t)

	Warn(CatConfig, "odd", "lonely")

	require.Contains(t, buf.String(), "lonely=<missing>")
}

func TestLog_MinLevelFilters(t *testing.T) {
	buf := captureOutput(t)
	SetMinLevel(LevelWarn)

	Debug(CatCatalog, "dropped")
	Info(CatCatalog, "dropped too")
	ErrorErr(CatCatalog, "kept", nil)

	require.NotContains(t, buf.String(), "dropped")
	require.Contains(t, buf.String(), "[ERROR] [catalog] kept")
}

func TestLog_SetEnabled(t *testing.T) {
	buf := captureOutput(t)

	SetEnabled(false)
	Warn(CatCatalog, "hidden")
	SetEnabled(true)
	Warn(CatCatalog, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestLog_ErrorErr(t *testing.T) {
	buf := captureOutput(t)

	ErrorErr(CatConfig, "load failed", errors.New("boom"), "path", "x.yaml")
	ErrorErr(CatConfig, "nil error", nil)

	out := buf.String()
	require.Contains(t, out, "path=x.yaml error=boom")
	require.Contains(t, out, "error=<nil>")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "masthead.log")

	cleanup, err := Init(path)
	require.NoError(t, err)

	Debug(CatCatalog, "publication created", "name", "Vogue")
	cleanup()

	// After cleanup the sink is gone and logging is a no-op again.
	Debug(CatCatalog, "after close")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[DEBUG] [catalog] publication created name=Vogue")
	require.NotContains(t, string(data), "after close")
}

func TestInitWithTeaLog_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tea.log")

	cleanup, err := InitWithTeaLog(path, "masthead")
	require.NoError(t, err)

	Info(CatConfig, "loaded")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [config] loaded")
}

func TestInit_BadPath(t *testing.T) {
	_, err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	require.Error(t, err)
}
