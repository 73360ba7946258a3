package log_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Alia5/vtouch/internal/log"
	"github.com/Alia5/vtouch/touch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	type testCase struct {
		in       string
		expected slog.Level
	}

	cases := []testCase{
		{in: "trace", expected: log.LevelTrace},
		{in: "debug", expected: slog.LevelDebug},
		{in: "", expected: slog.LevelInfo},
		{in: "info", expected: slog.LevelInfo},
		{in: "warn", expected: slog.LevelWarn},
		{in: "error", expected: slog.LevelError},
		{in: "loud", expected: slog.LevelInfo},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, log.ParseLevel(tc.in))
		})
	}
}

func TestTouchTrace(t *testing.T) {
	var buf bytes.Buffer
	tr := log.NewTouchTrace(&buf)
	tr.Trace(touch.PointerEvent{ID: 3, Kind: touch.Move, X: 10, Y: 20.5})
	tr.Trace(touch.PointerEvent{ID: 0, Kind: touch.Up, X: 1, Y: 2})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], " touch 3 move 10.0 20.5"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], " touch 0 up 1.0 2.0"), lines[1])
}

func TestNilWritersAreNoOps(t *testing.T) {
	assert.NotPanics(t, func() {
		log.NewTouchTrace(nil).Trace(touch.PointerEvent{})
		log.NewFrameDump(nil).Log(true, []byte{1})

		var tr *log.TouchTrace
		tr.Trace(touch.PointerEvent{})
		var fd *log.FrameDump
		fd.Log(false, []byte{1})
	})
}

func TestFrameDump(t *testing.T) {
	var buf bytes.Buffer
	d := log.NewFrameDump(&buf)
	d.Log(true, []byte{0x01, 0xab, 0xff})
	d.Log(false, nil)
	d.Log(false, []byte{0x10})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], " tx 3 bytes: 01 ab ff"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], " rx 1 bytes: 10"), lines[1])
}

func TestNewWithFiles(t *testing.T) {
	dir := t.TempDir()
	opts := log.Options{
		Level:     "debug",
		File:      filepath.Join(dir, "vtouch.log"),
		TraceFile: filepath.Join(dir, "touch.log"),
		FrameFile: filepath.Join(dir, "frames.log"),
	}
	s, err := log.New(opts)
	require.NoError(t, err)

	s.Logger.Debug("hello", "k", 1)
	s.Touch.Trace(touch.PointerEvent{ID: 1, Kind: touch.Down, X: 5, Y: 6})
	s.Frames.Log(true, []byte{0x42})
	require.NoError(t, s.Close())

	logData, err := os.ReadFile(opts.File)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "msg=hello")

	traceData, err := os.ReadFile(opts.TraceFile)
	require.NoError(t, err)
	assert.Contains(t, string(traceData), "touch 1 down 5.0 6.0")

	frameData, err := os.ReadFile(opts.FrameFile)
	require.NoError(t, err)
	assert.Contains(t, string(frameData), "tx 1 bytes: 42")
}

func TestNewBadPath(t *testing.T) {
	_, err := log.New(log.Options{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}
