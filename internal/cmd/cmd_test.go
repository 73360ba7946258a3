package cmd_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/vtouch/internal/cmd"
	"github.com/Alia5/vtouch/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestConfigInitRun(t *testing.T) {
	type testCase struct {
		format string
		decode func([]byte, any) error
	}

	cases := []testCase{
		{format: "json", decode: json.Unmarshal},
		{format: "yaml", decode: yaml.Unmarshal},
		{format: "toml", decode: toml.Unmarshal},
	}

	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "sub", "run."+tc.format)
			c := cmd.ConfigInit{Command: "run", Format: tc.format, Output: dest}
			require.NoError(t, c.Run())

			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			var got map[string]any
			require.NoError(t, tc.decode(data, &got))

			assert.Contains(t, got, "layout")
			assert.Contains(t, got, "hud")
			assert.EqualValues(t, 960, got["width"])
			assert.Equal(t, true, got["mouse"])
			viiper, ok := got["viiper"].(map[string]any)
			require.True(t, ok, "viiper flags are nested")
			assert.Equal(t, "10ms", viiper["interval"])
			assert.Equal(t, "", viiper["addr"])
		})
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "layout.json")
	require.NoError(t, os.WriteFile(dest, []byte("{}"), 0o644))

	c := cmd.ConfigInit{Command: "layout", Format: "json", Output: dest}
	assert.Error(t, c.Run())

	c.Force = true
	require.NoError(t, c.Run())
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"format": "text"`)
	assert.NotContains(t, string(data), `"out"`, "fields hidden from kong stay out")
}

func TestConfigInitErrors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, (&cmd.ConfigInit{Command: "run", Format: "ini", Output: filepath.Join(dir, "a")}).Run())
	assert.Error(t, (&cmd.ConfigInit{Command: "server", Format: "json", Output: filepath.Join(dir, "b")}).Run())
}

func TestLayoutCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	var buf bytes.Buffer
	l := cmd.Layout{LayoutFile: path, Width: 800, Height: 480, Format: "json", Out: &buf}
	require.NoError(t, l.Run(quiet))

	var items []struct {
		Name string  `json:"name"`
		X    float64 `json:"x"`
		Y    float64 `json:"y"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &items))
	require.Len(t, items, 11)
	assert.Equal(t, "circle", items[0].Name)

	stored, err := layout.FileStore{Path: path}.Load()
	require.NoError(t, err)
	assert.NotEqual(t, layout.Unset, stored.DpadX, "defaults are persisted")
	assert.Equal(t, float64(stored.ActionButtonCenterX+stored.ActionButtonSpacing), items[0].X)
}

func TestLayoutCommandReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	store := layout.FileStore{Path: path}
	cfg := layout.DefaultConfig()
	cfg.ButtonOpacity = 40
	cfg.SelectKeyX, cfg.SelectKeyY = 1, 2
	require.NoError(t, store.Save(cfg))

	var buf bytes.Buffer
	l := cmd.Layout{LayoutFile: path, Width: 800, Height: 480, Format: "text", Out: &buf}
	require.NoError(t, l.Run(quiet))
	assert.Contains(t, buf.String(), "select")

	kept, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, kept.SelectKeyX)

	buf.Reset()
	l.Reset = true
	require.NoError(t, l.Run(quiet))
	reset, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 400, reset.SelectKeyX)
	assert.Equal(t, 40, reset.ButtonOpacity)
	assert.True(t, strings.HasPrefix(buf.String(), "CONTROL"))
}
