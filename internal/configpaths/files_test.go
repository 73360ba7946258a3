package configpaths_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Alia5/vtouch/internal/configpaths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG layout only")
	}
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir, err := configpaths.DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "vtouch"), dir)

	type testCase struct {
		format   string
		expected string
	}
	cases := []testCase{
		{format: "json", expected: "config.json"},
		{format: "yml", expected: "config.yaml"},
		{format: "toml", expected: "config.toml"},
		{format: "", expected: "config.json"},
	}
	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			p, err := configpaths.DefaultConfigPath(tc.format)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tc.expected), p)
		})
	}

	layout, err := configpaths.DefaultLayoutPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "layout.toml"), layout)
}

func TestConfigCandidatePathsUserFirst(t *testing.T) {
	type testCase struct {
		name string
		path string
		pick func(j, y, tm []string) []string
	}

	cases := []testCase{
		{name: "json", path: "/tmp/a.json", pick: func(j, _, _ []string) []string { return j }},
		{name: "yaml", path: "/tmp/a.yml", pick: func(_, y, _ []string) []string { return y }},
		{name: "toml", path: "/tmp/a.toml", pick: func(_, _, tm []string) []string { return tm }},
		{name: "unknown goes to json", path: "/tmp/a.conf", pick: func(j, _, _ []string) []string { return j }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j, y, tm := configpaths.ConfigCandidatePaths(tc.path)
			got := tc.pick(j, y, tm)
			require.NotEmpty(t, got)
			assert.Equal(t, tc.path, got[0])
		})
	}
}
