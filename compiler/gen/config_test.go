package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	require := require.New(t)
	c := DefaultConfig()
	require.Equal("plotly", c.Package)
	require.Equal(79, c.Width)
	require.Greater(c.Workers, 0)
	require.Empty(c.Target)
}

func TestNewConfig(t *testing.T) {
	require := require.New(t)
	c, err := NewConfig(
		WithPackage("chart_studio"),
		WithWidth(100),
		WithTarget("out"),
		WithWorkers(2),
	)
	require.NoError(err)
	require.Equal("chart_studio", c.Package)
	require.Equal(100, c.Width)
	require.Equal("out", c.Target)
	require.Equal(2, c.Workers)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"empty package", WithPackage("")},
		{"narrow width", WithWidth(10)},
		{"empty target", WithTarget("")},
		{"zero workers", WithWorkers(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.opt)
			require.Error(t, err)
			require.True(t, IsConfigError(err))
			require.ErrorIs(t, err, ErrMissingConfig)
		})
	}
}

func TestConfigFromFile(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "plotlygen.yaml")
	require.NoError(os.WriteFile(path, []byte("package: chart_studio\nwidth: 99\ntarget: build/out\nworkers: 3\n"), 0o644))

	c, err := ConfigFromFile(path)
	require.NoError(err)
	require.Equal("chart_studio", c.Package)
	require.Equal(99, c.Width)
	require.Equal("build/out", c.Target)
	require.Equal(3, c.Workers)
}

func TestConfigFromFile_Defaults(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "plotlygen.yaml")
	require.NoError(os.WriteFile(path, []byte("target: out\n"), 0o644))

	c, err := ConfigFromFile(path)
	require.NoError(err)
	require.Equal("plotly", c.Package)
	require.Equal(79, c.Width)
	require.Greater(c.Workers, 0)
}

func TestConfigFromFile_Invalid(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	_, err := ConfigFromFile(filepath.Join(dir, "missing.yaml"))
	require.Error(err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(os.WriteFile(bad, []byte("width: {nope\n"), 0o644))
	_, err = ConfigFromFile(bad)
	require.Error(err)
	require.True(IsConfigError(err))

	narrow := filepath.Join(dir, "narrow.yaml")
	require.NoError(os.WriteFile(narrow, []byte("width: 5\n"), 0o644))
	_, err = ConfigFromFile(narrow)
	require.Error(err)
	require.True(IsConfigError(err))
}
