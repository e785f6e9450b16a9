package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mchmarny/shoreline/pkg/config"
	"github.com/mchmarny/shoreline/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	logging.SetDefaultCLILogger("error")
	os.Exit(m.Run())
}

// runApp executes the CLI against a throwaway config dir and returns stdout.
func runApp(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	var buf bytes.Buffer
	full := append([]string{config.AppName, "--config", dir, "--log-level", "error"}, args...)
	err := newApp(&buf).Run(t.Context(), full)
	return buf.String(), err
}

func TestInitAppCreatesConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	_, err := runApp(t, dir, "table")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "config.yaml"))
}

func TestRootSkipsConfig(t *testing.T) {
	for _, args := range [][]string{nil, {"--help"}, {"--version"}} {
		dir := filepath.Join(t.TempDir(), "unused")
		_, _ = runApp(t, dir, args...)
		assert.NoDirExists(t, dir, args)
	}
}

func TestInitAppErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"--format", "xml", "table"}},
		{"bad locale", []string{"--locale", "de", "table"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runApp(t, "", tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestInitAppBadProfile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Scoring.MaxScore = 0
	require.NoError(t, config.Save(dir, cfg))

	_, err := runApp(t, dir, "table")
	assert.Error(t, err)
}

func TestGetConfigNotInitialized(t *testing.T) {
	_, err := getConfig(context.Background())
	assert.ErrorIs(t, err, errNotInitialized)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", formatText, false},
		{"text", formatText, false},
		{"TXT", formatText, false},
		{"json", formatJSON, false},
		{" yaml ", formatYAML, false},
		{"yml", formatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode(t *testing.T) {
	v := map[string]int{"score": 11}

	var j bytes.Buffer
	require.NoError(t, encode(&j, formatJSON, v))
	assert.JSONEq(t, `{"score": 11}`, j.String())

	var y bytes.Buffer
	require.NoError(t, encode(&y, formatYAML, v))
	var got map[string]int
	require.NoError(t, yaml.Unmarshal(y.Bytes(), &got))
	assert.Equal(t, v, got)
	assert.True(t, strings.HasPrefix(y.String(), "score:"))
}
