package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oxide/internal/parser"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, parser.DefaultMaxDepth, cfg.Parser.MaxDepth)
	assert.Equal(t, ">> ", cfg.REPL.Prompt)
	assert.True(t, cfg.ColorEnabled())
	assert.Equal(t, 0, cfg.Log.Verbosity)
	assert.Nil(t, cfg.LogFile())
	assert.Len(t, cfg.ParserOptions(), 1)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "oxide.toml", `
[parser]
max_depth = 64

[repl]
prompt = "oxide> "

[output]
color = false

[log]
verbosity = 2
file = "/tmp/oxide.log"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.Parser.MaxDepth)
	assert.Equal(t, "oxide> ", cfg.REPL.Prompt)
	assert.False(t, cfg.ColorEnabled())
	assert.Equal(t, 2, cfg.Log.Verbosity)
	require.NotNil(t, cfg.LogFile())
	assert.Equal(t, "/tmp/oxide.log", *cfg.LogFile())
}

func TestLoadYAMLAppliesDefaults(t *testing.T) {
	path := writeFile(t, "oxide.yaml", "parser:\n  max_depth: 32\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.Parser.MaxDepth)
	assert.Equal(t, ">> ", cfg.REPL.Prompt)
	assert.True(t, cfg.ColorEnabled())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "config file not found")

	_, err = Load(writeFile(t, "oxide.json", "{}"))
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = Load(writeFile(t, "bad.toml", "[parser\n"))
	assert.ErrorContains(t, err, "failed to parse config")

	_, err = Load(writeFile(t, "neg.yaml", "parser:\n  max_depth: -1\n"))
	assert.ErrorContains(t, err, "parser.max_depth must not be negative")
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "custom.toml", "[repl]\nprompt = \"$ \"\n")
	t.Setenv(EnvVar, path)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "$ ", cfg.REPL.Prompt)
}

func TestLoadFromEnvMissingFile(t *testing.T) {
	t.Setenv(EnvVar, filepath.Join(t.TempDir(), "nope.toml"))

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestLoadFromEnvFallsBackToDefault(t *testing.T) {
	t.Setenv(EnvVar, "")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
