package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/registry"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, registry.DefaultSource, cfg.Source)
	assert.Equal(t, 10, cfg.ScanWindow)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Positive(t, cfg.Parallelism)
}

func TestLoad_Precedence(t *testing.T) {
	t.Chdir(t.TempDir())
	file := writeFile(t, "langsplit.yaml", `
source: ENUS
scan_window: 5
sheet: Strings
log:
  level: debug
`)
	t.Setenv("LANGSPLIT_SCAN_WINDOW", "7")
	t.Setenv("LANGSPLIT_LOG_FORMAT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("source", "", "")
	flags.Int("scan-window", 0, "")
	require.NoError(t, flags.Parse([]string{"--source", "DEDE"}))

	cfg, err := Load(file, flags)
	require.NoError(t, err)
	assert.Equal(t, "DEDE", cfg.Source)
	assert.Equal(t, 7, cfg.ScanWindow)
	assert.Equal(t, "Strings", cfg.Sheet)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LANGSPLIT_SHEET=FromEnvFile\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("LANGSPLIT_SHEET") })

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "FromEnvFile", cfg.Sheet)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
}

func TestLoadRegistry(t *testing.T) {
	cfg := &Config{}
	reg, err := cfg.LoadRegistry()
	require.NoError(t, err)
	assert.Same(t, registry.Default(), reg)

	cfg.Registry = writeFile(t, "languages.yaml", `
languages:
  - code: ENGB
    name: English
  - code: XXYY
    name: Test
    aliases: [test-lang]
`)
	reg, err = cfg.LoadRegistry()
	require.NoError(t, err)
	code, ok := reg.Lookup("Test-Lang")
	require.True(t, ok)
	assert.Equal(t, "XXYY", code)
}

func TestOptions(t *testing.T) {
	cfg := &Config{Source: "ENUS", ScanWindow: 4, Sheet: "S", Parallelism: 2}
	opts := cfg.Options(registry.Default(), nil)
	assert.Equal(t, "ENUS", opts.Source)
	assert.Equal(t, 4, opts.ScanWindow)
	assert.Equal(t, "S", opts.Sheet)
	assert.Equal(t, 2, opts.Parallelism)
}
