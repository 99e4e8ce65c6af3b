package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := defaultConfig()
	err := applyEnv(&cfg, lookupMap(map[string]string{
		"KHMER_INPUT":          "corpus.txt.zst",
		"KHMER_MODE":           "words",
		"KHMER_LIMIT":          "10",
		"KHMER_MODIFIER_SLOTS": "2",
		"KHMER_PASS_ORPHANS":   "true",
		"KHMER_SEED":           "99",
	}))
	require.NoError(t, err)
	assert.Equal(t, "corpus.txt.zst", cfg.Input)
	assert.Equal(t, modeWords, cfg.Mode)
	assert.Equal(t, 10, cfg.Limit)
	assert.Equal(t, 2, cfg.ModifierSlots)
	assert.True(t, cfg.PassOrphans)
	assert.False(t, cfg.Clean)
	assert.Equal(t, int64(99), cfg.Seed)
}

func TestApplyEnvNamesBadKey(t *testing.T) {
	cfg := defaultConfig()
	err := applyEnv(&cfg, lookupMap(map[string]string{"KHMER_THREADS": "many"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KHMER_THREADS")

	err = applyEnv(&cfg, lookupMap(map[string]string{"KHMER_NFC": "sometimes"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KHMER_NFC")
}

func TestFlagsOverrideEnv(t *testing.T) {
	cfg := defaultConfig()
	cfg.Input = "from-env.txt"
	cfg.Mode = modeMerge

	cfg, err := parseFlags([]string{"-i", "from-flag.txt", "--threads", "3", "-clean"}, cfg, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "from-flag.txt", cfg.Input)
	assert.Equal(t, modeMerge, cfg.Mode)
	assert.Equal(t, 3, cfg.Threads)
	assert.True(t, cfg.Clean)
}

func TestValidate(t *testing.T) {
	_, err := parseFlags([]string{"-mode", "shuffle", "-input", "x"}, defaultConfig(), io.Discard)
	assert.ErrorIs(t, err, errUnknownMode)

	_, err = parseFlags(nil, defaultConfig(), io.Discard)
	assert.ErrorIs(t, err, errNoInput)

	cfg, err := parseFlags([]string{"-generate", "5"}, defaultConfig(), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Generate)

	_, err = parseFlags([]string{"-input", "x", "-limit", "-1"}, defaultConfig(), io.Discard)
	assert.Error(t, err)
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "khmer.env")
	require.NoError(t, os.WriteFile(envFile, []byte("KHMER_INPUT=lines.txt\nKHMER_MODE=merge\n"), 0o644))

	t.Setenv("KHMER_ENV_FILE", envFile)
	// godotenv never overrides variables that are already set
	t.Setenv("KHMER_MODE", "words")
	t.Cleanup(func() { os.Unsetenv("KHMER_INPUT") })

	cfg, err := loadConfig(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "lines.txt", cfg.Input)
	assert.Equal(t, modeWords, cfg.Mode)
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
	assert.NoError(t, loadDotEnv(""))
}
