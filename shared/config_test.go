package shared

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromJsonc(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.jsonc")
	content := `{
		// Comments and trailing commas are fine in JSONC.
		"log_file": "feedcraft.log",
		"log_level": "Debug",
	}`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	t.Setenv("CONFIG", cfgPath)

	cfg := LoadConfig()
	assert.Equal(t, "feedcraft.log", cfg.LogFile)
	assert.Equal(t, "Debug", cfg.LogLevel)
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	t.Setenv("CONFIG", "")

	cfg := LoadConfig()
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, "Warn", cfg.LogLevel)
}
