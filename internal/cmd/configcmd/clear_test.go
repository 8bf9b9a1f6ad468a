package configcmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/hfspace-cli/internal/config"
)

func TestRunClear_RemovesConfigFile(t *testing.T) {
	clearEnv(t)
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configPath := filepath.Join(tmpDir, "hfs", "config.yml")
	cfg := &config.Config{Token: "hf_test"}
	require.NoError(t, cfg.Save(configPath))

	err := runClear(true)
	require.NoError(t, err)

	_, statErr := os.Stat(configPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunClear_NoConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	err := runClear(true)
	require.NoError(t, err)
}
