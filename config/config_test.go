package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semtexzv/graphql-parser/config"
)

func TestNewDefaultsValidate(t *testing.T) {
	cfg := config.New()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "format", cfg.Output.Mode)
}

func TestValidateRejectsUnknownMode(t *testing.T) {
	cfg := *config.New()
	cfg.Output.Mode = "compress"
	assert.Error(t, cfg.Validate())
}

func TestSaveAsAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	cfg := config.New()
	cfg.Output.Mode = "minify"
	require.NoError(t, cfg.SaveAs("yaml"))

	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.Input, loaded.Input)
	assert.Equal(t, cfg.Output, loaded.Output)

	_, err = os.Stat(filepath.Join(dir, "gqlc.yaml"))
	require.NoError(t, err)
}
