package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/caixa/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/data/caixa.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data/caixa.db"), got)

	got, err = ExpandPath("/tmp/caixa.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/caixa.db", got)

	got, err = ExpandPath("~other")
	require.NoError(t, err)
	assert.Equal(t, "~other", got)
}

func TestNewApp(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "nested", "caixa.db")
	cfg.User = config.UserConfig{ID: "u-42", Name: "Ana"}

	a, cleanup, err := NewApp(cfg, os.DirFS("../.."))
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, cfg.Database.Path, a.DBPath)
	assert.FileExists(t, a.DBPath)

	drafts, err := a.Service.Drafts.List()
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestNewApp_BadLogLevel(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Log.Level = "chatty"

	_, _, err := NewApp(cfg, os.DirFS("../.."))
	assert.Error(t, err)
}
