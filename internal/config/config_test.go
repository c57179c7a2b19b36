package config

import (
	"testing"

	"github.com/hance08/caixa/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Identity(t *testing.T) {
	cfg := NewDefault()
	cfg.User = UserConfig{ID: "u-42", Name: "Ana"}

	assert.Equal(t, model.User{ID: "u-42", Nome: "Ana"}, cfg.Identity())
}

func TestConfig_CheckBackend(t *testing.T) {
	cfg := NewDefault()

	err := cfg.CheckBackend()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.token")
	assert.Contains(t, err.Error(), "user.id")
	assert.NotContains(t, err.Error(), "api.base_url")

	cfg.API.Token = "secret"
	cfg.User.ID = "u-42"
	assert.NoError(t, cfg.CheckBackend())
}
