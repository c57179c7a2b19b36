package config

import (
	"errors"
	"time"

	"github.com/hance08/caixa/internal/model"
)

type Config struct {
	API        APIConfig      `mapstructure:"api"`
	User       UserConfig     `mapstructure:"user"`
	Database   DatabaseConfig `mapstructure:"database"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type UserConfig struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		API:      APIConfig{BaseURL: "http://localhost:3000/api", Timeout: 30 * time.Second},
		Database: DatabaseConfig{Path: ""},
		Log:      LogConfig{Level: "warn"},
	}
}

// Identity is the user every imported transaction is attributed to.
func (c *Config) Identity() model.User {
	return model.User{ID: c.User.ID, Nome: c.User.Name}
}

// CheckBackend reports the settings missing to talk to the API.
func (c *Config) CheckBackend() error {
	var errs []error
	if c.API.BaseURL == "" {
		errs = append(errs, errors.New("api.base_url is not set"))
	}
	if c.API.Token == "" {
		errs = append(errs, errors.New("api.token is not set (config file or CAIXA_API_TOKEN)"))
	}
	if c.User.ID == "" {
		errs = append(errs, errors.New("user.id is not set"))
	}
	return errors.Join(errs...)
}
