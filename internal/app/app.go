package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hance08/caixa/internal/client"
	"github.com/hance08/caixa/internal/config"
	"github.com/hance08/caixa/internal/constants"
	"github.com/hance08/caixa/internal/logger"
	"github.com/hance08/caixa/internal/service"
	"github.com/hance08/caixa/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *log.Logger
	DBPath  string
}

// NewApp initialize config, database and core logic, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	lg, err := logger.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	dbPath, err := ResolveDBPath(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	api := client.New(client.Options{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.API.Timeout,
		Logger:  lg.WithPrefix("api"),
	})

	svc := service.NewService(dbStore, api, cfg, lg)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			lg.Error("closing database", "err", err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Logger:  lg,
		DBPath:  dbPath,
	}, cleanup, nil
}

// ResolveDBPath expands "~" and falls back to the app data directory.
func ResolveDBPath(raw string) (string, error) {
	if raw == "" {
		appDir, err := AppDataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(appDir, constants.DBFileName), nil
	}
	return ExpandPath(raw)
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if path[1] == '/' || path[1] == '\\' {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
