package cmd

import (
	"os"

	"github.com/hance08/caixa/internal/app"
	"github.com/hance08/caixa/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, API settings and user.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: a,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Service.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbExists := false
	if _, err := os.Stat(r.app.DBPath); err == nil {
		dbExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath: configPath,
		DBPath:     r.app.DBPath,
		DBExists:   dbExists,
		APIBaseURL: cfg.API.BaseURL,
		HasToken:   cfg.API.Token != "",
		UserID:     cfg.User.ID,
		UserName:   cfg.User.Name,
		LogLevel:   cfg.Log.Level,
		AppDataDir: getAppDataDirOrUnknown(),
	}

	if err := views.RenderSystemInfo(items); err != nil {
		return err
	}
	return nil
}

func getAppDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
