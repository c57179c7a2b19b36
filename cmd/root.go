package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hance08/caixa/cmd/drafts"
	"github.com/hance08/caixa/cmd/imports"
	"github.com/hance08/caixa/internal/app"
	"github.com/hance08/caixa/internal/config"
	"github.com/hance08/caixa/internal/constants"
	"github.com/hance08/caixa/internal/errhandler"
	"github.com/hance08/caixa/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// Filled in by PersistentPreRunE, once flags are parsed.
	application := &app.App{}
	cleanup := func() {}

	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "caixa imports bank statements and spreadsheets as transactions",
		Long: `caixa reads CSV, JSON or XLSX files, turns every row into a transaction,
lets you fix what does not validate, and sends the whole batch in one request.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			if err := initIdentity(); err != nil {
				return err
			}

			loaded, done, err := app.NewApp(cfg, migrations)
			if err != nil {
				return err
			}
			*application = *loaded
			cleanup = done
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(imports.NewImportCmd(application))
	rootCmd.AddCommand(drafts.NewDraftsCmd(application))

	rootCmd.AddCommand(NewCheckCmd(application))
	rootCmd.AddCommand(NewNewCmd(application))
	rootCmd.AddCommand(NewCatalogCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))

	err := rootCmd.Execute()
	cleanup()
	if err != nil {
		if errhandler.IsCancel(err) {
			errhandler.HandleError(err)
		}
		errMsg := err.Error()
		displayMsg := capitalize(errMsg)

		pterm.Error.Println(displayMsg)
		os.Exit(1)
	}
}

// initIdentity runs the first run wizard when no user is configured.
func initIdentity() error {
	if viper.GetString("user.id") != "" {
		return nil
	}

	answers, err := prompts.PromptInitIdentity(prompts.Identity{
		UserName: viper.GetString("user.name"),
		BaseURL:  viper.GetString("api.base_url"),
		Token:    viper.GetString("api.token"),
	})
	if err != nil {
		return err
	}

	viper.Set("user.id", answers.UserID)
	viper.Set("user.name", answers.UserName)
	viper.Set("api.base_url", answers.BaseURL)
	viper.Set("api.token", answers.Token)

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	cfg.User = config.UserConfig{ID: answers.UserID, Name: answers.UserName}
	cfg.API.BaseURL = answers.BaseURL
	cfg.API.Token = answers.Token

	pterm.Success.Printf("Configuration saved. Importing as %s\n", answers.UserName)
	return nil
}

func initConfig() error {
	defaults := config.NewDefault()
	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.timeout", defaults.API.Timeout)
	viper.SetDefault("log.level", defaults.Log.Level)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName(constants.ConfigName)
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = defaults
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, constants.ConfigName+".yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
