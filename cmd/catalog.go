package cmd

import (
	"fmt"

	"github.com/hance08/caixa/internal/app"
	"github.com/hance08/caixa/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type catalogRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewCatalogCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"tags"},
		Short:   "List categories and tags",
		Long:    `Show the categories and tags available for tagging payments.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &catalogRunner{app: a, cmd: cmd}
			return runner.Run()
		},
	}
}

func (r *catalogRunner) Run() error {
	if err := r.app.Service.Config.CheckBackend(); err != nil {
		return err
	}

	spinner, _ := pterm.DefaultSpinner.Start("Loading categories...")
	cat, err := r.app.Service.Catalog.Load(r.cmd.Context())
	if err != nil {
		spinner.Fail("Could not load categories")
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	spinner.Stop()

	return views.RenderCatalog(cat)
}
