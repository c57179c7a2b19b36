package drafts

import (
	"github.com/hance08/caixa/internal/app"
	"github.com/hance08/caixa/internal/ui/views"
	"github.com/spf13/cobra"
)

type listRunner struct {
	app *app.App
}

func NewListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved imports",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{app: a}
			return runner.Run()
		},
	}
}

func (r *listRunner) Run() error {
	list, err := r.app.Service.Drafts.List()
	if err != nil {
		return err
	}
	return views.RenderDraftList(list)
}
