package drafts

import (
	"github.com/hance08/caixa/internal/app"
	"github.com/spf13/cobra"
)

func NewDraftsCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "drafts",
		Aliases: []string{"draft"},
		Short:   "Manage saved imports",
		Long:    `List or discard imports that were left unfinished.`,
	}

	cmd.AddCommand(NewListCmd(a))
	cmd.AddCommand(NewDiscardCmd(a))

	return cmd
}
