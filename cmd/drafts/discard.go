package drafts

import (
	"errors"

	"github.com/hance08/caixa/internal/app"
	"github.com/hance08/caixa/internal/ui"
	"github.com/hance08/caixa/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type discardRunner struct {
	app   *app.App
	force bool
}

func NewDiscardCmd(a *app.App) *cobra.Command {
	runner := &discardRunner{app: a}

	cmd := &cobra.Command{
		Use:     "discard [draft-id]",
		Aliases: []string{"rm"},
		Short:   "Delete a saved import",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(args)
		},
	}

	cmd.Flags().BoolVarP(&runner.force, "force", "f", false, "Skip the confirmation")

	return cmd
}

func (r *discardRunner) Run(args []string) error {
	svc := r.app.Service.Drafts

	var id string
	if len(args) == 1 {
		id = args[0]
	} else {
		list, err := svc.List()
		if err != nil {
			return err
		}
		if len(list) == 0 {
			return errors.New("no saved drafts")
		}
		id, err = prompts.PromptDraft("Which draft do you want to discard?", list)
		if err != nil {
			return err
		}
	}

	if !r.force {
		confirm, err := prompts.PromptConfirm("Discard draft "+id+"? This cannot be undone", false)
		if err != nil {
			return err
		}
		if !confirm {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := svc.Discard(id); err != nil {
		return err
	}

	pterm.Success.Printf("Draft %s discarded\n", id)
	ui.Separator()
	return nil
}
