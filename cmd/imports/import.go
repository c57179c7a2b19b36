package imports

import (
	"errors"
	"fmt"

	"github.com/hance08/caixa/internal/app"
	"github.com/hance08/caixa/internal/session"
	"github.com/hance08/caixa/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type importFlags struct {
	Format string
	Resume bool
	Yes    bool
}

type importRunner struct {
	app   *app.App
	flags *importFlags
	cmd   *cobra.Command
}

func NewImportCmd(a *app.App) *cobra.Command {
	flags := &importFlags{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a file",
		Long: `Import transactions from a CSV, JSON or XLSX file.

Every row becomes a transaction. Rows that do not validate are marked in the
preview and can be edited or removed; the batch is only sent once everything
is valid. Progress is saved as a draft after every change.

Examples:
  # Format from the file extension
  caixa import extrato.csv

  # Explicit format, send right away when valid
  caixa import dump.txt --format json --yes

  # Continue an interrupted import
  caixa import --resume
  caixa import --resume 6f1c2e0a-...`,
		Args: func(cmd *cobra.Command, args []string) error {
			if flags.Resume {
				return cobra.MaximumNArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &importRunner{
				app:   a,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(args)
		},
	}

	cmd.Flags().StringVarP(&flags.Format, "format", "f", "", "File format: csv, json or xlsx (default: from extension)")
	cmd.Flags().BoolVarP(&flags.Resume, "resume", "r", false, "Resume a saved draft (by ID, or pick one)")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Submit without the interactive preview when the batch is valid")

	return cmd
}

func (r *importRunner) Run(args []string) error {
	ctx := r.cmd.Context()
	svc := r.app.Service

	if err := svc.Config.CheckBackend(); err != nil {
		pterm.Warning.Printf("Submitting will fail until this is fixed:\n%v\n", err)
	}

	var sess *session.Session
	if r.flags.Resume {
		id, err := r.draftID(args)
		if err != nil {
			return err
		}
		sess, err = svc.Import.Resume(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to resume draft: %w", err)
		}
		pterm.Info.Printf("Resumed draft %s (%s)\n", sess.ID(), sess.Source())
	} else {
		path := args[0]
		format, err := svc.Import.ResolveFormat(path, r.flags.Format)
		if err != nil {
			return err
		}

		sess = svc.Import.NewSession()
		spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Reading %s...", path))
		err = sess.Load(ctx, path, format)
		if err != nil {
			spinner.Fail("Could not read the file")
			return err
		}
		spinner.Success(fmt.Sprintf("%d transactions read", sess.Store().Len()))
	}

	return NewSessionRunner(r.app, sess).Run(ctx, r.flags.Yes)
}

func (r *importRunner) draftID(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	list, err := r.app.Service.Drafts.List()
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", errors.New("no saved drafts to resume")
	}
	return prompts.PromptDraft("Which import do you want to continue?", list)
}
