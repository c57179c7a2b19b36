package cmd

import (
	"fmt"
	"time"

	"github.com/hance08/caixa/cmd/imports"
	"github.com/hance08/caixa/internal/app"
	"github.com/hance08/caixa/internal/model"
	"github.com/hance08/caixa/internal/reader"
	"github.com/hance08/caixa/internal/ui/prompts"
	"github.com/spf13/cobra"
)

type newFlags struct {
	Type   string
	Desc   string
	Amount string
	Date   string
	Note   string
	Person string
	Yes    bool
}

type newRunner struct {
	app   *app.App
	flags *newFlags
	cmd   *cobra.Command
}

func NewNewCmd(a *app.App) *cobra.Command {
	flags := &newFlags{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Type transactions by hand",
		Long: `Enter one or more transactions by hand and send them as a batch.

Examples:
  # Interactive mode
  caixa new

  # Quick mode with flags
  caixa new --desc "Mercado" --amount 150,90 --type gasto --date y --yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &newRunner{
				app:   a,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", string(model.TypeExpense), "Transaction type: gasto or recebivel")
	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "Transaction description")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Transaction amount (e.g., 150 or 150,50)")
	cmd.Flags().StringVar(&flags.Date, "date", "", "Transaction date (YYYY-MM-DD, t or y), default is today")
	cmd.Flags().StringVarP(&flags.Note, "note", "n", "", "Optional note")
	cmd.Flags().StringVarP(&flags.Person, "person", "p", "", "Who paid, default is you")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Submit without the interactive preview when valid")

	return cmd
}

func (r *newRunner) Run() error {
	var records reader.Records
	var err error

	// Check if using flag mode or interactive mode
	hasFlags := r.cmd.Flags().Changed("desc") || r.cmd.Flags().Changed("amount")

	if hasFlags {
		records, err = r.flagsMode()
	} else {
		records, err = r.interactiveMode()
	}
	if err != nil {
		return err
	}

	sess := r.app.Service.Import.NewSession()
	if err := sess.LoadInput(records, reader.FormatManual, "manual entry"); err != nil {
		return err
	}

	return imports.NewSessionRunner(r.app, sess).Run(r.cmd.Context(), r.flags.Yes)
}

func (r *newRunner) flagsMode() (reader.Records, error) {
	tipo := model.TransactionType(r.flags.Type)
	if !tipo.Valid() {
		return nil, fmt.Errorf("invalid type %q: must be %q or %q", r.flags.Type, model.TypeExpense, model.TypeReceivable)
	}
	if r.flags.Desc == "" || r.flags.Amount == "" {
		return nil, fmt.Errorf("--desc and --amount are required in quick mode")
	}

	rec := prompts.ManualRecord(tipo, r.flags.Desc, r.flags.Amount, r.flags.Date, r.flags.Note, r.flags.Person, time.Now())
	return reader.Records{rec}, nil
}

func (r *newRunner) interactiveMode() (reader.Records, error) {
	var records reader.Records
	person := r.app.Service.Config.User.Name

	for {
		rec, err := prompts.PromptManualTransaction(person)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)

		more, err := prompts.PromptConfirm(fmt.Sprintf("%d added. Add another?", len(records)), false)
		if err != nil {
			return nil, err
		}
		if !more {
			return records, nil
		}
	}
}
