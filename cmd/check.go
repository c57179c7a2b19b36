package cmd

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/hance08/caixa/internal/app"
	"github.com/hance08/caixa/internal/ui/views"
	"github.com/spf13/cobra"
)

var errCheckFailed = errors.New("the file has invalid transactions")

type checkFlags struct {
	Format string
	JSON   bool
}

type checkRunner struct {
	app   *app.App
	flags *checkFlags
	cmd   *cobra.Command
}

func NewCheckCmd(a *app.App) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a file without importing it",
		Long: `Read, normalize and validate a file, then print the validation report.
Exits with a non-zero status when any transaction is invalid.

Examples:
  caixa check extrato.csv
  caixa check dump.txt --format json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &checkRunner{
				app:   a,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.Format, "format", "f", "", "File format: csv, json or xlsx (default: from extension)")
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the report as JSON")

	return cmd
}

func (r *checkRunner) Run(path string) error {
	svc := r.app.Service.Import

	format, err := svc.ResolveFormat(path, r.flags.Format)
	if err != nil {
		return err
	}

	res, err := svc.Check(r.cmd.Context(), path, format)
	if err != nil {
		return err
	}

	if r.flags.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Report); err != nil {
			return err
		}
	} else {
		views.RenderReport(res.Report, len(res.Transactions))
	}

	if !res.Report.Valido {
		return errCheckFailed
	}
	return nil
}
