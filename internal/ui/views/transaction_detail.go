package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hance08/caixa/internal/constants"
	"github.com/hance08/caixa/internal/ingest"
	"github.com/hance08/caixa/internal/model"
	"github.com/hance08/caixa/internal/ui"
	"github.com/hance08/caixa/internal/utils"
	"github.com/pterm/pterm"
)

// TagNamer resolves a tag ID for display.
type TagNamer func(id string) string

func RenderTransactionDetail(tx model.Transaction, errs []string, names TagNamer) error {
	pterm.Println()
	ui.PrintL2Title("Transaction Info")
	infoData := pterm.TableData{
		{"Field", "Value"},
		{"Identifier", tx.Identificador},
		{"Type", tx.Tipo.Label()},
		{"Date", DisplayDate(tx.Data)},
		{"Description", tx.Descricao},
		{"Amount", utils.FormatMoney(tx.Valor)},
	}
	if tx.Observacao != "" {
		infoData = append(infoData, []string{"Note", tx.Observacao})
	}
	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Payments")
	paymentsData := pterm.TableData{
		{"#", "Person", "Amount", "Tags"},
	}
	for i, p := range tx.Pagamentos {
		paymentsData = append(paymentsData, []string{
			fmt.Sprintf("%d", i+1),
			p.Pessoa,
			utils.FormatMoney(p.Valor),
			FormatTags(p.Tags, names),
		})
	}
	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(paymentsData).
		Render(); err != nil {
		return err
	}

	if !ingest.PaymentsBalance(tx) {
		diff := tx.Valor.Sub(ingest.SumPayments(tx.Pagamentos))
		pterm.Warning.Printf("Payments differ from the amount by %s\n", utils.FormatMoney(diff))
	}

	if len(errs) > 0 {
		pterm.Println()
		ui.PrintL2Title("Problems")
		for _, e := range errs {
			pterm.Error.Println(e)
		}
	}
	return nil
}

// FormatTags renders "Category: a, b; Other: c" with categories sorted.
func FormatTags(tags map[string][]string, names TagNamer) string {
	if len(tags) == 0 {
		return "-"
	}
	cats := make([]string, 0, len(tags))
	for c := range tags {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	parts := make([]string, 0, len(cats))
	for _, c := range cats {
		ids := tags[c]
		labels := make([]string, len(ids))
		for i, id := range ids {
			labels[i] = id
			if names != nil {
				labels[i] = names(id)
			}
		}
		parts = append(parts, c+": "+strings.Join(labels, ", "))
	}
	return strings.Join(parts, "; ")
}

// DisplayDate shortens a stored timestamp to a plain date.
func DisplayDate(iso string) string {
	t, ok := ingest.ParseDate(iso)
	if !ok {
		return iso
	}
	return t.Format(constants.DateFormat)
}
