package views

import (
	"fmt"

	"github.com/hance08/caixa/internal/constants"
	"github.com/hance08/caixa/internal/model"
	"github.com/hance08/caixa/internal/staging"
	"github.com/hance08/caixa/internal/ui"
	"github.com/hance08/caixa/internal/utils"
	"github.com/pterm/pterm"
)

type StagedListView struct{}

func NewStagedListView() *StagedListView {
	return &StagedListView{}
}

// Render prints every staged item with its validation status.
func (v *StagedListView) Render(store *staging.Store, source string) error {
	if store.Len() == 0 {
		pterm.Warning.Println("No transactions staged")
		return nil
	}

	ui.PrintL1Title("Preview of %s", source)

	tableData := pterm.TableData{
		{"#", "Status", "Date", "Type", "Description", "Amount", "Payments"},
	}

	for i, tx := range store.Items() {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", i+1),
			statusCell(store, i),
			DisplayDate(tx.Data),
			typeCell(tx.Tipo),
			utils.Truncate(tx.Descricao, constants.MaxDescriptionWidth),
			amountCell(tx),
			fmt.Sprintf("%d", len(tx.Pagamentos)),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	report := store.Report()
	if report.Valido {
		pterm.Success.Printf("Total: %d transactions, all valid\n", store.Len())
	} else {
		pterm.Warning.Printf("Total: %d transactions, %d with errors\n", store.Len(), len(report.Erros))
	}
	return nil
}

func statusCell(store *staging.Store, i int) string {
	if errs := store.ErrorsFor(i); len(errs) > 0 {
		return pterm.Red(fmt.Sprintf("✗ %d", len(errs)))
	}
	if store.Saved(i) {
		return pterm.Blue("✓ edited")
	}
	return pterm.Green("✓")
}

func typeCell(t model.TransactionType) string {
	switch t {
	case model.TypeExpense:
		return pterm.Red(t.Label())
	case model.TypeReceivable:
		return pterm.Green(t.Label())
	default:
		return pterm.Yellow(string(t))
	}
}

func amountCell(tx model.Transaction) string {
	amount := utils.FormatMoney(tx.Valor)
	switch tx.Tipo {
	case model.TypeExpense:
		return pterm.Red(amount)
	case model.TypeReceivable:
		return pterm.Green(amount)
	default:
		return amount
	}
}
