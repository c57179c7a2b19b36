package views

import (
	"fmt"
	"strings"

	"github.com/hance08/caixa/internal/client"
	"github.com/hance08/caixa/internal/model"
	"github.com/hance08/caixa/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// RenderBatchSummary prints totals per type before a submit.
func RenderBatchSummary(txs []model.Transaction) error {
	pterm.DefaultSection.Println("Batch Summary")

	var expenses, receivables int
	totalOut, totalIn := decimal.Zero, decimal.Zero
	for _, tx := range txs {
		switch tx.Tipo {
		case model.TypeExpense:
			expenses++
			totalOut = totalOut.Add(tx.Valor)
		case model.TypeReceivable:
			receivables++
			totalIn = totalIn.Add(tx.Valor)
		}
	}

	tableData := pterm.TableData{
		{"Type", "Count", "Total"},
		{model.TypeExpense.Label(), fmt.Sprint(expenses), pterm.Red(utils.FormatMoney(totalOut))},
		{model.TypeReceivable.Label(), fmt.Sprint(receivables), pterm.Green(utils.FormatMoney(totalIn))},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func RenderSubmitResult(res client.BulkResult, count int) {
	msg := res.Message
	if strings.TrimSpace(msg) == "" {
		msg = fmt.Sprintf("%d transactions imported", count)
	}
	pterm.Success.Println(msg)
	if len(res.IDs) > 0 {
		pterm.Info.Printf("Created IDs: %s\n", strings.Join(res.IDs, ", "))
	}
}
