package views

import (
	"github.com/hance08/caixa/internal/model"
	"github.com/hance08/caixa/internal/ui"
	"github.com/pterm/pterm"
)

// RenderReport prints a validation report, one block per failing item.
func RenderReport(report model.Report, total int) {
	if report.Valido {
		pterm.Success.Printf("%d transactions checked, no problems found\n", total)
		return
	}

	for _, msg := range report.Geral {
		pterm.Error.Println(msg)
	}

	for _, entry := range report.Erros {
		ui.PrintL2Title("Item #%d (%s)", entry.Indice+1, entry.Identificador)
		items := make([]pterm.BulletListItem, 0, len(entry.Erros))
		for _, e := range entry.Erros {
			items = append(items, pterm.BulletListItem{Level: 0, Text: pterm.Red(e)})
		}
		pterm.DefaultBulletList.WithItems(items).Render()
	}

	pterm.Warning.Printf("%d of %d transactions need fixing\n", len(report.Erros), total)
}
