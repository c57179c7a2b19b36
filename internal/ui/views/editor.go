package views

import (
	"fmt"

	"github.com/hance08/caixa/internal/editor"
	"github.com/hance08/caixa/internal/ui"
	"github.com/hance08/caixa/internal/utils"
	"github.com/pterm/pterm"
)

// RenderEditor shows the unsaved form state.
func RenderEditor(ed *editor.Editor, names TagNamer) error {
	pterm.Println()
	ui.PrintL2Title("Editing")

	infoData := pterm.TableData{
		{"Type", ed.Tipo.Label()},
		{"Description", ed.Descricao},
		{"Amount", ed.Valor},
		{"Date", ed.Data},
		{"Note", ed.Observacao},
	}
	if err := pterm.DefaultTable.WithData(infoData).Render(); err != nil {
		return err
	}

	paymentsData := pterm.TableData{
		{"#", "Person", "Amount", "Tags"},
	}
	for i, p := range ed.Payments {
		paymentsData = append(paymentsData, []string{
			fmt.Sprintf("%d", i+1),
			p.Pessoa,
			p.Valor,
			FormatTags(p.Tags, names),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(paymentsData).Render(); err != nil {
		return err
	}

	if rest := ed.Remaining(); !rest.IsZero() {
		pterm.Warning.Printf("Left to allocate: %s\n", utils.FormatMoney(rest))
	}
	return nil
}
