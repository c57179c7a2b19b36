package views

import (
	"github.com/hance08/caixa/internal/model"
	"github.com/hance08/caixa/internal/ui"
	"github.com/hance08/caixa/internal/utils"
	"github.com/pterm/pterm"
)

func RenderRemovePreview(index int, tx model.Transaction) {
	pterm.Warning.Printf("About to remove item #%d from the batch:\n", index+1)

	info := pterm.TableData{
		{"Date", DisplayDate(tx.Data)},
		{"Description", tx.Descricao},
		{"Amount", utils.FormatMoney(tx.Valor)},
	}

	pterm.DefaultTable.WithData(info).Render()
}

func RenderRemoveSuccess(index int, left int) {
	pterm.Success.Printf("Item #%d removed, %d left\n", index+1, left)
	ui.Separator()
}
