package views

import (
	"fmt"
	"time"

	"github.com/hance08/caixa/internal/store"
	"github.com/pterm/pterm"
)

func RenderDraftList(drafts []*store.Draft) error {
	if len(drafts) == 0 {
		pterm.Info.Println("No saved drafts")
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Source", "Format", "Items", "Updated"},
	}
	for _, d := range drafts {
		tableData = append(tableData, []string{
			d.ID,
			d.Source,
			d.Format,
			fmt.Sprintf("%d", d.Items),
			time.Unix(d.UpdatedAt, 0).Format("2006-01-02 15:04"),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Println("Resume with: caixa import --resume <id>")
	return nil
}
