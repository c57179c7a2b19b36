package views

import (
	"strings"

	"github.com/hance08/caixa/internal/client"
	"github.com/pterm/pterm"
)

func RenderCatalog(cat *client.Catalog) error {
	if len(cat.Categories) == 0 {
		pterm.Warning.Println("No categories found")
		return nil
	}

	tableData := pterm.TableData{
		{"Category", "Tags"},
	}
	for _, c := range cat.Categories {
		tags := cat.TagsFor(c)
		names := make([]string, len(tags))
		for i, t := range tags {
			names[i] = t.Nome
		}
		tableData = append(tableData, []string{c.Nome, strings.Join(names, ", ")})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d categories, %d tags\n", len(cat.Categories), len(cat.Tags))
	return nil
}
