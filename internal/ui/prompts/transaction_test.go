package prompts

import (
	"testing"
	"time"

	"github.com/hance08/caixa/internal/model"
	"github.com/hance08/caixa/internal/reader"
	"github.com/stretchr/testify/assert"
)

func TestManualRecord(t *testing.T) {
	now := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	rec := ManualRecord(model.TypeReceivable, " Salário ", "3.500,00", "y", "", "", now)

	assert.Equal(t, reader.Record{
		"tipo":      "recebivel",
		"descricao": "Salário",
		"valor":     "3.500,00",
		"data":      "2024-03-04",
	}, rec)
}

func TestManualRecord_KeepsTypedDateAndPerson(t *testing.T) {
	rec := ManualRecord(model.TypeExpense, "Mercado", "50", "2023-10-17", "feira", "Bia", time.Now())

	assert.Equal(t, "2023-10-17", rec["data"])
	assert.Equal(t, "feira", rec["observacao"])
	assert.Equal(t, "Bia", rec["pessoa"])
}

func TestPickDefault(t *testing.T) {
	options := []string{ActionEdit, ActionSubmit, ActionQuit}

	assert.Equal(t, ActionSubmit, pickDefault(options, ActionSubmit))
	assert.Equal(t, ActionSubmit, pickDefault(options, "Submit"))
	assert.Equal(t, ActionEdit, pickDefault(options, ""))
	assert.Equal(t, ActionEdit, pickDefault(options, "Nope"))
	assert.Equal(t, "", pickDefault(nil, ActionSubmit))
}
