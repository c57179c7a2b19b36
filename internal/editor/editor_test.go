package editor

import (
	"testing"
	"time"

	"github.com/hance08/caixa/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staged(valor string, payments ...string) model.Transaction {
	tx := model.Transaction{
		Tipo:           model.TypeExpense,
		Descricao:      "Mercado",
		Valor:          decimal.RequireFromString(valor),
		Data:           "2023-10-17T00:00:00.000Z",
		Identificador:  "import-1-0",
		DataImportacao: "2024-03-05T12:30:00.000Z",
		Usuario:        "u-42",
	}
	for _, p := range payments {
		tx.Pagamentos = append(tx.Pagamentos, model.Payment{
			Pessoa: "Ana",
			Valor:  decimal.RequireFromString(p),
			Tags:   map[string][]string{"Geral": {"t1"}},
		})
	}
	return tx
}

func TestNew_LoadsFormState(t *testing.T) {
	e := New(staged("85.5", "85.5"))
	assert.Equal(t, "Mercado", e.Descricao)
	assert.Equal(t, "85.50", e.Valor)
	assert.Equal(t, "2023-10-17", e.Data)
	require.Len(t, e.Payments, 1)
	assert.Equal(t, "85.50", e.Payments[0].Valor)
	assert.True(t, e.Remaining().IsZero())
}

func TestNew_AlwaysStartsWithOnePayment(t *testing.T) {
	e := New(staged("10"))
	require.Len(t, e.Payments, 1)
	assert.NotNil(t, e.Payments[0].Tags)
}

func TestBuild_AllocationMismatchIsRejected(t *testing.T) {
	e := New(staged("100", "90"))

	_, err := e.Build()
	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.Equal(t, "10", e.Remaining().String())
}

func TestBuild_AcceptsBalancedAllocations(t *testing.T) {
	e := New(staged("100", "90"))
	e.AddPayment()
	require.NoError(t, e.SetPayment(1, "Bia", "10"))
	require.NoError(t, e.SetTags(1, "Lazer", []string{"t9"}))

	tx, err := e.Build()
	require.NoError(t, err)
	require.Len(t, tx.Pagamentos, 2)
	assert.Equal(t, "Bia", tx.Pagamentos[1].Pessoa)
	assert.Equal(t, map[string][]string{"Lazer": {"t9"}}, tx.Pagamentos[1].Tags)

	assert.Equal(t, "import-1-0", tx.Identificador)
	assert.Equal(t, "2024-03-05T12:30:00.000Z", tx.DataImportacao)
	assert.Equal(t, "u-42", tx.Usuario)
	assert.Equal(t, "2023-10-17T00:00:00.000Z", tx.Data)
}

func TestBuild_SumComparedAtCentPrecision(t *testing.T) {
	e := New(staged("0.3", "0.1"))
	e.AddPayment()
	require.NoError(t, e.SetPayment(1, "Bia", "0.2"))
	_, err := e.Build()
	assert.NoError(t, err)

	require.NoError(t, e.SetPayment(1, "Bia", "0.21"))
	_, err = e.Build()
	assert.ErrorIs(t, err, ErrInvalidForm)
}

func TestBuild_Guards(t *testing.T) {
	cases := map[string]func(e *Editor){
		"empty description": func(e *Editor) { e.Descricao = "  " },
		"zero total":        func(e *Editor) { e.Valor = "0" },
		"bad total":         func(e *Editor) { e.Valor = "abc" },
		"missing date":      func(e *Editor) { e.Data = "" },
		"bad date":          func(e *Editor) { e.Data = "yesterday-ish" },
		"missing person":    func(e *Editor) { e.Payments[0].Pessoa = "" },
		"zero payment":      func(e *Editor) { e.Payments[0].Valor = "0" },
		"invalid type":      func(e *Editor) { e.Tipo = "transferencia" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			e := New(staged("10", "10"))
			mutate(e)
			_, err := e.Build()
			assert.Equal(t, ErrInvalidForm, err)
		})
	}
}

func TestBuild_DoesNotTouchSource(t *testing.T) {
	src := staged("10", "10")
	e := New(src)
	e.Descricao = "Feira"
	require.NoError(t, e.SetTags(0, "Geral", []string{"x", "y"}))

	_, err := e.Build()
	require.NoError(t, err)
	assert.Equal(t, "Mercado", src.Descricao)
	assert.Equal(t, []string{"t1"}, src.Pagamentos[0].Tags["Geral"])
	assert.Equal(t, "Mercado", e.Source().Descricao)
}

func TestRemovePayment_KeepsAtLeastOne(t *testing.T) {
	e := New(staged("10", "5", "5"))
	require.NoError(t, e.RemovePayment(0))
	assert.Len(t, e.Payments, 1)

	assert.ErrorIs(t, e.RemovePayment(0), ErrLastPayment)
	assert.ErrorIs(t, e.RemovePayment(4), ErrNoPayment)
	assert.Len(t, e.Payments, 1)
}

func TestSetTags_EmptySelectionRemovesCategory(t *testing.T) {
	e := New(staged("10", "10"))
	require.NoError(t, e.SetTags(0, "Geral", nil))
	assert.NotContains(t, e.Payments[0].Tags, "Geral")
	assert.ErrorIs(t, e.SetTags(3, "Geral", []string{"a"}), ErrNoPayment)
}

func TestDateShortcuts(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	e := New(staged("10", "10"))

	e.SetToday(now)
	assert.Equal(t, "2024-03-01", e.Data)

	e.SetYesterday(now)
	assert.Equal(t, "2024-02-29", e.Data)

	tx, err := e.Build()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29T00:00:00.000Z", tx.Data)
}

func TestSplitEvenly(t *testing.T) {
	e := New(staged("100", "100"))
	e.AddPayment()
	e.AddPayment()
	for i := range e.Payments {
		e.Payments[i].Pessoa = "p"
	}

	require.NoError(t, e.SplitEvenly())
	assert.Equal(t, "33.33", e.Payments[0].Valor)
	assert.Equal(t, "33.33", e.Payments[1].Valor)
	assert.Equal(t, "33.34", e.Payments[2].Valor)

	_, err := e.Build()
	assert.NoError(t, err)

	e.Valor = ""
	assert.Error(t, e.SplitEvenly())
}
