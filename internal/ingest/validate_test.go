package ingest

import (
	"testing"

	"github.com/hance08/caixa/internal/model"
	"github.com/hance08/caixa/internal/reader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTx(id, valor string) model.Transaction {
	return model.Transaction{
		Tipo:           model.TypeExpense,
		Descricao:      "Mercado",
		Valor:          dec(valor),
		Data:           "2023-10-17T00:00:00.000Z",
		Identificador:  id,
		DataImportacao: "2024-03-05T12:30:00.000Z",
		Usuario:        "u-42",
		Pagamentos: []model.Payment{
			{Pessoa: "Ana", Valor: dec(valor), Tags: map[string][]string{}},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	report := Validate([]model.Transaction{validTx("a", "10"), validTx("b", "0.01")})
	assert.True(t, report.Valido)
	assert.Empty(t, report.Erros)
	assert.Zero(t, report.ErrorCount())
}

func TestValidate_EmptyBatchIsInvalid(t *testing.T) {
	for _, in := range []any{nil, []model.Transaction{}, "not a list", 42, map[string]any{}, model.Transaction{}} {
		report := ValidateAny(in)
		assert.False(t, report.Valido)
		assert.Equal(t, []string{MsgEmptyBatch}, report.Geral)
		assert.NotZero(t, report.ErrorCount())
	}
}

func TestValidate_SingleBadItemIsReportedAtItsIndex(t *testing.T) {
	bad := validTx("b", "10")
	bad.Valor = dec("0")
	txs := []model.Transaction{validTx("a", "10"), bad, validTx("c", "10")}

	report := Validate(txs)
	assert.False(t, report.Valido)
	require.Len(t, report.Erros, 1)
	assert.Equal(t, 1, report.Erros[0].Indice)
	assert.Equal(t, "b", report.Erros[0].Identificador)
	assert.Contains(t, report.Erros[0].Erros, "amount must be greater than zero")

	// input untouched
	assert.True(t, txs[1].Valor.IsZero())
	assert.Len(t, txs, 3)
}

func TestValidateTransaction_Rules(t *testing.T) {
	tx := model.Transaction{
		Tipo:       "other",
		Valor:      dec("-1"),
		Data:       "nope",
		Pagamentos: nil,
	}
	errs := ValidateTransaction(tx)
	assert.Equal(t, []string{
		`invalid type "other": must be "gasto" or "recebivel"`,
		"description is required",
		"amount must be greater than zero",
		`invalid date "nope"`,
		"identifier is required",
		"at least one payment is required",
	}, errs)
}

func TestValidateTransaction_PaymentRules(t *testing.T) {
	tx := validTx("a", "10")
	tx.Pagamentos = []model.Payment{
		{Pessoa: "Ana", Valor: dec("10")},
		{Pessoa: " ", Valor: dec("0")},
	}
	errs := ValidateTransaction(tx)
	assert.Equal(t, []string{
		"payment #2: person is required",
		"payment #2: amount must be greater than zero",
	}, errs)
}

func TestValidateTransaction_PaymentsMustBalance(t *testing.T) {
	tx := validTx("a", "100")
	tx.Pagamentos[0].Valor = dec("90")
	assert.Equal(t, []string{"payments total 90.00 does not match amount 100.00"}, ValidateTransaction(tx))

	tx.Pagamentos = []model.Payment{
		{Pessoa: "Ana", Valor: dec("33.33")},
		{Pessoa: "Bia", Valor: dec("33.33")},
		{Pessoa: "Caio", Valor: dec("33.34")},
	}
	assert.Empty(t, ValidateTransaction(tx))
}

func TestValidate_DuplicateIdentifiers(t *testing.T) {
	report := Validate([]model.Transaction{validTx("x", "1"), validTx("x", "2")})
	require.Len(t, report.Erros, 1)
	assert.Equal(t, 1, report.Erros[0].Indice)
	assert.Equal(t, []string{`duplicate identifier "x"`}, report.Erros[0].Erros)
}

func TestValidate_Soundness(t *testing.T) {
	for _, v := range []string{"0.01", "1", "85.5", "123456.78"} {
		for _, typ := range []model.TransactionType{model.TypeExpense, model.TypeReceivable} {
			tx := validTx("id", v)
			tx.Tipo = typ
			assert.True(t, Validate([]model.Transaction{tx}).Valido, "valor %s tipo %s", v, typ)
		}
	}
}

func TestValidate_NormalizedItemsAlwaysCarryIdentifier(t *testing.T) {
	in := reader.Records{
		{"valor": "10", "identificador": "   "},
		{"valor": "20"},
	}
	txs := Normalize(in, reader.FormatJSON, testOptions())

	for i, tx := range txs {
		assert.NotContains(t, ValidateTransaction(tx), "identifier is required", "item %d", i)
	}

	blank := validTx(" ", "10")
	assert.Contains(t, ValidateTransaction(blank), "identifier is required")
}
