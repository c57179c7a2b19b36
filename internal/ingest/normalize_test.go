package ingest

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/hance08/caixa/internal/model"
	"github.com/hance08/caixa/internal/reader"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	frozen   = time.Date(2024, 3, 5, 12, 30, 0, 0, time.UTC)
	importer = model.User{ID: "u-42", Nome: "Ana"}
)

func testOptions() Options {
	return Options{User: importer, Now: func() time.Time { return frozen }}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNormalize_CSVHappyPath(t *testing.T) {
	in := reader.Rows{
		Header: []string{"valor", "descricao"},
		Data:   [][]string{{"100", "Salário"}, {"-50", "Mercado"}},
	}

	txs := Normalize(in, reader.FormatCSV, testOptions())
	require.Len(t, txs, 2)

	assert.Equal(t, model.TypeReceivable, txs[0].Tipo)
	assert.True(t, txs[0].Valor.Equal(dec("100")))
	assert.Equal(t, "Salário", txs[0].Descricao)

	assert.Equal(t, model.TypeExpense, txs[1].Tipo)
	assert.True(t, txs[1].Valor.Equal(dec("50")))
	assert.Equal(t, "Mercado", txs[1].Descricao)

	for i, tx := range txs {
		require.Len(t, tx.Pagamentos, 1)
		assert.Equal(t, "Ana", tx.Pagamentos[0].Pessoa)
		assert.True(t, tx.Pagamentos[0].Valor.Equal(tx.Valor))
		assert.Equal(t, "u-42", tx.Usuario)
		assert.Equal(t, "2024-03-05T12:30:00.000Z", tx.Data)
		assert.Equal(t, "2024-03-05T12:30:00.000Z", tx.DataImportacao)
		assert.Equal(t, fmt.Sprintf("import-%d-%d", frozen.UnixMilli(), i), tx.Identificador)
	}
}

func TestNormalize_CSVColumnsAndDefaults(t *testing.T) {
	in := reader.Rows{
		Header: []string{"Data", " Pessoa ", "VALOR", "tags", "observacao", "identificador"},
		Data: [][]string{
			{"2023-10-17", "Bia", "-12,50", "mercado, , feira", "semana", "ext-1"},
			{"not a date", "", "abc"},
		},
	}

	txs := Normalize(in, reader.FormatCSV, testOptions())
	require.Len(t, txs, 2)

	first := txs[0]
	assert.Equal(t, model.TypeExpense, first.Tipo)
	assert.Equal(t, "12.5", first.Valor.String())
	assert.Equal(t, "Transação #1", first.Descricao)
	assert.Equal(t, "2023-10-17T00:00:00.000Z", first.Data)
	assert.Equal(t, "semana", first.Observacao)
	assert.Equal(t, "ext-1", first.Identificador)
	assert.Equal(t, "Bia", first.Pagamentos[0].Pessoa)
	assert.Equal(t, map[string][]string{"Geral": {"mercado", "feira"}}, first.Pagamentos[0].Tags)

	second := txs[1]
	assert.True(t, second.Valor.IsZero())
	assert.Equal(t, "Transação #2", second.Descricao)
	assert.Equal(t, FormatDate(frozen), second.Data)
	assert.Equal(t, "Ana", second.Pagamentos[0].Pessoa)
	assert.Empty(t, second.Pagamentos[0].Tags)
}

func TestNormalize_CSVMissingValorColumnUsesFirstCell(t *testing.T) {
	in := reader.Rows{
		Header: []string{"amount", "descricao"},
		Data:   [][]string{{"-7.25", "Ônibus"}},
	}
	txs := Normalize(in, reader.FormatCSV, testOptions())
	require.Len(t, txs, 1)
	assert.Equal(t, model.TypeExpense, txs[0].Tipo)
	assert.Equal(t, "7.25", txs[0].Valor.String())
}

func TestNormalize_JSONMissingTipoNegativeValor(t *testing.T) {
	recs, err := reader.DecodeJSON([]byte(`{"valor": -85.5, "descricao": "Restaurante", "data": "2023-10-17"}`))
	require.NoError(t, err)

	txs := Normalize(recs, reader.FormatJSON, testOptions())
	require.Len(t, txs, 1)
	assert.Equal(t, model.TypeExpense, txs[0].Tipo)
	assert.Equal(t, "85.5", txs[0].Valor.String())
	assert.Equal(t, "Restaurante", txs[0].Descricao)
	assert.Equal(t, "2023-10-17T00:00:00.000Z", txs[0].Data)
}

func TestNormalize_JSONExplicitTipoAndPayments(t *testing.T) {
	recs, err := reader.DecodeJSON([]byte(`[{
		"tipo": "Gasto",
		"valor": 100,
		"descricao": "Jantar",
		"data": "2023-10-17T20:00:00-03:00",
		"identificador": "j-1",
		"pagamentos": [
			{"pessoa": "Ana", "valor": 60, "tags": {"Lazer": ["t1", "t2"]}},
			{"pessoa": "", "valor": "40", "tags": "bar"}
		]
	}, {"tipo": "transferencia", "valor": 5}]`))
	require.NoError(t, err)

	txs := Normalize(recs, reader.FormatJSON, testOptions())
	require.Len(t, txs, 2)

	tx := txs[0]
	assert.Equal(t, model.TypeExpense, tx.Tipo)
	assert.Equal(t, "2023-10-17T23:00:00.000Z", tx.Data)
	assert.Equal(t, "j-1", tx.Identificador)
	require.Len(t, tx.Pagamentos, 2)
	assert.Equal(t, map[string][]string{"Lazer": {"t1", "t2"}}, tx.Pagamentos[0].Tags)
	assert.Equal(t, "Ana", tx.Pagamentos[1].Pessoa)
	assert.True(t, tx.Pagamentos[1].Valor.Equal(dec("40")))
	assert.Equal(t, map[string][]string{"Geral": {"bar"}}, tx.Pagamentos[1].Tags)

	// Unknown types are kept so the validator can report them.
	assert.Equal(t, model.TransactionType("transferencia"), txs[1].Tipo)
}

func TestNormalize_JSONEmptyPaymentsKept(t *testing.T) {
	recs := reader.Records{{"valor": json.Number("10"), "pagamentos": []any{}}}
	txs := Normalize(recs, reader.FormatJSON, testOptions())
	require.Len(t, txs, 1)
	assert.Empty(t, txs[0].Pagamentos)
}

func TestNormalize_ManualSameAsJSON(t *testing.T) {
	recs := reader.Records{{"valor": json.Number("-3"), "descricao": "Café"}}
	fromJSON := Normalize(recs, reader.FormatJSON, testOptions())
	fromManual := Normalize(recs, reader.FormatManual, testOptions())
	assert.Equal(t, fromJSON, fromManual)
}

func TestNormalize_ShapeMismatch(t *testing.T) {
	assert.Nil(t, Normalize(reader.Records{{}}, reader.FormatCSV, testOptions()))
	assert.Nil(t, Normalize(reader.Rows{}, reader.FormatJSON, testOptions()))
	assert.Nil(t, Normalize(nil, reader.FormatJSON, testOptions()))
}

func TestNormalize_Idempotent(t *testing.T) {
	in := reader.Rows{
		Header: []string{"valor", "descricao", "tags"},
		Data:   [][]string{{"10", "a", "x,y"}, {"-2", "b", ""}},
	}
	first := Normalize(in, reader.FormatCSV, testOptions())

	later := testOptions()
	later.Now = func() time.Time { return frozen }
	second := Normalize(in, reader.FormatCSV, later)

	require.Len(t, second, len(first))
	for i := range first {
		a, b := first[i], second[i]
		a.Identificador, b.Identificador = "", ""
		a.DataImportacao, b.DataImportacao = "", ""
		assert.Equal(t, a, b)
	}
}

func TestDetectType_SignProperty(t *testing.T) {
	for _, s := range []string{"-1000000", "-0.01", "0", "0.00", "0.01", "42", "99999999.99"} {
		v := dec(s)
		got := DetectType(v)
		assert.Equal(t, v.IsNegative(), got == model.TypeExpense, "value %s", s)
	}
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, map[string][]string{"Geral": {"a", "b"}}, ParseTags(" a ,, b ,"))
	assert.Empty(t, ParseTags(""))
	assert.Empty(t, ParseTags(" , "))
}

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		"100":         "100",
		"-50":         "-50",
		"R$ 1.234,56": "1234.56",
		"1,234.56":    "1234.56",
		"12,5":        "12.5",
		"1,000,000":   "1000000",
		"-R$ 50,00":   "-50",
		"R$ -50,00":   "-50",
		"1.234.567":   "1234567",
		"-1.234.567":  "-1234567",
		"12.5":        "12.5",
		"":            "0",
		"abc":         "0",
	}
	for in, want := range cases {
		assert.True(t, ParseAmount(in).Equal(dec(want)), "input %q got %s", in, ParseAmount(in))
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"2023-10-17":                  "2023-10-17T00:00:00.000Z",
		"2023-10-17T10:11:12Z":        "2023-10-17T10:11:12.000Z",
		"2023-10-17T10:11:12.5+01:00": "2023-10-17T09:11:12.500Z",
		"17/10/2023":                  "2023-10-17T00:00:00.000Z",
		"10/17/2023":                  "2023-10-17T00:00:00.000Z",
		"05/03/2023":                  "2023-03-05T00:00:00.000Z",
		"2023":                        "2023-01-01T00:00:00.000Z",
		"42":                          "2024-03-05T12:30:00.000Z",
		"123456":                      "2024-03-05T12:30:00.000Z",
		"-1697500800":                 "2024-03-05T12:30:00.000Z",
		"1697500800":                  "2023-10-17T00:00:00.000Z",
		"1697500800000":               "2023-10-17T00:00:00.000Z",
		"garbage":                     "2024-03-05T12:30:00.000Z",
		"":                            "2024-03-05T12:30:00.000Z",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeDate(in, frozen), "input %q", in)
	}
}
