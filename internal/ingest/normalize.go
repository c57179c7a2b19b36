package ingest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hance08/caixa/internal/model"
	"github.com/hance08/caixa/internal/reader"
	"github.com/shopspring/decimal"
)

// DefaultTagCategory receives tags given as a plain comma separated string.
const DefaultTagCategory = "Geral"

// Column names recognised in a CSV/XLSX header.
const (
	colValor         = "valor"
	colDescricao     = "descricao"
	colData          = "data"
	colObservacao    = "observacao"
	colPessoa        = "pessoa"
	colTags          = "tags"
	colIdentificador = "identificador"
)

type Options struct {
	User model.User
	// Now is frozen once per call; nil means time.Now.
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// Normalize maps a read file into canonical transactions, preserving order.
// It never fails: missing or bad fields get defaults and are left for
// Validate to report. An input whose shape does not match format yields nil.
func Normalize(in reader.Input, format reader.Format, opts Options) []model.Transaction {
	now := opts.now()
	b := batch{user: opts.User, now: now, imported: FormatDate(now)}

	switch v := in.(type) {
	case reader.Rows:
		if format != reader.FormatCSV && format != reader.FormatXLSX {
			return nil
		}
		cols := headerIndex(v.Header)
		out := make([]model.Transaction, 0, len(v.Data))
		for i, row := range v.Data {
			out = append(out, b.fromRow(cols, row, i))
		}
		return out
	case reader.Records:
		if format != reader.FormatJSON && format != reader.FormatManual {
			return nil
		}
		out := make([]model.Transaction, 0, len(v))
		for i, rec := range v {
			out = append(out, b.fromRecord(rec, i))
		}
		return out
	default:
		return nil
	}
}

// DetectType infers the transaction type from the sign of an amount.
func DetectType(v decimal.Decimal) model.TransactionType {
	if v.IsNegative() {
		return model.TypeExpense
	}
	return model.TypeReceivable
}

// ParseTags turns "a, b,,c" into {"Geral": ["a", "b", "c"]}.
func ParseTags(s string) map[string][]string {
	tags := make(map[string][]string)
	var names []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			names = append(names, p)
		}
	}
	if len(names) > 0 {
		tags[DefaultTagCategory] = names
	}
	return tags
}

// ParseAmount is lenient: it strips currency symbols and accepts a decimal
// comma. Dots alone are thousands separators when there is more than one.
// Anything unreadable is zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "R$")
	if !neg && strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	comma, dot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	switch {
	case strings.Count(s, ",") > 1:
		s = strings.ReplaceAll(s, ",", "")
	case comma > dot:
		// 1.234,56
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case comma >= 0:
		// 1,234.56
		s = strings.ReplaceAll(s, ",", "")
	case strings.Count(s, ".") > 1:
		// 1.234.567
		s = strings.ReplaceAll(s, ".", "")
	}
	if neg {
		s = "-" + s
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

type batch struct {
	user     model.User
	now      time.Time
	imported string
}

func (b batch) defaultDescription(i int) string {
	return fmt.Sprintf("Transação #%d", i+1)
}

func (b batch) defaultID(i int) string {
	return fmt.Sprintf("import-%d-%d", b.now.UnixMilli(), i)
}

func (b batch) person(p string) string {
	if p = strings.TrimSpace(p); p != "" {
		return p
	}
	return b.user.Nome
}

func (b batch) fromRow(cols map[string]int, row []string, i int) model.Transaction {
	cell := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	rawValor := cell(colValor)
	if _, ok := cols[colValor]; !ok && len(row) > 0 {
		rawValor = row[0]
	}
	signed := ParseAmount(rawValor)
	valor := signed.Abs().Round(2)

	return b.finish(model.Transaction{
		Tipo:          DetectType(signed),
		Descricao:     cell(colDescricao),
		Valor:         valor,
		Data:          cell(colData),
		Observacao:    cell(colObservacao),
		Identificador: cell(colIdentificador),
		Pagamentos: []model.Payment{{
			Pessoa: b.person(cell(colPessoa)),
			Valor:  valor,
			Tags:   ParseTags(cell(colTags)),
		}},
	}, i)
}

func (b batch) fromRecord(rec reader.Record, i int) model.Transaction {
	signed := toDecimal(rec["valor"])
	valor := signed.Abs().Round(2)

	tipo := DetectType(signed)
	if s := strings.ToLower(toString(rec["tipo"])); s != "" {
		tipo = model.TransactionType(s)
	}

	tx := model.Transaction{
		Tipo:          tipo,
		Descricao:     toString(rec["descricao"]),
		Valor:         valor,
		Data:          toString(rec["data"]),
		Observacao:    toString(rec["observacao"]),
		Identificador: toString(rec["identificador"]),
	}

	if list, ok := rec["pagamentos"].([]any); ok {
		tx.Pagamentos = make([]model.Payment, 0, len(list))
		for _, el := range list {
			obj, _ := el.(map[string]any)
			tx.Pagamentos = append(tx.Pagamentos, model.Payment{
				Pessoa: b.person(toString(obj["pessoa"])),
				Valor:  toDecimal(obj["valor"]).Round(2),
				Tags:   toTags(obj["tags"]),
			})
		}
	} else {
		tx.Pagamentos = []model.Payment{{
			Pessoa: b.person(toString(rec["pessoa"])),
			Valor:  valor,
			Tags:   toTags(rec["tags"]),
		}}
	}

	return b.finish(tx, i)
}

// finish applies the defaults shared by every format.
func (b batch) finish(tx model.Transaction, i int) model.Transaction {
	if tx.Descricao == "" {
		tx.Descricao = b.defaultDescription(i)
	}
	tx.Data = NormalizeDate(tx.Data, b.now)
	if tx.Identificador == "" {
		tx.Identificador = b.defaultID(i)
	}
	tx.DataImportacao = b.imported
	tx.Usuario = b.user.ID
	return tx
}

func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := cols[key]; !dup && key != "" {
			cols[key] = i
		}
	}
	return cols
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}

func toDecimal(v any) decimal.Decimal {
	switch t := v.(type) {
	case json.Number:
		return ParseAmount(t.String())
	case string:
		return ParseAmount(t)
	case float64:
		return decimal.NewFromFloat(t)
	case int:
		return decimal.NewFromInt(int64(t))
	case int64:
		return decimal.NewFromInt(t)
	case decimal.Decimal:
		return t
	default:
		return decimal.Zero
	}
}

// toTags accepts a category map or a comma separated string.
func toTags(v any) map[string][]string {
	switch t := v.(type) {
	case string:
		return ParseTags(t)
	case map[string]any:
		tags := make(map[string][]string, len(t))
		for category, raw := range t {
			var ids []string
			switch vals := raw.(type) {
			case []any:
				for _, el := range vals {
					if s := toString(el); s != "" {
						ids = append(ids, s)
					}
				}
			case string:
				ids = ParseTags(vals)[DefaultTagCategory]
			}
			if len(ids) > 0 {
				tags[category] = ids
			}
		}
		return tags
	case map[string][]string:
		return t
	default:
		return map[string][]string{}
	}
}
