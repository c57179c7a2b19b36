package model

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	// The backend expects JSON numbers for monetary fields.
	decimal.MarshalJSONWithoutQuotes = true
}

type TransactionType string

const (
	TypeExpense    TransactionType = "gasto"
	TypeReceivable TransactionType = "recebivel"
)

func (t TransactionType) Valid() bool {
	return t == TypeExpense || t == TypeReceivable
}

// Label returns the human readable name shown in tables and forms.
func (t TransactionType) Label() string {
	switch t {
	case TypeExpense:
		return "Expense"
	case TypeReceivable:
		return "Receivable"
	default:
		return string(t)
	}
}

// Transaction is the canonical shape every import format is normalized into.
type Transaction struct {
	Tipo           TransactionType `json:"tipo"`
	Descricao      string          `json:"descricao"`
	Valor          decimal.Decimal `json:"valor"`
	Data           string          `json:"data"`
	Observacao     string          `json:"observacao,omitempty"`
	Pagamentos     []Payment       `json:"pagamentos"`
	Identificador  string          `json:"identificador"`
	DataImportacao string          `json:"dataImportacao"`
	Usuario        string          `json:"usuario"`
}

// Payment is the portion of a transaction attributed to one person.
// Tags maps a category name to the tag IDs selected under it.
type Payment struct {
	Pessoa string              `json:"pessoa"`
	Valor  decimal.Decimal     `json:"valor"`
	Tags   map[string][]string `json:"tags"`
}

// Clone returns a deep copy so edits never alias staged data.
func (t Transaction) Clone() Transaction {
	out := t
	if t.Pagamentos != nil {
		out.Pagamentos = make([]Payment, len(t.Pagamentos))
		for i, p := range t.Pagamentos {
			out.Pagamentos[i] = p.Clone()
		}
	}
	return out
}

func (p Payment) Clone() Payment {
	out := p
	if p.Tags != nil {
		out.Tags = make(map[string][]string, len(p.Tags))
		for k, v := range p.Tags {
			out.Tags[k] = slices.Clone(v)
		}
	}
	return out
}

// TagCategories returns the category names used by the payment, sorted.
func (p Payment) TagCategories() []string {
	return slices.Sorted(maps.Keys(p.Tags))
}
