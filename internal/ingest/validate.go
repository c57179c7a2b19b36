package ingest

import (
	"fmt"
	"strings"

	"github.com/hance08/caixa/internal/model"
	"github.com/shopspring/decimal"
)

// MsgEmptyBatch is reported when there is nothing to import.
const MsgEmptyBatch = "no transactions to process"

// Validate checks every transaction and collects the violations. It never
// mutates txs and never panics. An empty batch is invalid.
func Validate(txs []model.Transaction) model.Report {
	if len(txs) == 0 {
		return model.Report{Valido: false, Geral: []string{MsgEmptyBatch}}
	}

	report := model.Report{Erros: []model.ReportEntry{}}
	seen := make(map[string]bool, len(txs))

	for i, tx := range txs {
		errs := ValidateTransaction(tx)

		if tx.Identificador != "" {
			if seen[tx.Identificador] {
				errs = append(errs, fmt.Sprintf("duplicate identifier %q", tx.Identificador))
			}
			seen[tx.Identificador] = true
		}

		if len(errs) > 0 {
			report.Erros = append(report.Erros, model.ReportEntry{
				Indice:        i,
				Identificador: tx.Identificador,
				Transacao:     tx,
				Erros:         errs,
			})
		}
	}

	report.Valido = len(report.Erros) == 0
	return report
}

// ValidateAny is Validate over an arbitrary value: anything that is not a
// list of transactions is reported as an empty batch.
func ValidateAny(v any) model.Report {
	switch t := v.(type) {
	case []model.Transaction:
		return Validate(t)
	case []*model.Transaction:
		txs := make([]model.Transaction, 0, len(t))
		for _, p := range t {
			if p != nil {
				txs = append(txs, *p)
			}
		}
		return Validate(txs)
	default:
		return Validate(nil)
	}
}

// ValidateTransaction returns the violations of a single transaction in a
// stable order.
func ValidateTransaction(tx model.Transaction) []string {
	var errs []string

	if !tx.Tipo.Valid() {
		errs = append(errs, fmt.Sprintf("invalid type %q: must be %q or %q", tx.Tipo, model.TypeExpense, model.TypeReceivable))
	}
	if strings.TrimSpace(tx.Descricao) == "" {
		errs = append(errs, "description is required")
	}
	if !tx.Valor.IsPositive() {
		errs = append(errs, "amount must be greater than zero")
	}
	if _, ok := ParseDate(tx.Data); !ok {
		errs = append(errs, fmt.Sprintf("invalid date %q", tx.Data))
	}
	// Normalize always fills it. Reports and drafts are keyed by it.
	if strings.TrimSpace(tx.Identificador) == "" {
		errs = append(errs, "identifier is required")
	}

	if len(tx.Pagamentos) == 0 {
		errs = append(errs, "at least one payment is required")
		return errs
	}

	for i, p := range tx.Pagamentos {
		if strings.TrimSpace(p.Pessoa) == "" {
			errs = append(errs, fmt.Sprintf("payment #%d: person is required", i+1))
		}
		if !p.Valor.IsPositive() {
			errs = append(errs, fmt.Sprintf("payment #%d: amount must be greater than zero", i+1))
		}
	}

	if tx.Valor.IsPositive() && !PaymentsBalance(tx) {
		errs = append(errs, fmt.Sprintf("payments total %s does not match amount %s",
			SumPayments(tx.Pagamentos).StringFixed(2), tx.Valor.StringFixed(2)))
	}

	return errs
}

// SumPayments adds the payment amounts.
func SumPayments(payments []model.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Valor)
	}
	return total
}

// PaymentsBalance reports whether the payments add up to the transaction
// amount at cent precision.
func PaymentsBalance(tx model.Transaction) bool {
	return SumPayments(tx.Pagamentos).Round(2).Equal(tx.Valor.Round(2))
}
