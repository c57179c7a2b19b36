package editor

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hance08/caixa/internal/ingest"
	"github.com/hance08/caixa/internal/model"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidForm is the single error returned when any save guard fails.
	ErrInvalidForm = errors.New("please fill every field correctly; payment amounts must add up to the total")
	ErrLastPayment = errors.New("a transaction must keep at least one payment")
	ErrNoPayment   = errors.New("payment does not exist")
)

const dateInputLayout = "2006-01-02"

// PaymentForm is the editable state of one payment. Amounts stay as typed
// until the form is built.
type PaymentForm struct {
	Pessoa string
	Valor  string
	Tags   map[string][]string
}

// Editor is the working copy of one staged transaction.
type Editor struct {
	Tipo       model.TransactionType
	Descricao  string
	Valor      string
	Data       string
	Observacao string
	Payments   []PaymentForm

	source model.Transaction
}

// New loads tx into form state.
func New(tx model.Transaction) *Editor {
	e := &Editor{
		Tipo:       tx.Tipo,
		Descricao:  tx.Descricao,
		Valor:      formatAmount(tx.Valor),
		Data:       displayDate(tx.Data),
		Observacao: tx.Observacao,
		source:     tx.Clone(),
	}
	for _, p := range tx.Pagamentos {
		p = p.Clone()
		if p.Tags == nil {
			p.Tags = map[string][]string{}
		}
		e.Payments = append(e.Payments, PaymentForm{
			Pessoa: p.Pessoa,
			Valor:  formatAmount(p.Valor),
			Tags:   p.Tags,
		})
	}
	if len(e.Payments) == 0 {
		e.AddPayment()
	}
	return e
}

// Source returns the transaction the editor was opened on.
func (e *Editor) Source() model.Transaction { return e.source.Clone() }

// AddPayment appends an empty payment and returns its index.
func (e *Editor) AddPayment() int {
	e.Payments = append(e.Payments, PaymentForm{Tags: map[string][]string{}})
	return len(e.Payments) - 1
}

// RemovePayment drops payment i. The last payment cannot be removed.
func (e *Editor) RemovePayment(i int) error {
	if err := e.checkPayment(i); err != nil {
		return err
	}
	if len(e.Payments) == 1 {
		return ErrLastPayment
	}
	e.Payments = slices.Delete(e.Payments, i, i+1)
	return nil
}

func (e *Editor) SetPayment(i int, pessoa, valor string) error {
	if err := e.checkPayment(i); err != nil {
		return err
	}
	e.Payments[i].Pessoa = pessoa
	e.Payments[i].Valor = valor
	return nil
}

// SetTags stores the tag IDs selected for category on payment i. An empty
// selection removes the category.
func (e *Editor) SetTags(i int, category string, tagIDs []string) error {
	if err := e.checkPayment(i); err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		delete(e.Payments[i].Tags, category)
		return nil
	}
	e.Payments[i].Tags[category] = slices.Clone(tagIDs)
	return nil
}

func (e *Editor) SetToday(now time.Time) {
	e.Data = now.Format(dateInputLayout)
}

func (e *Editor) SetYesterday(now time.Time) {
	e.Data = now.AddDate(0, 0, -1).Format(dateInputLayout)
}

// SplitEvenly spreads the total over the current payments in cents; the
// last payment absorbs the remainder.
func (e *Editor) SplitEvenly() error {
	total, ok := parsePositive(e.Valor)
	if !ok {
		return fmt.Errorf("invalid total amount %q", e.Valor)
	}
	n := int64(len(e.Payments))
	cents := total.Shift(2).IntPart()
	share := cents / n
	for i := range e.Payments {
		c := share
		if int64(i) == n-1 {
			c = cents - share*(n-1)
		}
		e.Payments[i].Valor = formatAmount(decimal.New(c, -2))
	}
	return nil
}

// Remaining is the part of the total not yet attributed to a payment.
// Unparseable amounts count as zero.
func (e *Editor) Remaining() decimal.Decimal {
	total := ingest.ParseAmount(e.Valor)
	for _, p := range e.Payments {
		total = total.Sub(ingest.ParseAmount(p.Valor))
	}
	return total.Round(2)
}

// Build checks the form and returns the corrected transaction. Any failed
// check yields ErrInvalidForm and nothing else.
func (e *Editor) Build() (model.Transaction, error) {
	if strings.TrimSpace(e.Descricao) == "" {
		return model.Transaction{}, ErrInvalidForm
	}
	total, ok := parsePositive(e.Valor)
	if !ok {
		return model.Transaction{}, ErrInvalidForm
	}
	date, ok := ingest.ParseDate(e.Data)
	if !ok {
		return model.Transaction{}, ErrInvalidForm
	}
	if len(e.Payments) == 0 {
		return model.Transaction{}, ErrInvalidForm
	}

	payments := make([]model.Payment, 0, len(e.Payments))
	sum := decimal.Zero
	for _, p := range e.Payments {
		if strings.TrimSpace(p.Pessoa) == "" {
			return model.Transaction{}, ErrInvalidForm
		}
		v, ok := parsePositive(p.Valor)
		if !ok {
			return model.Transaction{}, ErrInvalidForm
		}
		sum = sum.Add(v)
		payments = append(payments, model.Payment{
			Pessoa: strings.TrimSpace(p.Pessoa),
			Valor:  v,
			Tags:   cloneTags(p.Tags),
		})
	}
	if !sum.Round(2).Equal(total) {
		return model.Transaction{}, ErrInvalidForm
	}

	tipo := e.Tipo
	if !tipo.Valid() {
		return model.Transaction{}, ErrInvalidForm
	}

	out := e.source.Clone()
	out.Tipo = tipo
	out.Descricao = strings.TrimSpace(e.Descricao)
	out.Valor = total
	out.Data = ingest.FormatDate(date)
	out.Observacao = strings.TrimSpace(e.Observacao)
	out.Pagamentos = payments
	return out, nil
}

func (e *Editor) checkPayment(i int) error {
	if i < 0 || i >= len(e.Payments) {
		return fmt.Errorf("%w: #%d", ErrNoPayment, i+1)
	}
	return nil
}

func parsePositive(s string) (decimal.Decimal, bool) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, false
	}
	v := ingest.ParseAmount(s).Round(2)
	return v, v.IsPositive()
}

func formatAmount(v decimal.Decimal) string {
	return v.StringFixed(2)
}

// displayDate shows stored ISO timestamps as plain dates when they carry no
// time of day.
func displayDate(iso string) string {
	t, ok := ingest.ParseDate(iso)
	if !ok {
		return iso
	}
	t = t.UTC()
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(dateInputLayout)
	}
	return iso
}

func cloneTags(tags map[string][]string) map[string][]string {
	out := make(map[string][]string, len(tags))
	for k, v := range tags {
		if len(v) > 0 {
			out[k] = slices.Clone(v)
		}
	}
	return out
}
