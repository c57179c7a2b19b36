package prompts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/hance08/caixa/internal/constants"
	"github.com/hance08/caixa/internal/editor"
	"github.com/hance08/caixa/internal/ingest"
	"github.com/hance08/caixa/internal/model"
	"github.com/hance08/caixa/internal/reader"
	"github.com/hance08/caixa/internal/staging"
	"github.com/hance08/caixa/internal/utils"
	"github.com/hance08/caixa/internal/validation"
)

// Preview menu entries.
const (
	ActionEdit    = "Edit an item"
	ActionRemove  = "Remove an item"
	ActionDetails = "Show item details"
	ActionSubmit  = "Submit batch"
	ActionQuit    = "Quit (keep draft)"
	ActionDiscard = "Discard import"
)

// PromptTransactionType prompts for transaction type selection
func PromptTransactionType(current model.TransactionType) (model.TransactionType, error) {
	selected := current
	if !selected.Valid() {
		selected = model.TypeExpense
	}

	err := typeField(&selected).Run()
	return selected, err
}

// PromptBasicInfo edits description, amount, date and note in one form.
// The date accepts "t" for today and "y" for yesterday.
func PromptBasicInfo(ed *editor.Editor, now time.Time) error {
	desc, amount, date, note := ed.Descricao, ed.Valor, ed.Data, ed.Observacao

	err := huh.NewForm(
		huh.NewGroup(
			descriptionField(&desc),
			amountField(&amount),
			dateField(&date, false),
			noteField(&note),
		),
	).Run()
	if err != nil {
		return err
	}

	ed.Descricao = desc
	ed.Valor = amount
	ed.Observacao = note
	switch d := validation.DateShortcut(date); d {
	case validation.ShortcutToday:
		ed.SetToday(now)
	case validation.ShortcutYesterday:
		ed.SetYesterday(now)
	default:
		ed.Data = d
	}
	return nil
}

// PromptPreviewAction shows the batch menu. Submit is only offered when
// the batch can be sent.
func PromptPreviewAction(canSubmit bool, empty bool) (string, error) {
	var options []string
	if !empty {
		options = append(options, ActionEdit, ActionRemove, ActionDetails)
	}
	if canSubmit {
		options = append(options, ActionSubmit)
	}
	options = append(options, ActionQuit, ActionDiscard)

	// A batch that just became valid lands on Submit.
	focus := ""
	if canSubmit {
		focus = ActionSubmit
	}
	return PromptSelect("What would you like to do?", options, focus)
}

// PromptItemIndex lets the user pick a staged item. Items with errors are
// marked.
func PromptItemIndex(title string, store *staging.Store) (int, error) {
	if store.Len() == 0 {
		return -1, errors.New("no items staged")
	}

	var opts []huh.Option[int]
	for i, tx := range store.Items() {
		mark := "  "
		if len(store.ErrorsFor(i)) > 0 {
			mark = "✗ "
		}
		label := fmt.Sprintf("%s#%d %s  %s  %s",
			mark, i+1,
			shortDate(tx.Data),
			utils.Truncate(tx.Descricao, constants.MaxDescriptionWidth),
			utils.FormatMoney(tx.Valor),
		)
		opts = append(opts, huh.NewOption(label, i))
	}

	selected := 0
	if bad := store.Report().Erros; len(bad) > 0 {
		selected = bad[0].Indice
	}

	err := huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&selected).
		Height(constants.ListPageSize).
		Run()

	return selected, err
}

// PromptManualTransaction collects one transaction typed by hand. The
// result goes through the same normalizer as a JSON record.
func PromptManualTransaction(defaultPerson string) (reader.Record, error) {
	tipo := model.TypeExpense
	var desc, amount, date, note string
	person := defaultPerson

	err := huh.NewForm(
		huh.NewGroup(
			typeField(&tipo),
			descriptionField(&desc),
			amountField(&amount),
		),
		huh.NewGroup(
			dateField(&date, true),
			huh.NewInput().
				Title("Paid by:").
				Placeholder(defaultPerson).
				Value(&person),
			noteField(&note),
		),
	).Run()
	if err != nil {
		return nil, err
	}

	return ManualRecord(tipo, desc, amount, date, note, person, time.Now()), nil
}

// ManualRecord builds the record for a hand typed transaction.
func ManualRecord(tipo model.TransactionType, desc, amount, date, note, person string, now time.Time) reader.Record {
	rec := reader.Record{
		"tipo":      string(tipo),
		"descricao": strings.TrimSpace(desc),
		"valor":     strings.TrimSpace(amount),
	}
	switch d := validation.DateShortcut(date); d {
	case validation.ShortcutToday:
		rec["data"] = now.Format(constants.DateFormat)
	case validation.ShortcutYesterday:
		rec["data"] = now.AddDate(0, 0, -1).Format(constants.DateFormat)
	case "":
	default:
		rec["data"] = d
	}
	if n := strings.TrimSpace(note); n != "" {
		rec["observacao"] = n
	}
	if p := strings.TrimSpace(person); p != "" {
		rec["pessoa"] = p
	}
	return rec
}

func shortDate(iso string) string {
	if t, ok := ingest.ParseDate(iso); ok {
		return t.Format(constants.DateFormat)
	}
	return iso
}
