package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/caixa/internal/model"
	"github.com/hance08/caixa/internal/validation"
)

// Field builders shared by the transaction forms.

func descriptionField(value *string) *huh.Input {
	return huh.NewInput().
		Title("Description:").
		Value(value).
		Validate(validation.Required("description"))
}

func amountField(value *string) *huh.Input {
	return huh.NewInput().
		Title("Amount:").
		Description("e.g. 150, 150.50 or 1.234,56").
		Value(value).
		Validate(validation.ValidateAmount)
}

// dateField accepts "t" and "y" shortcuts. An optional date may be left
// empty.
func dateField(value *string, optional bool) *huh.Input {
	input := huh.NewInput().
		Title("Date (YYYY-MM-DD):").
		Value(value)
	if optional {
		return input.
			Description("Leave empty for today, t = today, y = yesterday").
			Validate(validation.ValidateOptionalDate)
	}
	return input.
		Description("t = today, y = yesterday").
		Validate(validation.ValidateDate)
}

func noteField(value *string) *huh.Text {
	return huh.NewText().
		Title("Note (optional):").
		Value(value)
}

func typeField(value *model.TransactionType) *huh.Select[model.TransactionType] {
	return huh.NewSelect[model.TransactionType]().
		Title("Transaction type:").
		Options(
			huh.NewOption(model.TypeExpense.Label(), model.TypeExpense),
			huh.NewOption(model.TypeReceivable.Label(), model.TypeReceivable),
		).
		Value(value)
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()

	return confirm, err
}

// PromptSelect prompts for a selection from a list of options. The cursor
// starts on defaultOption when it names an option.
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := pickDefault(options, defaultOption)

	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()
	return selected, err
}

// pickDefault matches want exactly, then as a label prefix ("Submit" picks
// "Submit batch"). No match falls back to the first option.
func pickDefault(options []string, want string) string {
	if len(options) == 0 {
		return ""
	}
	if want == "" {
		return options[0]
	}
	for _, o := range options {
		if o == want {
			return o
		}
	}
	for _, o := range options {
		if strings.HasPrefix(o, want+" ") {
			return o
		}
	}
	return options[0]
}
