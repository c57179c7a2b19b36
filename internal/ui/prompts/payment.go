package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hance08/caixa/internal/client"
	"github.com/hance08/caixa/internal/editor"
	"github.com/hance08/caixa/internal/model"
	"github.com/hance08/caixa/internal/validation"
)

// Editor menu entries.
const (
	EditBasicInfo     = "Basic info (description, amount, date, note)"
	EditType          = "Change type"
	EditPayment       = "Edit a payment"
	EditAddPayment    = "Add a payment"
	EditRemovePayment = "Remove a payment"
	EditTags          = "Tags of a payment"
	EditSplit         = "Split amount evenly"
	EditSave          = "Save & return"
	EditCancel        = "Cancel (discard changes)"
)

func PromptEditorAction(payments int) (string, error) {
	options := []string{EditBasicInfo, EditType, EditPayment, EditAddPayment}
	if payments > 1 {
		options = append(options, EditRemovePayment, EditSplit)
	}
	options = append(options, EditTags, EditSave, EditCancel)

	return PromptSelect("What would you like to edit?", options, "")
}

// PromptPaymentIndex picks one payment of the form.
func PromptPaymentIndex(title string, ed *editor.Editor) (int, error) {
	if len(ed.Payments) == 1 {
		return 0, nil
	}

	var opts []huh.Option[int]
	for i, p := range ed.Payments {
		opts = append(opts, huh.NewOption(fmt.Sprintf("#%d: %s (%s)", i+1, p.Pessoa, p.Valor), i))
	}

	selected := 0
	err := huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}

// PromptPayment edits person and amount of the payment at i.
func PromptPayment(ed *editor.Editor, i int) error {
	p := ed.Payments[i]
	person, amount := p.Pessoa, p.Valor

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Person:").
				Value(&person).
				Validate(validation.Required("person")),
			huh.NewInput().
				Title("Amount:").
				Description(fmt.Sprintf("Transaction total: %s", ed.Valor)).
				Value(&amount).
				Validate(validation.ValidateAmount),
		),
	).Run()
	if err != nil {
		return err
	}

	return ed.SetPayment(i, person, amount)
}

// PromptTags picks a category, then its tags, for the payment at i.
// An empty tag selection clears the category.
func PromptTags(ed *editor.Editor, i int, cat *client.Catalog) error {
	if cat == nil || len(cat.Categories) == 0 {
		return fmt.Errorf("no categories available")
	}

	var catOpts []huh.Option[string]
	byName := make(map[string]model.Category, len(cat.Categories))
	for _, c := range cat.Categories {
		catOpts = append(catOpts, huh.NewOption(c.Nome, c.Nome))
		byName[c.Nome] = c
	}

	var category string
	if err := huh.NewSelect[string]().
		Title("Category:").
		Options(catOpts...).
		Value(&category).
		Run(); err != nil {
		return err
	}

	tags := cat.TagsFor(byName[category])
	if len(tags) == 0 {
		return fmt.Errorf("category %s has no tags", category)
	}

	current := make(map[string]bool)
	for _, id := range ed.Payments[i].Tags[category] {
		current[id] = true
	}

	var tagOpts []huh.Option[string]
	for _, t := range tags {
		tagOpts = append(tagOpts, huh.NewOption(t.Nome, t.ID).Selected(current[t.ID]))
	}

	var selected []string
	if err := huh.NewMultiSelect[string]().
		Title(fmt.Sprintf("Tags for %s:", category)).
		Options(tagOpts...).
		Value(&selected).
		Run(); err != nil {
		return err
	}

	return ed.SetTags(i, category, selected)
}
