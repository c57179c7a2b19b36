package imports

import (
	"context"
	"time"

	"github.com/hance08/caixa/internal/editor"
	"github.com/hance08/caixa/internal/ui"
	"github.com/hance08/caixa/internal/ui/prompts"
	"github.com/hance08/caixa/internal/ui/views"
	"github.com/pterm/pterm"
)

func (r *SessionRunner) editItem(ctx context.Context, idx int) error {
	ed, err := r.sess.BeginEdit(idx)
	if err != nil {
		return err
	}

	ui.PrintL1Title("Editing item #%d", idx+1)
	if errs := r.sess.Store().ErrorsFor(idx); len(errs) > 0 {
		for _, e := range errs {
			pterm.Error.Println(e)
		}
	}

	for {
		if err := views.RenderEditor(ed, r.tagNamer()); err != nil {
			return err
		}

		choice, err := prompts.PromptEditorAction(len(ed.Payments))
		if err != nil {
			_ = r.sess.CancelEdit()
			return err
		}

		switch choice {
		case prompts.EditBasicInfo:
			if err := prompts.PromptBasicInfo(ed, time.Now()); err != nil {
				pterm.Error.Printf("Failed to edit basic info: %v\n", err)
			}

		case prompts.EditType:
			tipo, err := prompts.PromptTransactionType(ed.Tipo)
			if err != nil {
				pterm.Error.Printf("Failed to change type: %v\n", err)
				continue
			}
			ed.Tipo = tipo

		case prompts.EditPayment:
			if err := r.editPayment(ed); err != nil {
				pterm.Error.Printf("Failed to edit payment: %v\n", err)
			}

		case prompts.EditAddPayment:
			i := ed.AddPayment()
			if err := prompts.PromptPayment(ed, i); err != nil {
				pterm.Error.Printf("Failed to edit payment: %v\n", err)
			}

		case prompts.EditRemovePayment:
			i, err := prompts.PromptPaymentIndex("Select payment to remove:", ed)
			if err != nil {
				pterm.Error.Printf("Failed to remove payment: %v\n", err)
				continue
			}
			if err := ed.RemovePayment(i); err != nil {
				pterm.Error.Println(err)
			}

		case prompts.EditTags:
			if err := r.editTags(ctx, ed); err != nil {
				pterm.Error.Printf("Failed to edit tags: %v\n", err)
			}

		case prompts.EditSplit:
			if err := ed.SplitEvenly(); err != nil {
				pterm.Error.Printf("Cannot split: %v\n", err)
			}

		case prompts.EditSave:
			if err := r.sess.SaveEdit(ed); err != nil {
				pterm.Error.Printf("Cannot save: %v\n", err)
				pterm.Warning.Println("Please fix the errors before saving")
				continue
			}
			pterm.Success.Printf("Item #%d updated\n", idx+1)
			ui.Separator()
			return nil

		case prompts.EditCancel:
			if err := r.sess.CancelEdit(); err != nil {
				return err
			}
			pterm.Info.Println("Changes discarded")
			return nil
		}
	}
}

func (r *SessionRunner) editPayment(ed *editor.Editor) error {
	i, err := prompts.PromptPaymentIndex("Select payment to edit:", ed)
	if err != nil {
		return err
	}
	return prompts.PromptPayment(ed, i)
}

func (r *SessionRunner) editTags(ctx context.Context, ed *editor.Editor) error {
	cat := r.loadCatalog(ctx)
	if cat == nil {
		return nil
	}
	i, err := prompts.PromptPaymentIndex("Select payment to tag:", ed)
	if err != nil {
		return err
	}
	return prompts.PromptTags(ed, i, cat)
}
