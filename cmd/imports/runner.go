package imports

import (
	"context"
	"errors"
	"fmt"

	"github.com/hance08/caixa/internal/app"
	"github.com/hance08/caixa/internal/client"
	"github.com/hance08/caixa/internal/session"
	"github.com/hance08/caixa/internal/ui"
	"github.com/hance08/caixa/internal/ui/prompts"
	"github.com/hance08/caixa/internal/ui/views"
	"github.com/pterm/pterm"
)

// ErrBatchInvalid is returned by a non-interactive run that cannot submit.
var ErrBatchInvalid = errors.New("batch has invalid transactions, run without --yes to fix them")

// SessionRunner drives a loaded session through preview, edits and submit.
type SessionRunner struct {
	app     *app.App
	sess    *session.Session
	catalog *client.Catalog
}

func NewSessionRunner(a *app.App, sess *session.Session) *SessionRunner {
	return &SessionRunner{app: a, sess: sess}
}

func (r *SessionRunner) Run(ctx context.Context, yes bool) error {
	if yes {
		return r.submitDirect(ctx)
	}
	return r.previewLoop(ctx)
}

func (r *SessionRunner) submitDirect(ctx context.Context) error {
	store := r.sess.Store()
	if !r.sess.CanSubmit() {
		views.RenderReport(store.Report(), store.Len())
		return ErrBatchInvalid
	}
	return r.submit(ctx)
}

func (r *SessionRunner) previewLoop(ctx context.Context) error {
	for {
		store := r.sess.Store()
		if err := views.NewStagedListView().Render(store, r.sess.Source()); err != nil {
			return err
		}

		action, err := prompts.PromptPreviewAction(r.sess.CanSubmit(), store.Len() == 0)
		if err != nil {
			return err
		}

		switch action {
		case prompts.ActionEdit:
			idx, err := prompts.PromptItemIndex("Select item to edit:", store)
			if err != nil {
				return err
			}
			if err := r.editItem(ctx, idx); err != nil {
				return err
			}

		case prompts.ActionRemove:
			if err := r.removeItem(); err != nil {
				pterm.Error.Printf("Failed to remove item: %v\n", err)
			}

		case prompts.ActionDetails:
			idx, err := prompts.PromptItemIndex("Select item:", store)
			if err != nil {
				return err
			}
			tx, err := store.At(idx)
			if err != nil {
				return err
			}
			if err := views.RenderTransactionDetail(tx, store.ErrorsFor(idx), r.tagNamer()); err != nil {
				return err
			}
			ui.Separator()

		case prompts.ActionSubmit:
			if err := views.RenderBatchSummary(store.Items()); err != nil {
				return err
			}
			confirm, err := prompts.PromptConfirm(fmt.Sprintf("Send %d transactions?", store.Len()), true)
			if err != nil {
				return err
			}
			if !confirm {
				continue
			}
			if err := r.submit(ctx); err != nil {
				pterm.Error.Printf("Submit failed: %v\n", err)
				pterm.Warning.Println("Nothing was lost, you can fix the batch and try again")
				continue
			}
			return nil

		case prompts.ActionQuit:
			msg, saved := quitNotice(r.sess.ID(), r.sess.DraftStatus())
			if saved {
				pterm.Info.Println(msg)
			} else {
				pterm.Warning.Println(msg)
			}
			return nil

		case prompts.ActionDiscard:
			confirm, err := prompts.PromptConfirm("Discard this import? Staged changes will be lost", false)
			if err != nil {
				return err
			}
			if !confirm {
				continue
			}
			if err := r.sess.Discard(); err != nil {
				return err
			}
			pterm.Info.Println("Import discarded")
			return nil
		}
	}
}

func (r *SessionRunner) removeItem() error {
	store := r.sess.Store()
	idx, err := prompts.PromptItemIndex("Select item to remove:", store)
	if err != nil {
		return err
	}
	tx, err := store.At(idx)
	if err != nil {
		return err
	}

	views.RenderRemovePreview(idx, tx)
	confirm, err := prompts.PromptConfirm("Remove this item?", false)
	if err != nil {
		return err
	}
	if !confirm {
		pterm.Info.Println("Removal cancelled")
		return nil
	}

	if err := r.sess.Remove(idx); err != nil {
		return err
	}
	views.RenderRemoveSuccess(idx, store.Len())
	return nil
}

func (r *SessionRunner) submit(ctx context.Context) error {
	count := r.sess.Store().Len()
	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Sending %d transactions...", count))

	res, err := r.sess.Submit(ctx)
	if err != nil {
		spinner.Fail("The server rejected the batch")
		return err
	}
	spinner.Stop()

	views.RenderSubmitResult(res, count)
	ui.Separator()
	return nil
}

// loadCatalog fetches categories and tags once; failures only disable tag
// editing.
func (r *SessionRunner) loadCatalog(ctx context.Context) *client.Catalog {
	if r.catalog != nil {
		return r.catalog
	}
	cat, err := r.app.Service.Catalog.Load(ctx)
	if err != nil {
		pterm.Warning.Printf("Could not load categories and tags: %v\n", err)
		return nil
	}
	r.catalog = cat
	return cat
}

func (r *SessionRunner) tagNamer() views.TagNamer {
	if r.catalog == nil {
		return nil
	}
	return r.catalog.TagName
}

// quitNotice tells the user whether the batch they are leaving was kept.
func quitNotice(id string, status error) (string, bool) {
	switch {
	case status == nil:
		return fmt.Sprintf("Draft saved. Resume with: caixa import --resume %s", id), true
	case errors.Is(status, session.ErrDraftsDisabled):
		return "Drafts are disabled, this import was not kept", false
	default:
		return fmt.Sprintf("Draft could not be saved (%v), this import was not kept", status), false
	}
}
