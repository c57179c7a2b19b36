package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hance08/caixa/internal/reader"
	"github.com/hance08/caixa/internal/staging"
	"github.com/hance08/caixa/internal/store"
)

// DraftStore persists in-progress sessions.
type DraftStore interface {
	SaveDraft(d store.Draft) error
	GetDraft(id string) (*store.Draft, error)
	DeleteDraft(id string) error
}

// ErrDraftsDisabled is reported by DraftStatus when no draft store is set.
var ErrDraftsDisabled = errors.New("drafts are not enabled")

type draftPayload struct {
	Snapshot staging.Snapshot `json:"snapshot"`
}

// Resume reopens a saved draft in preview.
func Resume(ctx context.Context, opts Options, id string) (*Session, error) {
	if opts.Drafts == nil {
		return nil, ErrDraftsDisabled
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d, err := opts.Drafts.GetDraft(id)
	if err != nil {
		return nil, err
	}
	if d.UserID != opts.User.ID {
		return nil, fmt.Errorf("draft %s belongs to another user", id)
	}

	var payload draftPayload
	if err := json.Unmarshal(d.Payload, &payload); err != nil {
		return nil, fmt.Errorf("draft %s is corrupted: %w", id, err)
	}

	s := New(opts)
	s.id = d.ID
	s.log = s.opts.Logger.With("session", s.id)
	s.source = d.Source
	s.format = reader.Format(d.Format)
	s.store = staging.Restore(payload.Snapshot)
	s.transition(StatePreview)
	s.log.Info("draft resumed", "items", s.store.Len())
	return s, nil
}

// Discard deletes the saved draft, if any, and resets the session.
func (s *Session) Discard() error {
	if s.state == StateEdit {
		return s.invalid("discard")
	}
	s.dropDraft()
	s.log.Info("session discarded")
	s.reset()
	return nil
}

// DraftStatus reports whether the staged batch survives quitting: nil when
// the last autosave succeeded, ErrDraftsDisabled without a draft store, or
// the error of the last failed save.
func (s *Session) DraftStatus() error {
	if s.opts.Drafts == nil {
		return ErrDraftsDisabled
	}
	return s.saveErr
}

func (s *Session) autosave() {
	if s.opts.Drafts == nil || s.store == nil {
		return
	}
	s.saveErr = s.saveDraft()
	if s.saveErr != nil {
		s.log.Warn("draft not saved", "err", s.saveErr)
	}
}

func (s *Session) saveDraft() error {
	data, err := json.Marshal(draftPayload{Snapshot: s.store.Snapshot()})
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	return s.opts.Drafts.SaveDraft(store.Draft{
		ID:        s.id,
		UserID:    s.opts.User.ID,
		Source:    s.source,
		Format:    string(s.format),
		Items:     s.store.Len(),
		Payload:   data,
		CreatedAt: s.createdAt.Unix(),
		UpdatedAt: s.opts.Now().Unix(),
	})
}

func (s *Session) dropDraft() {
	if s.opts.Drafts == nil {
		return
	}
	if err := s.opts.Drafts.DeleteDraft(s.id); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		s.log.Warn("draft not deleted", "err", err)
	}
}
