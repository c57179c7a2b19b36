package service

import (
	"fmt"

	"github.com/hance08/caixa/internal/config"
	"github.com/hance08/caixa/internal/store"
)

type DraftService struct {
	repo   store.Repository
	config *config.Config
}

func NewDraftService(repo store.Repository, cfg *config.Config) *DraftService {
	return &DraftService{repo: repo, config: cfg}
}

// List returns the current user's drafts, newest first.
func (ds *DraftService) List() ([]*store.Draft, error) {
	drafts, err := ds.repo.ListDrafts(ds.config.User.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	return drafts, nil
}

// Discard deletes one of the current user's drafts.
func (ds *DraftService) Discard(id string) error {
	d, err := ds.repo.GetDraft(id)
	if err != nil {
		return err
	}
	if d.UserID != ds.config.User.ID {
		return fmt.Errorf("%w: draft %s", store.ErrRecordNotFound, id)
	}
	return ds.repo.DeleteDraft(id)
}
