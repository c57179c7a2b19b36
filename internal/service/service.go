package service

import (
	"github.com/charmbracelet/log"
	"github.com/hance08/caixa/internal/client"
	"github.com/hance08/caixa/internal/config"
	"github.com/hance08/caixa/internal/store"
)

type Service struct {
	Config  *config.Config
	Import  *ImportService
	Catalog *CatalogService
	Drafts  *DraftService
}

func NewService(repo store.Repository, api *client.Client, cfg *config.Config, logger *log.Logger) *Service {
	return &Service{
		Config:  cfg,
		Import:  NewImportService(repo, api, cfg, logger),
		Catalog: NewCatalogService(api),
		Drafts:  NewDraftService(repo, cfg),
	}
}
