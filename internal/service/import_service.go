package service

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hance08/caixa/internal/config"
	"github.com/hance08/caixa/internal/ingest"
	"github.com/hance08/caixa/internal/model"
	"github.com/hance08/caixa/internal/reader"
	"github.com/hance08/caixa/internal/session"
	"github.com/hance08/caixa/internal/store"
)

type ImportService struct {
	repo    store.Repository
	backend session.BatchCreator
	config  *config.Config
	log     *log.Logger
}

func NewImportService(repo store.Repository, backend session.BatchCreator, cfg *config.Config, logger *log.Logger) *ImportService {
	return &ImportService{repo: repo, backend: backend, config: cfg, log: logger}
}

func (is *ImportService) options() session.Options {
	opts := session.Options{
		User:    is.config.Identity(),
		Backend: is.backend,
		Logger:  is.log,
	}
	if is.repo != nil {
		opts.Drafts = is.repo
	}
	return opts
}

// NewSession starts an empty import for the configured user.
func (is *ImportService) NewSession() *session.Session {
	return session.New(is.options())
}

// Resume reopens a draft saved by an earlier run.
func (is *ImportService) Resume(ctx context.Context, id string) (*session.Session, error) {
	return session.Resume(ctx, is.options(), id)
}

// ResolveFormat picks the explicit format when given, otherwise detects it
// from the file extension.
func (is *ImportService) ResolveFormat(path, explicit string) (reader.Format, error) {
	if explicit != "" {
		return reader.ParseFormat(explicit)
	}
	return reader.DetectFormat(path)
}

// CheckResult is a dry run of a file through the pipeline.
type CheckResult struct {
	Source       string
	Format       reader.Format
	Transactions []model.Transaction
	Report       model.Report
}

// Check reads, normalizes and validates a file without staging it.
func (is *ImportService) Check(ctx context.Context, path string, format reader.Format) (*CheckResult, error) {
	in, err := reader.ReadFile(ctx, path, format)
	if err != nil {
		return nil, err
	}
	txs := ingest.Normalize(in, format, ingest.Options{User: is.config.Identity()})
	return &CheckResult{
		Source:       filepath.Base(path),
		Format:       format,
		Transactions: txs,
		Report:       ingest.Validate(txs),
	}, nil
}
