package service

import (
	"context"
	"sync"

	"github.com/hance08/caixa/internal/client"
)

type CatalogSource interface {
	Catalog(ctx context.Context) (*client.Catalog, error)
}

// CatalogService caches the category/tag listing for the life of the process.
type CatalogService struct {
	src CatalogSource

	mu     sync.Mutex
	cached *client.Catalog
}

func NewCatalogService(src CatalogSource) *CatalogService {
	return &CatalogService{src: src}
}

func (cs *CatalogService) Load(ctx context.Context) (*client.Catalog, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.cached != nil {
		return cs.cached, nil
	}
	cat, err := cs.src.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	cs.cached = cat
	return cat, nil
}
