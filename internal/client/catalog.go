package client

import (
	"context"
	"sort"

	"github.com/hance08/caixa/internal/model"
)

// Catalog is the category/tag listing used to fill the tag selectors.
type Catalog struct {
	Categories []model.Category
	Tags       []model.Tag
}

// Catalog loads categories and tags. It is fetched once per session.
func (c *Client) Catalog(ctx context.Context) (*Catalog, error) {
	cats, err := c.Categories(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := c.Tags(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].Nome < cats[j].Nome })
	return &Catalog{Categories: cats, Tags: tags}, nil
}

// TagsFor returns the tags owned by category, matching by ID or name.
func (c *Catalog) TagsFor(category model.Category) []model.Tag {
	var out []model.Tag
	for _, t := range c.Tags {
		if t.Categoria == category.ID || t.Categoria == category.Nome {
			out = append(out, t)
		}
	}
	return out
}

// TagName resolves a stored tag ID for display; unknown IDs are returned as is.
func (c *Catalog) TagName(id string) string {
	for _, t := range c.Tags {
		if t.ID == id {
			return t.Nome
		}
	}
	return id
}
