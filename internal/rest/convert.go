package rest

import (
	"strconv"

	"github.com/daniilsolovey/editions/internal/catalog"
)

func NewEdition(e catalog.Edition) Edition {
	return Edition{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Description: e.Description,
		CoverImage:  e.CoverImage,
		Link:        e.Link,
		Category:    e.Category,
		Pages:       e.Pages,
	}
}

func NewEditionsPage(p catalog.Page) EditionsPage {
	return EditionsPage{
		Editions:   catalog.Map(p.Editions, NewEdition),
		Total:      p.Total,
		Page:       p.Page,
		TotalPages: p.TotalPages,
	}
}

func (f EditionFormData) ToModel() catalog.EditionFormData {
	return catalog.EditionFormData{
		Title:       f.Title,
		Date:        f.Date,
		Description: f.Description,
		CoverImage:  f.CoverImage,
		Link:        f.Link,
		Category:    f.Category,
		Pages:       f.Pages,
	}
}

func (r EditionsRequest) ToModel() catalog.Query {
	return catalog.Query{
		Query:    r.Query,
		Category: r.Category,
		SortBy:   r.SortBy,
		Order:    r.Order,
		Page:     parseOptionalInt(r.Page),
		Limit:    parseOptionalInt(r.Limit),
	}
}

func parseOptionalInt(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
