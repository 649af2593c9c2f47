package rpc

import "github.com/daniilsolovey/editions/internal/catalog"

type Query struct {
	//q case-insensitive search in title and description
	Query string `json:"q,omitempty"`
	//category exact category filter
	Category string `json:"category,omitempty"`
	//sortBy=date sort field
	SortBy string `json:"sortBy,omitempty"`
	//order=desc asc or desc
	Order string `json:"order,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//limit=10 items per page
	Limit *int `json:"limit,omitempty"`
}

func (q Query) ToModel() catalog.Query {
	return catalog.Query{
		Query:    q.Query,
		Category: q.Category,
		SortBy:   q.SortBy,
		Order:    q.Order,
		Page:     q.Page,
		Limit:    q.Limit,
	}
}

type Edition struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`
	Link        string `json:"link"`
	Category    string `json:"category"`
	Pages       int    `json:"pages"`
}

type EditionInput struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`
	Link        string `json:"link"`
	Category    string `json:"category"`
	Pages       int    `json:"pages"`
}

func (e EditionInput) ToModel() catalog.EditionFormData {
	return catalog.EditionFormData{
		Title:       e.Title,
		Date:        e.Date,
		Description: e.Description,
		CoverImage:  e.CoverImage,
		Link:        e.Link,
		Category:    e.Category,
		Pages:       e.Pages,
	}
}

type EditionsPage struct {
	Editions   []Edition `json:"editions"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
}

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
