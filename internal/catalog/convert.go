package catalog

import "github.com/daniilsolovey/editions/internal/db"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewEdition(e db.Edition) Edition {
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

func NewEditions(list []db.Edition) []Edition {
	return Map(list, NewEdition)
}

func (f EditionFormData) ToDB() db.Edition {
	return db.Edition{
		Title:       f.Title,
		Date:        f.Date,
		Description: f.Description,
		CoverImage:  f.CoverImage,
		Link:        f.Link,
		Category:    f.Category,
		Pages:       f.Pages,
	}
}

func (e Edition) ToDB() db.Edition {
	return db.Edition{
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

// Form drops the id.
func (e Edition) Form() EditionFormData {
	return EditionFormData{
		Title:       e.Title,
		Date:        e.Date,
		Description: e.Description,
		CoverImage:  e.CoverImage,
		Link:        e.Link,
		Category:    e.Category,
		Pages:       e.Pages,
	}
}
