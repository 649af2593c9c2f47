package catalog

import "strings"

// Query holds the list parameters. Nil Page or Limit means "not supplied".
type Query struct {
	Query    string
	Category string
	SortBy   string
	Order    string
	Page     *int
	Limit    *int
}

func (q Query) page() int {
	if q.Page == nil || *q.Page < 1 {
		return DefaultPage
	}
	return *q.Page
}

func (q Query) limit() int {
	if q.Limit == nil {
		return DefaultLimit
	}
	return max(*q.Limit, 1)
}

// Apply runs search, category filter, sort and pagination in that order.
// The input slice is not modified.
func Apply(editions []Edition, q Query) Page {
	list := filterEditions(editions, q.Query, q.Category)
	sortEditions(list, q.SortBy, q.Order)

	page, limit := q.page(), q.limit()
	total := len(list)

	start := total
	if page-1 <= total/limit {
		start = min((page-1)*limit, total)
	}
	end := start + min(limit, total-start)

	totalPages := 0
	if total > 0 {
		totalPages = (total-1)/limit + 1
	}

	return Page{
		Editions:   list[start:end:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

// filterEditions returns a new slice with the editions matching the search
// query (title or description, case-insensitive) and the exact category.
func filterEditions(editions []Edition, query, category string) []Edition {
	query = strings.ToLower(query)

	list := make([]Edition, 0, len(editions))
	for _, e := range editions {
		if query != "" &&
			!strings.Contains(strings.ToLower(e.Title), query) &&
			!strings.Contains(strings.ToLower(e.Description), query) {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		list = append(list, e)
	}
	return list
}
