package catalog

import (
	"cmp"
	"slices"
	"strings"
)

const (
	SortByDate  = "date"
	OrderAsc    = "asc"
	OrderDesc   = "desc"
	DefaultPage = 1
	// DefaultLimit is the page size used when the caller does not pass one.
	DefaultLimit = 10
)

type compareFunc func(a, b Edition) int

// comparators maps a sortBy field name to its comparator.
var comparators = map[string]compareFunc{
	"id":          func(a, b Edition) int { return cmp.Compare(a.ID, b.ID) },
	"title":       func(a, b Edition) int { return strings.Compare(a.Title, b.Title) },
	"date":        compareDates,
	"description": func(a, b Edition) int { return strings.Compare(a.Description, b.Description) },
	"coverImage":  func(a, b Edition) int { return strings.Compare(a.CoverImage, b.CoverImage) },
	"link":        func(a, b Edition) int { return strings.Compare(a.Link, b.Link) },
	"category":    func(a, b Edition) int { return strings.Compare(a.Category, b.Category) },
	"pages":       func(a, b Edition) int { return cmp.Compare(a.Pages, b.Pages) },
}

// Unparsable dates compare as the zero time.
func compareDates(a, b Edition) int {
	ta, _ := parseDate(a.Date)
	tb, _ := parseDate(b.Date)
	return ta.Compare(tb)
}

// comparatorFor returns the comparator for field. Unknown fields compare equal,
// which keeps the prior order under a stable sort.
func comparatorFor(field string) compareFunc {
	if field == "" {
		field = SortByDate
	}
	if fn, ok := comparators[field]; ok {
		return fn
	}
	return func(Edition, Edition) int { return 0 }
}

func sortEditions(list []Edition, sortBy, order string) {
	compare := comparatorFor(sortBy)
	if order == OrderAsc {
		slices.SortStableFunc(list, compare)
		return
	}
	slices.SortStableFunc(list, func(a, b Edition) int {
		return compare(b, a)
	})
}
