package catalog

const (
	CategoryMonthly = "Monthly"
	CategorySpecial = "Special"
	CategoryAnnual  = "Annual"
	CategoryEvent   = "Event"
)

// Categories returns the allowed edition categories in display order.
func Categories() []string {
	return []string{CategoryMonthly, CategorySpecial, CategoryAnnual, CategoryEvent}
}

type Edition struct {
	ID          int
	Title       string
	Date        string
	Description string
	CoverImage  string
	Link        string
	Category    string
	Pages       int
}

// EditionFormData is the caller-supplied part of an edition. Every field is
// replaced on update.
type EditionFormData struct {
	Title       string `validate:"required" name:"title"`
	Date        string `validate:"required,isodate" name:"date"`
	Description string `validate:"required" name:"description"`
	CoverImage  string `validate:"required" name:"coverImage"`
	Link        string `validate:"required" name:"link"`
	Category    string `validate:"required,oneof=Monthly Special Annual Event" name:"category"`
	Pages       int    `validate:"required,gt=0" name:"pages"`
}

// Page is one page of the query pipeline result.
type Page struct {
	Editions   []Edition
	Total      int
	Page       int
	TotalPages int
}
