package rest

// Envelope wraps every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
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

// EditionFormData is the create and update request body.
type EditionFormData struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`
	Link        string `json:"link"`
	Category    string `json:"category"`
	Pages       int    `json:"pages"`
}

type EditionsPage struct {
	Editions   []Edition `json:"editions"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
}

// EditionsRequest holds raw list parameters. Page and limit are parsed
// leniently: values that are not integers fall back to the defaults.
type EditionsRequest struct {
	Query    string `query:"q"`
	Category string `query:"category"`
	SortBy   string `query:"sortBy"`
	Order    string `query:"order"`
	Page     string `query:"page"`
	Limit    string `query:"limit"`
}
