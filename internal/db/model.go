// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

var Columns = struct {
	Edition struct {
		ID, Title, Date, Description, CoverImage, Link, Category, Pages, Position string
	}
}{
	Edition: struct {
		ID, Title, Date, Description, CoverImage, Link, Category, Pages, Position string
	}{
		ID:          "editionId",
		Title:       "title",
		Date:        "date",
		Description: "description",
		CoverImage:  "coverImage",
		Link:        "link",
		Category:    "category",
		Pages:       "pages",
		Position:    "position",
	},
}

var Tables = struct {
	Edition struct {
		Name, Alias string
	}
}{
	Edition: struct {
		Name, Alias string
	}{
		Name:  "editions",
		Alias: "t",
	},
}

type Edition struct {
	tableName struct{} `pg:"editions,alias:t,discard_unknown_columns"`

	ID          int    `pg:"editionId,pk" json:"id" yaml:"id"`
	Title       string `pg:"title,use_zero" json:"title" yaml:"title"`
	Date        string `pg:"date,use_zero" json:"date" yaml:"date"`
	Description string `pg:"description,use_zero" json:"description" yaml:"description"`
	CoverImage  string `pg:"coverImage,use_zero" json:"coverImage" yaml:"coverImage"`
	Link        string `pg:"link,use_zero" json:"link" yaml:"link"`
	Category    string `pg:"category,use_zero" json:"category" yaml:"category"`
	Pages       int    `pg:"pages,use_zero" json:"pages" yaml:"pages"`
	Position    int    `pg:"position,use_zero" json:"-" yaml:"-"`
}
