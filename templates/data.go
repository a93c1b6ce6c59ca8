// Package templates holds the templ components rendered by the handlers.
package templates

// SummaryLine is one formatted row of a summary table. Plots is only set on
// plot group rows.
type SummaryLine struct {
	Name     string
	Plots    string
	Labour   string
	Sundries string
	Bricks   string
	Blocks   string
}

// SummarySection is a category table: its groups and the category total.
type SummarySection struct {
	Name  string
	Lines []SummaryLine
	Total SummaryLine
}

// SummaryPageData is everything the project summary page shows.
type SummaryPageData struct {
	ProjectID          string
	Contract           string
	Client             string
	Address            string
	SundriesPercentage string
	Sections           []SummarySection
	Grand              SummaryLine
}

type ProjectListItem struct {
	ID            string
	Contract      string
	Client        string
	CategoryCount int
	CreatedDate   string
}

type ProjectListData struct {
	Items []ProjectListItem
}
