// Package finance retrieves company fundamentals from a Yahoo-style quote
// API and loads them into the store.
package finance

// Profile is the descriptive slice of a company's quote summary.
type Profile struct {
	Name            string
	TickerSymbol    string
	Region          string
	Industry        string
	Sector          string
	Website         string
	Address         string
	Phone           string
	EmployeeCount   *int
	BusinessSummary string
	Officers        []Officer
}

// Officer is one entry of a profile's executive roster.
type Officer struct {
	Name             string
	Title            string
	Age              *int
	YearBorn         *int
	FiscalYear       *int
	TotalPay         *float64
	ExercisedValue   *float64
	UnexercisedValue *float64
}

// Insights are the derived company scores the quote API exposes alongside
// the profile.
type Insights struct {
	Innovativeness   *float64
	Hiring           *float64
	Sustainability   *float64
	InsiderSentiment *float64
}
