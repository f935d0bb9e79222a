package entities

// Location is the place information extracted from a query.
// Empty strings mean "not found".
type Location struct {
	City    string
	State   string // two-letter code
	Keyword string // matched location preposition, informational only
}

// ParsedQuery is the structured reading of a free-text doctor search.
type ParsedQuery struct {
	Specialty     string
	Location      Location
	Procedures    []string
	OriginalQuery string
}

// Filters are the ParsedQuery fields the provider store filters on.
// Procedures are extracted but never used as filters.
type Filters struct {
	Specialty string
	City      string
	State     string
}

// Filters derives the store filters from the parsed query
func (p ParsedQuery) Filters() Filters {
	return Filters{
		Specialty: p.Specialty,
		City:      p.Location.City,
		State:     p.Location.State,
	}
}
