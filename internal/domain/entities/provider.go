package entities

import (
	"net/url"
	"strings"
)

const searchEngineURL = "https://www.google.com/search?q="

// Provider represents a practitioner record from the providers table
type Provider struct {
	NPI       string `json:"npi" db:"npi"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Specialty string `json:"specialty" db:"specialty"`
	City      string `json:"city" db:"city"`
	State     string `json:"state" db:"state"`
	Zip       string `json:"zip" db:"zip"`
	SearchURL string `json:"search_url,omitempty" db:"-"`
}

// BuildSearchURL returns a web search link for the provider made of its
// name, specialty and city. Blank fields are skipped.
func (p *Provider) BuildSearchURL() string {
	var terms []string
	for _, field := range []string{p.FirstName, p.LastName, p.Specialty, p.City} {
		for _, word := range strings.Fields(field) {
			terms = append(terms, url.QueryEscape(word))
		}
	}
	return searchEngineURL + strings.Join(terms, "+")
}
