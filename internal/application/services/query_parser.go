package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/entities"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/lexicon"
)

// cityPunctuation is removed from a city taken from the word after a location keyword.
var cityPunctuation = strings.NewReplacer(".", "", ",", "", "!", "", "?", "")

// ParseQuery extracts specialty, location and procedures from a free-text query.
// Matching is substring based against the lower-cased query and the first
// lexicon entry that matches wins. It never fails: unmatched fields stay empty.
func ParseQuery(query string) entities.ParsedQuery {
	query = strings.TrimSpace(query)
	lower := strings.ToLower(query)

	parsed := entities.ParsedQuery{
		Procedures:    []string{},
		OriginalQuery: query,
	}

	for synonym, specialty := range lexicon.Specialties() {
		if strings.Contains(lower, synonym) {
			parsed.Specialty = specialty
			break
		}
	}

	for keyword := range lexicon.Procedures() {
		if strings.Contains(lower, keyword) {
			parsed.Procedures = append(parsed.Procedures, keyword)
		}
	}

	for name, code := range lexicon.States() {
		if strings.Contains(lower, name) {
			parsed.Location.State = code
			break
		}
	}

	for keyword := range lexicon.LocationKeywords() {
		if strings.Contains(lower, keyword) {
			parsed.Location.Keyword = keyword
			break
		}
	}

	parsed.Location.City = extractCity(query, lower)

	return parsed
}

// extractCity looks for an allowlisted city first and otherwise takes the
// capitalised word that follows a word containing a location keyword.
func extractCity(query, lower string) string {
	for city := range lexicon.Cities() {
		if strings.Contains(lower, city) {
			return titleCase(city)
		}
	}

	words := strings.Fields(query)
	for i := 0; i < len(words)-1; i++ {
		if !containsLocationKeyword(strings.ToLower(words[i])) {
			continue
		}
		next := words[i+1]
		r, _ := utf8.DecodeRuneInString(next)
		if r == unicode.ToUpper(r) {
			return cityPunctuation.Replace(next)
		}
	}
	return ""
}

func containsLocationKeyword(word string) bool {
	for keyword := range lexicon.LocationKeywords() {
		if strings.Contains(word, keyword) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
