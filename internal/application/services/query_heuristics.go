package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/entities"
)

const (
	minQueryLength = 3
	minLetterRatio = 0.30
)

// HasMeaningfulInfo reports whether the parser found anything to filter or
// search on. A location keyword on its own does not count.
func HasMeaningfulInfo(parsed entities.ParsedQuery) bool {
	return parsed.Specialty != "" ||
		parsed.Location.City != "" ||
		parsed.Location.State != "" ||
		len(parsed.Procedures) > 0
}

// IsLikelyGibberish reports whether a query is too short, too low in letters
// or purely numeric to carry intent.
func IsLikelyGibberish(query string) bool {
	trimmed := strings.TrimSpace(query)

	total := utf8.RuneCountInString(trimmed)
	if total < minQueryLength {
		return true
	}

	letters := 0
	for _, r := range trimmed {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			letters++
		}
	}
	if float64(letters)/float64(total) < minLetterRatio {
		return true
	}

	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, trimmed)
	return compact != "" && strings.IndexFunc(compact, func(r rune) bool { return r < '0' || r > '9' }) == -1
}

// NeedsFallback combines both heuristics: a gibberish query or one without
// any extracted signal is served popular providers instead of a filtered search.
func NeedsFallback(query string, parsed entities.ParsedQuery) bool {
	return IsLikelyGibberish(query) || !HasMeaningfulInfo(parsed)
}
