package airport

import (
	"slices"
	"strings"
	"unicode"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const DefaultLimit = 15

// Normalize folds s for matching: trimmed, lower case, without diacritics.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// Filter returns at most limit airports whose city, name, country or IATA
// code contains query, ordered by city and then by name. An empty query
// matches every airport. The airport with excludeID is never returned.
func Filter(airports []entity.Airport, query, excludeID string, limit int) []entity.Airport {
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := Normalize(query)

	matches := make([]entity.Airport, 0, len(airports))
	for _, a := range airports {
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		if q == "" || matchAirport(a, q) {
			matches = append(matches, a)
		}
	}

	sortByCityName(matches)

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func matchAirport(a entity.Airport, q string) bool {
	for _, field := range []string{a.City, a.Name, a.Country, a.IATA} {
		if strings.Contains(Normalize(field), q) {
			return true
		}
	}
	return false
}

func newCollator() *collate.Collator {
	return collate.New(language.Spanish, collate.IgnoreCase, collate.IgnoreDiacritics)
}

func sortByCityName(airports []entity.Airport) {
	c := newCollator()
	slices.SortStableFunc(airports, func(a, b entity.Airport) int {
		if n := c.CompareString(a.City, b.City); n != 0 {
			return n
		}
		return c.CompareString(a.Name, b.Name)
	})
}

func sortStrings(values []string) {
	c := newCollator()
	slices.SortStableFunc(values, c.CompareString)
}
