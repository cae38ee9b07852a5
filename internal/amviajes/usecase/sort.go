package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
)

const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortTimeAsc   = "time-asc"
	SortTimeDesc  = "time-desc"

	DefaultSort = SortPriceAsc
)

var sortAliases = map[string]string{
	"precio-asc":  SortPriceAsc,
	"precio-desc": SortPriceDesc,
	"hora-asc":    SortTimeAsc,
	"hora-desc":   SortTimeDesc,
}

// SortItineraries returns a sorted copy of list. Unknown criteria keep the
// input order. Equal keys keep their relative order.
func SortItineraries(list []entity.Itinerary, criterion string) []entity.Itinerary {
	out := make([]entity.Itinerary, len(list))
	copy(out, list)

	c := strings.ToLower(strings.TrimSpace(criterion))
	if alias, ok := sortAliases[c]; ok {
		c = alias
	}

	switch c {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].TotalPrice < out[j].TotalPrice })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].TotalPrice > out[j].TotalPrice })
	case SortTimeAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return toMinutes(out[i].DepartTime) < toMinutes(out[j].DepartTime)
		})
	case SortTimeDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return toMinutes(out[i].DepartTime) > toMinutes(out[j].DepartTime)
		})
	}

	return out
}

// ValidSort reports whether criterion names a known ordering.
func ValidSort(criterion string) bool {
	c := strings.ToLower(strings.TrimSpace(criterion))
	if _, ok := sortAliases[c]; ok {
		return true
	}
	switch c {
	case SortPriceAsc, SortPriceDesc, SortTimeAsc, SortTimeDesc:
		return true
	}
	return false
}

// toMinutes reads "HH:MM" as minutes since midnight, clamping the hour to
// 0-23 and the minute to 0-59. Each part is read as a leading integer. A part
// without one yields NaN, and NaN compares false both ways.
func toMinutes(hhmm string) float64 {
	if hhmm == "" {
		return math.NaN()
	}
	hStr, mStr, _ := strings.Cut(hhmm, ":")
	h, ok := leadingInt(hStr)
	if !ok {
		return math.NaN()
	}
	m, ok := leadingInt(mStr)
	if !ok {
		return math.NaN()
	}
	return float64(clamp(h, 0, 23)*60 + clamp(m, 0, 59))
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		if n < 1_000_000 {
			n = n*10 + int(r-'0')
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
