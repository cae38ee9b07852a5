package usecase

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
)

func itinerary(id string, price int, departTime string) entity.Itinerary {
	return entity.Itinerary{ID: id, TotalPrice: price, DepartTime: departTime}
}

func itineraryIDs(list []entity.Itinerary) []string {
	out := make([]string, 0, len(list))
	for _, it := range list {
		out = append(out, it.ID)
	}
	return out
}

func TestToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"00:00", 0},
		{"07:30", 450},
		{"23:59", 1439},
		{"25:70", 23*60 + 59},
		{"-3:10", 10},
		{"7:5", 425},
		{"08:15xyz", 495},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, toMinutes(tt.in))
		})
	}

	for _, bad := range []string{"", "ab:10", "10", "10:", ":30"} {
		assert.True(t, math.IsNaN(toMinutes(bad)), bad)
	}
}

func TestSortItineraries(t *testing.T) {
	list := []entity.Itinerary{
		itinerary("a", 300, "14:00"),
		itinerary("b", 120, "06:45"),
		itinerary("c", 300, "09:10"),
		itinerary("d", 90, "22:05"),
	}

	tests := []struct {
		criterion string
		want      []string
	}{
		{"price-asc", []string{"d", "b", "a", "c"}},
		{"precio-asc", []string{"d", "b", "a", "c"}},
		{"price-desc", []string{"a", "c", "b", "d"}},
		{"precio-desc", []string{"a", "c", "b", "d"}},
		{"time-asc", []string{"b", "c", "a", "d"}},
		{"hora-asc", []string{"b", "c", "a", "d"}},
		{"time-desc", []string{"d", "a", "c", "b"}},
		{"HORA-DESC", []string{"d", "a", "c", "b"}},
		{"duration", []string{"a", "b", "c", "d"}},
		{"", []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.criterion, func(t *testing.T) {
			assert.Equal(t, tt.want, itineraryIDs(SortItineraries(list, tt.criterion)))
		})
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, itineraryIDs(list))
}

func TestSortItineraries_DistinctKeysReverse(t *testing.T) {
	list := []entity.Itinerary{
		itinerary("a", 410, "11:00"),
		itinerary("b", 95, "03:20"),
		itinerary("c", 780, "19:45"),
		itinerary("d", 230, "08:05"),
	}

	asc := itineraryIDs(SortItineraries(list, SortPriceAsc))
	desc := itineraryIDs(SortItineraries(list, SortPriceDesc))
	slices.Reverse(desc)
	assert.Equal(t, asc, desc)

	asc = itineraryIDs(SortItineraries(list, SortTimeAsc))
	desc = itineraryIDs(SortItineraries(list, SortTimeDesc))
	slices.Reverse(desc)
	assert.Equal(t, asc, desc)
}

func TestSortItineraries_NilAndEmpty(t *testing.T) {
	assert.Empty(t, SortItineraries(nil, SortPriceAsc))
	assert.Empty(t, SortItineraries([]entity.Itinerary{}, SortTimeDesc))
}

func TestValidSort(t *testing.T) {
	for _, c := range []string{"price-asc", "price-desc", "time-asc", "time-desc", "precio-asc", "hora-desc"} {
		assert.True(t, ValidSort(c), c)
	}
	assert.False(t, ValidSort("duration"))
	assert.False(t, ValidSort(""))
}
