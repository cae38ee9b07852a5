package provider

import (
	"context"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkguid"
)

// MockProvider makes up between zero and MaxItineraries offers per search.
type MockProvider struct {
	rng Rand
	ids pkguid.StringID
}

func NewMockProvider(rng Rand, ids pkguid.StringID) *MockProvider {
	if rng == nil {
		rng = NewSafeRand()
	}
	if ids == nil {
		ids = pkguid.NewUUID()
	}
	return &MockProvider{rng: rng, ids: ids}
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) Search(ctx context.Context, query entity.SearchQuery) ([]entity.Itinerary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	passengers := query.Passengers.Total()
	roundTrip := !query.OneWay
	departDate := query.DepartDate.Format(entity.DateLayout)

	var returnDate *string
	if roundTrip && query.ReturnDate != nil {
		value := query.ReturnDate.Format(entity.DateLayout)
		returnDate = &value
	}

	count := m.rng.Intn(MaxItineraries + 1)
	itineraries := make([]entity.Itinerary, 0, count)
	for i := 0; i < count; i++ {
		airline := Airlines[m.rng.Intn(len(Airlines))]
		departTime := RandomTime(m.rng)
		basePrice := BasePrice(m.rng, query.Origin.City, query.Destination.City)

		perPassenger := basePrice
		var returnTime *string
		if roundTrip {
			value := RandomTime(m.rng)
			returnTime = &value
			perPassenger = basePrice * 2
		}

		itineraries = append(itineraries, entity.Itinerary{
			ID:                m.ids.Generate(),
			Airline:           airline,
			Origin:            query.Origin.City,
			Destination:       query.Destination.City,
			DepartDate:        departDate,
			DepartTime:        departTime,
			OneWay:            query.OneWay,
			ReturnDate:        cloneString(returnDate),
			ReturnTime:        returnTime,
			BasePrice:         basePrice,
			PricePerPassenger: perPassenger,
			TotalPassengers:   passengers,
			TotalPrice:        perPassenger * passengers,
		})
	}

	return itineraries, nil
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
