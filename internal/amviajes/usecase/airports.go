package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/airport"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
)

type AutocompleteInput struct {
	Query     string
	ExcludeID string
}

func (u *Usecase) Autocomplete(_ context.Context, in AutocompleteInput) ([]entity.Airport, error) {
	key := airport.Normalize(in.Query) + "|" + strings.TrimSpace(in.ExcludeID)
	if cached, ok := u.cache.Get(key); ok {
		return cached, nil
	}

	airports, err := u.airports.Autocomplete(in.Query, strings.TrimSpace(in.ExcludeID), airport.DefaultLimit)
	if err != nil {
		return nil, airportError(err)
	}

	u.cache.Set(key, airports, u.cacheTTL)
	return airports, nil
}

func (u *Usecase) Airport(_ context.Context, id string) (entity.Airport, error) {
	a, err := u.airports.ByID(strings.TrimSpace(id))
	if err != nil {
		return entity.Airport{}, airportError(err)
	}
	return a, nil
}

// AirportsByCountry returns every airport when country is empty.
func (u *Usecase) AirportsByCountry(_ context.Context, country string) ([]entity.Airport, error) {
	airports, err := u.airports.ByCountry(strings.TrimSpace(country))
	if err != nil {
		return nil, airportError(err)
	}
	return airports, nil
}

func (u *Usecase) AirportByCity(_ context.Context, city string) (entity.Airport, error) {
	a, err := u.airports.ByCity(strings.TrimSpace(city))
	if err != nil {
		return entity.Airport{}, airportError(err)
	}
	return a, nil
}

func (u *Usecase) Countries(_ context.Context) ([]string, error) {
	countries, err := u.airports.Countries()
	if err != nil {
		return nil, airportError(err)
	}
	return countries, nil
}

// CloneAirports is the cache clone func for autocomplete answers.
func CloneAirports(in []entity.Airport) []entity.Airport {
	return slices.Clone(in)
}
